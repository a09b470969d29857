package checkers

import (
	"context"
	"fmt"
	"net"
	"time"
)

// SMTPChecker verifies the mail relay accepts TCP connections.
type SMTPChecker struct {
	addr string
}

func NewSMTPChecker(host string, port int) *SMTPChecker {
	return &SMTPChecker{addr: fmt.Sprintf("%s:%d", host, port)}
}

func (c *SMTPChecker) Name() string { return "smtp" }

func (c *SMTPChecker) Check(ctx context.Context) error {
	d := net.Dialer{Timeout: time.Second}
	conn, err := d.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return err
	}
	return conn.Close()
}
