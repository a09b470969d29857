// @title         recruitflow API
// @version       1.0
// @description   HR agent backend: ranks uploaded resumes against a job description, finds free interview slots and schedules interviews with confirmation emails.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"os"
	"time"

	_ "github.com/pnikitin/recruitflow/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	// internal imports
	"github.com/pnikitin/recruitflow/api/http"
	"github.com/pnikitin/recruitflow/api/http/handlers"
	"github.com/pnikitin/recruitflow/pkg/calendar"
	gcal "github.com/pnikitin/recruitflow/pkg/calendar/google"
	"github.com/pnikitin/recruitflow/pkg/config"
	"github.com/pnikitin/recruitflow/pkg/health"
	"github.com/pnikitin/recruitflow/pkg/health/checkers"
	"github.com/pnikitin/recruitflow/pkg/llm"
	"github.com/pnikitin/recruitflow/pkg/llm/gemini"
	"github.com/pnikitin/recruitflow/pkg/llm/mockllm"
	"github.com/pnikitin/recruitflow/pkg/llm/openrouter"
	"github.com/pnikitin/recruitflow/pkg/mail"
	"github.com/pnikitin/recruitflow/pkg/mail/smtp"
	"github.com/pnikitin/recruitflow/pkg/ranking"
	"github.com/pnikitin/recruitflow/pkg/resume"
	"github.com/pnikitin/recruitflow/pkg/scheduling"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.DevMode {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("invalid timezone")
	}

	ctx := context.Background()

	// Wire providers. Dev mode swaps every outbound dependency for a
	// deterministic in-process mock so the whole API works offline.
	var (
		extractor resume.Extractor
		model     llm.ChatModel
		provider  calendar.Provider
		sender    mail.Sender
		readiness health.ReadinessUseCase
	)
	if cfg.DevMode {
		extractor = resume.NewMockExtractor()
		model = mockllm.New()
		provider = calendar.NewMock(loc)
		sender = mail.NewMockSender(log)
		readiness = health.NewService()
		log.Info().Msg("dev mode enabled, using mock providers")
	} else {
		extractor = resume.NewPDFExtractor()
		model = newChatModel(ctx, cfg, log)
		gc, err := gcal.New(ctx, cfg.CalendarCredentialsPath, cfg.CalendarTokenPath, cfg.CalendarID, cfg.Timezone)
		if err != nil {
			log.Fatal().Err(err).Msg("google calendar init")
		}
		provider = gc
		sender = smtp.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword)
		readiness = health.NewService(
			checkers.NewCalendarChecker(provider),
			checkers.NewSMTPChecker(cfg.SMTPHost, cfg.SMTPPort),
		)
	}

	rankingSvc := ranking.NewService(extractor, model, log)
	schedulingSvc := scheduling.NewService(provider, sender, scheduling.NewJournal(), scheduling.Options{
		Location:         loc,
		CompanyName:      cfg.CompanyName,
		InterviewerName:  cfg.InterviewerName,
		InterviewerEmail: cfg.InterviewerEmail,
		DaysAhead:        cfg.BusinessDaysAhead,
		SlotDuration:     time.Duration(cfg.SlotDurationMinutes) * time.Minute,
	}, log)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Register routes
	http.Register(app,
		handlers.NewProcessHandler(rankingSvc, cfg.MaxUploadBytes),
		handlers.NewScheduleHandler(schedulingSvc, loc),
		handlers.NewAvailabilityHandler(schedulingSvc),
		handlers.NewEmailHandler(schedulingSvc),
		handlers.NewHealthHandler(readiness),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	log.Info().Str("port", cfg.Port).Bool("dev_mode", cfg.DevMode).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newChatModel(ctx context.Context, cfg config.Config, log zerolog.Logger) llm.ChatModel {
	switch cfg.AIProvider {
	case "openrouter":
		return openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterBase, cfg.OpenRouterModel)
	case "mock":
		return mockllm.New()
	default:
		client, err := gemini.New(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("gemini init")
		}
		return client
	}
}
