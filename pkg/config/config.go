package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DevMode bool

	// AI provider: "gemini", "openrouter" or "mock"
	AIProvider       string
	GoogleAPIKey     string
	GeminiModel      string
	OpenRouterAPIKey string
	OpenRouterBase   string
	OpenRouterModel  string

	// Google Calendar OAuth files
	CalendarCredentialsPath string
	CalendarTokenPath       string
	CalendarID              string
	Timezone                string

	// SMTP
	SMTPHost      string
	SMTPPort      int
	EmailAddress  string
	EmailPassword string

	// Interview defaults
	CompanyName      string
	InterviewerName  string
	InterviewerEmail string

	// Scheduling window
	BusinessDaysAhead   int
	SlotDurationMinutes int

	// Upload limits
	MaxUploadBytes int64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:    getEnv("PORT", "8080"),
		DevMode: getEnvBool("DEV_MODE", false),

		AIProvider:       getEnv("AI_PROVIDER", "gemini"),
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:   os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),

		CalendarCredentialsPath: getEnv("GOOGLE_CALENDAR_CREDENTIALS_PATH", "credentials.json"),
		CalendarTokenPath:       getEnv("GOOGLE_CALENDAR_TOKEN_PATH", "token.json"),
		CalendarID:              getEnv("CALENDAR_ID", "primary"),
		Timezone:                getEnv("TIMEZONE", "America/New_York"),

		SMTPHost:      getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		EmailAddress:  os.Getenv("EMAIL_ADDRESS"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),

		CompanyName:      getEnv("COMPANY_NAME", "Your Company"),
		InterviewerName:  getEnv("INTERVIEWER_NAME", "Hiring Manager"),
		InterviewerEmail: getEnv("INTERVIEWER_EMAIL", "interviewer@company.com"),

		BusinessDaysAhead:   getEnvInt("BUSINESS_DAYS_AHEAD", 5),
		SlotDurationMinutes: getEnvInt("SLOT_DURATION_MINUTES", 30),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 16)) << 20,
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
