package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, sheet IDs,
//   webhook/secret material)
// - default: Values common across all environments (timezone, timeouts, crons)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Reminder ReminderConfig
	Sheets   SheetsConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Lima"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/Lima"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// ReminderConfig drives window evaluation and the in-process schedules.
type ReminderConfig struct {
	// TimeZone is the zone event date/time cells are interpreted in.
	TimeZone string `envconfig:"REMINDER_TIMEZONE" default:"America/Lima"`
	// RulesFile optionally overrides the built-in rule tables (YAML).
	RulesFile string `envconfig:"REMINDER_RULES_FILE" default:""`
	// FrequentCron fires the narrow-window pass (concerts + interviews).
	FrequentCron string `envconfig:"REMINDER_FREQUENT_CRON" default:"0 * * * *"`
	// EveningCron fires the wide-window pass that also covers study sessions.
	EveningCron string `envconfig:"REMINDER_EVENING_CRON" default:"0 18 * * *"`
}

type SheetsConfig struct {
	APIKey           string        `envconfig:"SHEETS_API_KEY" required:"true"`
	BaseURL          string        `envconfig:"SHEETS_BASE_URL" default:"https://sheets.googleapis.com"`
	ConcertSheetID   string        `envconfig:"CONCERTS_SHEET_ID" required:"true"`
	InterviewSheetID string        `envconfig:"INTERVIEWS_SHEET_ID" required:"true"`
	StudySheetID     string        `envconfig:"STUDY_SHEET_ID" required:"true"`
	Timeout          time.Duration `envconfig:"SHEETS_TIMEOUT" default:"15s"`
}

type NotifyConfig struct {
	EmailFrom         string        `envconfig:"NOTIFY_EMAIL_FROM" required:"true"`
	EmailTo           string        `envconfig:"NOTIFY_EMAIL_TO" required:"true"`
	DiscordWebhookURL string        `envconfig:"DISCORD_WEBHOOK_URL" required:"true"`
	ChannelTimeout    time.Duration `envconfig:"NOTIFY_CHANNEL_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Lima",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "America/Lima",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Reminder: ReminderConfig{
			TimeZone:     "America/Lima",
			FrequentCron: "0 * * * *",
			EveningCron:  "0 18 * * *",
		},
		Sheets: SheetsConfig{
			APIKey:           "test-key",
			BaseURL:          "http://localhost:0",
			ConcertSheetID:   "concert-sheet",
			InterviewSheetID: "interview-sheet",
			StudySheetID:     "study-sheet",
			Timeout:          time.Second,
		},
		Notify: NotifyConfig{
			EmailFrom:         "reminder@example.com",
			EmailTo:           "diego@example.com",
			DiscordWebhookURL: "http://localhost:0/webhook",
			ChannelTimeout:    time.Second,
		},
	}
}
