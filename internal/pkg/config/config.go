package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, batch limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Cookie    CookieConfig
	Log       LogConfig
	JWT       JWTConfig
	Mail      MailConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type MailConfig struct {
	SMTPHost string `envconfig:"MAIL_SMTP_HOST" required:"true"`
	SMTPPort int    `envconfig:"MAIL_SMTP_PORT" default:"587"`
	Username string `envconfig:"MAIL_SMTP_USERNAME" default:""`
	Password string `envconfig:"MAIL_SMTP_PASSWORD" default:""`
	From     string `envconfig:"MAIL_FROM" required:"true"`
	// MaxElapsed bounds the per-send retry window; a send still failing after
	// this is recorded on the job as an error.
	MaxElapsed time.Duration `envconfig:"MAIL_RETRY_MAX_ELAPSED" default:"30s"`
}

type SchedulerConfig struct {
	// CronToken guards the internal drain/requeue endpoints.
	CronToken    string        `envconfig:"SCHEDULER_CRON_TOKEN" required:"true"`
	DrainLimit   int32         `envconfig:"SCHEDULER_DRAIN_LIMIT" default:"50"`
	StuckAfter   time.Duration `envconfig:"SCHEDULER_STUCK_AFTER" default:"10m"`
	MaxAttempts  int32         `envconfig:"SCHEDULER_MAX_ATTEMPTS" default:"3"`
	RequeueDelay time.Duration `envconfig:"SCHEDULER_REQUEUE_DELAY" default:"15m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:          "test-secret-key",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 168 * time.Hour,
		},
		Mail: MailConfig{
			SMTPHost:   "localhost",
			SMTPPort:   1025,
			From:       "no-reply@example.com",
			MaxElapsed: time.Second,
		},
		Scheduler: SchedulerConfig{
			CronToken:    "test-cron-token",
			DrainLimit:   50,
			StuckAfter:   10 * time.Minute,
			MaxAttempts:  3,
			RequeueDelay: 15 * time.Minute,
		},
	}
}
