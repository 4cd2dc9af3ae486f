package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Secrets
	Vault VaultConfig

	// Command interpretation
	LLM      LLMConfig
	Timezone string

	// Background work
	Worker WorkerConfig

	// Reminders
	SMTP     SMTPConfig
	Reminder ReminderConfig

	// Task domain
	Task TaskConfig

	// Rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// VaultConfig locates the secret store holding the LLM API key. The key is
// read once at startup and never written to config or logs.
type VaultConfig struct {
	Address    string
	Token      string
	SecretPath string
	SecretKey  string
}

type LLMConfig struct {
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type WorkerConfig struct {
	Workers      int
	QueueSize    int
	HistorySize  int
	JobRetention time.Duration
	ProcessDelay time.Duration
}

type SMTPConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Server != "" && c.From != ""
}

type ReminderConfig struct {
	ScanInterval   time.Duration
	Lead           time.Duration
	Window         time.Duration
	Recipient      string
	SendsPerMinute int
}

type TaskConfig struct {
	OccurrenceCount int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Secrets
	cfg.Vault.Address = viper.GetString("vault.address")
	cfg.Vault.Token = viper.GetString("vault.token")
	cfg.Vault.SecretPath = viper.GetString("vault.secret_path")
	cfg.Vault.SecretKey = viper.GetString("vault.secret_key")
	if vaultAddr := viper.GetString("vault_addr"); vaultAddr != "" {
		cfg.Vault.Address = vaultAddr
	}
	if vaultToken := viper.GetString("vault_token"); vaultToken != "" {
		cfg.Vault.Token = vaultToken
	}

	// Command interpretation
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.Timezone = viper.GetString("timezone")

	// Background work
	cfg.Worker.Workers = viper.GetInt("worker.workers")
	cfg.Worker.QueueSize = viper.GetInt("worker.queue_size")
	cfg.Worker.HistorySize = viper.GetInt("worker.history_size")
	cfg.Worker.JobRetention = viper.GetDuration("worker.job_retention")
	cfg.Worker.ProcessDelay = viper.GetDuration("worker.process_delay")

	// Reminders
	cfg.SMTP.Server = viper.GetString("smtp.server")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = viper.GetString("smtp.password")
	cfg.SMTP.From = viper.GetString("smtp.from")
	cfg.Reminder.ScanInterval = viper.GetDuration("reminder.scan_interval")
	cfg.Reminder.Lead = viper.GetDuration("reminder.lead")
	cfg.Reminder.Window = viper.GetDuration("reminder.window")
	cfg.Reminder.Recipient = viper.GetString("reminder.recipient")
	cfg.Reminder.SendsPerMinute = viper.GetInt("reminder.sends_per_minute")

	// Task domain
	cfg.Task.OccurrenceCount = viper.GetInt("task.occurrence_count")

	// Rate limiting
	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if cfg.Vault.Address == "" || cfg.Vault.Token == "" {
		return nil, fmt.Errorf("vault address and token are required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "tasks")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("vault.secret_path", "secret/data/openai")
	viper.SetDefault("vault.secret_key", "openai_key")

	viper.SetDefault("llm.model", "gpt-4")
	viper.SetDefault("llm.max_tokens", 150)
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("timezone", "UTC")

	viper.SetDefault("worker.workers", 2)
	viper.SetDefault("worker.queue_size", 64)
	viper.SetDefault("worker.history_size", 1024)
	viper.SetDefault("worker.job_retention", "1h")
	viper.SetDefault("worker.process_delay", "2s")

	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("reminder.scan_interval", "30m")
	viper.SetDefault("reminder.lead", "30m")
	viper.SetDefault("reminder.window", "24h")
	viper.SetDefault("reminder.sends_per_minute", 10)

	viper.SetDefault("task.occurrence_count", 10)

	viper.SetDefault("rate_limit.requests_per_second", 10)
	viper.SetDefault("rate_limit.burst", 20)
}
