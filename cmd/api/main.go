package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-api/config"
	"smart-task-api/config/postgre"
	_ "smart-task-api/docs" // Swagger docs
	"smart-task-api/internal/httpserver"
	"smart-task-api/internal/interpreter"
	"smart-task-api/internal/reminder"
	taskRepo "smart-task-api/internal/task/repository/postgre"
	"smart-task-api/internal/worker"
	"smart-task-api/pkg/datemath"
	"smart-task-api/pkg/llm"
	"smart-task-api/pkg/log"
	"smart-task-api/pkg/mailer"
	"smart-task-api/pkg/vault"
)

// @title       Smart Task API
// @description Natural-language task management with LLM command interpretation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM credential from Vault. Fetched once, held for the process
	// lifetime, never logged.
	vaultClient := vault.NewClient(cfg.Vault.Address, cfg.Vault.Token)
	apiKey, err := vaultClient.GetSecret(ctx, cfg.Vault.SecretPath, cfg.Vault.SecretKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch LLM credential from Vault: %v", err)
	}

	// 4. PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer postgre.Disconnect(db)
	logger.Info(ctx, "PostgreSQL connected")

	// 5. Command interpretation stack
	llmClient := llm.NewClient(llm.Config{
		APIKey:    apiKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	})

	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	interp := interpreter.New(logger, llmClient, dateMathParser)

	// 6. Task repository
	repo := taskRepo.New(db, logger)

	// 7. Background worker pool
	pool := worker.New(logger, repo, worker.Config{
		Workers:      cfg.Worker.Workers,
		QueueSize:    cfg.Worker.QueueSize,
		HistorySize:  cfg.Worker.HistorySize,
		JobRetention: cfg.Worker.JobRetention,
		ProcessDelay: cfg.Worker.ProcessDelay,
	})
	pool.Start(ctx)
	logger.Info(ctx, "Worker pool started")

	// 8. Reminder scheduler (optional, requires SMTP)
	if cfg.SMTP.Enabled() && cfg.Reminder.Recipient != "" {
		mail := mailer.New(mailer.Config{
			Server:   cfg.SMTP.Server,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		sched := reminder.New(logger, repo, mail, reminder.Config{
			ScanInterval:   cfg.Reminder.ScanInterval,
			Lead:           cfg.Reminder.Lead,
			Window:         cfg.Reminder.Window,
			Recipient:      cfg.Reminder.Recipient,
			SendsPerMinute: cfg.Reminder.SendsPerMinute,
		})
		sched.Start(ctx)
		logger.Info(ctx, "Reminder scheduler started")
	} else {
		logger.Warn(ctx, "Reminder scheduler skipped: SMTP or recipient not configured")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskRepo:        repo,
		Interpreter:     interp,
		Dispatcher:      pool,
		OccurrenceCount: cfg.Task.OccurrenceCount,
		RateLimitPerSec: cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:  cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
