package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/haneulbit/korean-vocab-bot/internal/config"
	"github.com/haneulbit/korean-vocab-bot/internal/delivery/telegram"
	"github.com/haneulbit/korean-vocab-bot/internal/infra/postgres"
	pgrepo "github.com/haneulbit/korean-vocab-bot/internal/infra/postgres/repository"
	"github.com/haneulbit/korean-vocab-bot/internal/logger"
	"github.com/haneulbit/korean-vocab-bot/internal/repository"
	"github.com/haneulbit/korean-vocab-bot/internal/service"
	"github.com/haneulbit/korean-vocab-bot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Both inputs must load before any session is built; a failed load is
	// fatal rather than an empty registry.
	corpus, err := repository.NewWordCorpus(cfg.WordsJSONPath)
	if err != nil {
		zl.Fatal("failed to load word corpus", zap.Error(err))
	}
	zl.Info("word corpus loaded", zap.Int("words", corpus.Count()))

	catalog, err := repository.NewSessionCatalog(cfg.CatalogYAMLPath)
	if err != nil {
		zl.Fatal("failed to load session catalog", zap.Error(err))
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database url is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to create postgres pool", zap.Error(err))
	}
	defer pool.Close()

	transactor := postgres.NewTransactor(pool)
	completionRepo := pgrepo.NewCompletionRepository(pool, transactor)

	registry, err := service.NewSessionRegistry(ctx, catalog, corpus, completionRepo, zl)
	if err != nil {
		zl.Fatal("failed to build session registry", zap.Error(err))
	}
	zl.Info("session registry built", zap.Int("sessions", len(registry.GetAllSessions())))

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create telegram bot", zap.Error(err))
	}
	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "sessions", Description: "Browse study sessions"},
		{Command: "session", Description: "Open a session by id"},
		{Command: "next", Description: "Next recommended session"},
		{Command: "word", Description: "A random word"},
		{Command: "search", Description: "Find a session"},
		{Command: "progress", Description: "Show progress"},
		{Command: "reset", Description: "Reset all progress"},
		{Command: "help", Description: "Help"},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	handler := telegram.NewHandler(bot, zl, registry, corpus, storage.NewStudyStorage())
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
