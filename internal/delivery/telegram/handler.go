package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/haneulbit/korean-vocab-bot/internal/storage"
)

type Handler struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	registry Registry
	words    WordSource
	studies  *storage.StudyStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	registry Registry,
	words WordSource,
	studies *storage.StudyStorage,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		registry: registry,
		words:    words,
		studies:  studies,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("chat_id", update.CallbackQuery.Message.Chat.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
		return
	}

	args := update.Message.CommandArguments()

	switch update.Message.Command() {
	case "start":
		h.send(newHTMLMessage(chatID, msgWelcome))

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	case "sessions":
		_ = h.withErrorHandling(h.sessionsHandler(0))(ctx, chatID)

	case "session":
		_ = h.withErrorHandling(h.sessionHandler(args))(ctx, chatID)

	case "next":
		_ = h.withErrorHandling(h.nextHandler())(ctx, chatID)

	case "word":
		_ = h.withErrorHandling(h.wordHandler())(ctx, chatID)

	case "search":
		_ = h.withErrorHandling(h.searchHandler(args))(ctx, chatID)

	case "progress":
		_ = h.withErrorHandling(h.progressHandler())(ctx, chatID)

	case "reset":
		_ = h.withErrorHandling(h.resetHandler())(ctx, chatID)

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

// sendErr sends and propagates the send error, for use inside
// withErrorHandling.
func (h *Handler) sendErr(c tgbotapi.Chattable) error {
	_, err := h.bot.Send(c)
	return err
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
