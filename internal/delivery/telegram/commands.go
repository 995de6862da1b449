package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/haneulbit/korean-vocab-bot/internal/service"
)

// sessionsHandler renders one page (level) of the sessions list.
func (h *Handler) sessionsHandler(page int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, ok := h.renderSessionsPage(page)
		if !ok {
			return errors.New("no sessions to list")
		}

		msg := newHTMLMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = kb
		}
		return h.sendErr(msg)
	}
}

// sessionHandler shows the overview of one session by id.
func (h *Handler) sessionHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		id := strings.TrimSpace(args)
		if id == "" {
			return h.sendErr(newHTMLMessage(chatID, msgSessionIDMissing))
		}

		s, err := h.registry.GetSession(id)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				return h.sendErr(newHTMLMessage(chatID, msgSessionNotFound))
			}
			return err
		}

		text, kb := h.renderSessionOverview(s)
		msg := newHTMLMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = kb
		}
		return h.sendErr(msg)
	}
}

// nextHandler shows the next recommended session.
func (h *Handler) nextHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		s, err := h.registry.GetNextRecommendedSession()
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				return h.sendErr(newHTMLMessage(chatID, msgAllCompleted))
			}
			return err
		}

		text, kb := h.renderSessionOverview(s)
		msg := newHTMLMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = kb
		}
		return h.sendErr(msg)
	}
}

// wordHandler shows one random word from the corpus, outside any session.
func (h *Handler) wordHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		w, err := h.words.GetRandom()
		if err != nil {
			return err
		}
		return h.sendErr(newHTMLMessage(chatID, formatRandomWord(w)))
	}
}

// searchHandler searches sessions by a free-text query.
func (h *Handler) searchHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		query := strings.TrimSpace(args)
		if query == "" {
			return h.sendErr(newHTMLMessage(chatID, msgSearchUsage))
		}

		results := h.registry.SearchSessions(query)
		return h.sendErr(newHTMLMessage(chatID, h.renderSearchResults(query, results)))
	}
}

// progressHandler shows aggregate progress.
func (h *Handler) progressHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, h.renderProgress())
		msg.ReplyMarkup = buildProgressKeyboard()
		return h.sendErr(msg)
	}
}

// resetHandler asks for confirmation before clearing progress.
func (h *Handler) resetHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, msgResetConfirm)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.sendErr(msg)
	}
}
