package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
	"github.com/haneulbit/korean-vocab-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var (
		text string
		kb   *tgbotapi.InlineKeyboardMarkup
		ok   bool
	)

	chatID := cb.Message.Chat.ID
	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionSessions:
		text, kb, ok = h.handleSessionsCallback(cd)
	case actionOpen:
		text, kb, ok = h.handleOpenCallback(cd)
	case actionStudy:
		text, kb, ok = h.handleStudyCallback(chatID, cd)
	case actionReveal:
		text, kb, ok = h.handleRevealCallback(cd)
	case actionAnswer:
		text, kb, ok = h.handleAnswerCallback(chatID, cd)
	case actionFinish:
		text, kb, ok = h.handleFinishCallback(ctx, chatID, cd)
	case actionNext:
		text, kb, ok = h.handleNextCallback()
	case actionProgress:
		text, kb, ok = h.renderProgress(), buildProgressKeyboard(), true
	case actionReset:
		text, kb, ok = h.handleResetCallback(ctx, cd)
	default:
		return
	}

	if !ok {
		return
	}

	edit := newHTMLEdit(chatID, cb.Message.MessageID, text)
	if kb != nil {
		edit.ReplyMarkup = kb
	}
	h.send(edit)

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleSessionsCallback(cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if len(cd.Params) != 1 {
		h.logger.Warn("invalid sessions callback", zap.String("data", cd.Raw))
		return "", nil, false
	}

	page, err := strconv.Atoi(cd.Params[0])
	if err != nil || page < 0 {
		h.logger.Warn("invalid page in callback", zap.String("data", cd.Raw))
		return "", nil, false
	}

	return h.renderSessionsPage(page)
}

func (h *Handler) handleOpenCallback(cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	s, ok := h.sessionFromParams(cd, 1)
	if !ok {
		return "", nil, false
	}

	text, kb := h.renderSessionOverview(s)
	return text, kb, true
}

func (h *Handler) handleStudyCallback(chatID int64, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	s, index, ok := h.cardFromParams(cd)
	if !ok {
		return "", nil, false
	}

	if !s.Unlocked {
		return "", nil, false
	}

	if index == 0 {
		h.studies.Start(chatID, s.ID)
	}

	return formatCardFront(s, index), buildCardFrontKeyboard(s.ID, index), true
}

func (h *Handler) handleRevealCallback(cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	s, index, ok := h.cardFromParams(cd)
	if !ok {
		return "", nil, false
	}

	return formatCardBack(s, index), buildCardBackKeyboard(s.ID, index), true
}

func (h *Handler) handleAnswerCallback(chatID int64, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if len(cd.Params) != 3 {
		h.logger.Warn("invalid answer callback", zap.String("data", cd.Raw))
		return "", nil, false
	}

	s, index, ok := h.cardFromParams(cd)
	if !ok {
		return "", nil, false
	}

	st := h.studies.Get(chatID)
	if st == nil || st.SessionID != s.ID {
		return msgNoActiveStudy, nil, true
	}

	h.studies.Answer(chatID, cd.Params[2] == "1")

	next := index + 1
	if next < s.ActualWordCount {
		return formatCardFront(s, next), buildCardFrontKeyboard(s.ID, next), true
	}

	return renderStudySummary(s, st), buildSummaryKeyboard(s.ID), true
}

func (h *Handler) handleFinishCallback(ctx context.Context, chatID int64, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	s, ok := h.sessionFromParams(cd, 1)
	if !ok {
		return "", nil, false
	}

	st := h.studies.Get(chatID)
	if st == nil || st.SessionID != s.ID {
		return msgNoActiveStudy, nil, true
	}

	accuracy := 0.0
	if st.Reviewed > 0 {
		accuracy = float64(st.Known) / float64(st.Reviewed) * 100
	}

	h.registry.MarkCompleted(ctx, s.ID)
	h.registry.UpdateProgress(ctx, s.ID, entities.SessionProgress{
		WordsLearned:  st.Known,
		WordsReviewed: st.Reviewed,
		Accuracy:      accuracy,
	})
	h.studies.Delete(chatID)

	text := fmt.Sprintf("🎉 <b>%s</b> completed!\n\nSessions that depended on it are now unlocked.", esc(s.Title))
	return text, buildFinishedKeyboard(), true
}

func (h *Handler) handleNextCallback() (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	s, err := h.registry.GetNextRecommendedSession()
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return msgAllCompleted, nil, true
		}
		h.logger.Error("next recommended session", zap.Error(err))
		return "", nil, false
	}

	text, kb := h.renderSessionOverview(s)
	return text, kb, true
}

func (h *Handler) handleResetCallback(ctx context.Context, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if len(cd.Params) != 1 {
		return "", nil, false
	}

	switch cd.Params[0] {
	case resetConfirm:
		h.registry.ResetProgress(ctx)
		return msgResetDone, nil, true
	case resetCancel:
		return msgResetCancel, nil, true
	default:
		return "", nil, false
	}
}

// sessionFromParams resolves the session id at params[0], expecting exactly
// want params.
func (h *Handler) sessionFromParams(cd callbackData, want int) (*entities.Session, bool) {
	if len(cd.Params) < want {
		h.logger.Warn("invalid callback data", zap.String("data", cd.Raw))
		return nil, false
	}

	s, err := h.registry.GetSession(cd.Params[0])
	if err != nil {
		h.logger.Warn("callback for unknown session", zap.String("data", cd.Raw))
		return nil, false
	}
	return s, true
}

// cardFromParams resolves a (session, card index) pair from params[0:2].
func (h *Handler) cardFromParams(cd callbackData) (*entities.Session, int, bool) {
	s, ok := h.sessionFromParams(cd, 2)
	if !ok {
		return nil, 0, false
	}

	index, err := strconv.Atoi(cd.Params[1])
	if err != nil || index < 0 || index >= s.ActualWordCount {
		h.logger.Warn("card index out of range", zap.String("data", cd.Raw))
		return nil, 0, false
	}

	return s, index, true
}
