package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

// buildLevelKeyboard builds the sessions-list keyboard: one button per
// session on the page plus a navigation row between levels.
func buildLevelKeyboard(sessions []*entities.Session, page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, s := range sessions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(s.Title, buildOpenCallback(s.ID)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous level", buildSessionsCallback(page-1)))
	}
	if page < totalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next level ▶️", buildSessionsCallback(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	if len(rows) == 0 {
		return nil
	}

	kb := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	return &kb
}

// buildOverviewKeyboard builds the keyboard under a session overview.
func buildOverviewKeyboard(s *entities.Session) *tgbotapi.InlineKeyboardMarkup {
	if !s.Unlocked {
		return nil
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start studying", buildStudyCallback(s.ID, 0)),
		),
	)
	return &kb
}

func buildCardFrontKeyboard(sessionID string, index int) *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👀 Show answer", buildRevealCallback(sessionID, index)),
		),
	)
	return &kb
}

func buildCardBackKeyboard(sessionID string, index int) *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ I knew it", buildAnswerCallback(sessionID, index, true)),
			tgbotapi.NewInlineKeyboardButtonData("📝 Still learning", buildAnswerCallback(sessionID, index, false)),
		),
	)
	return &kb
}

func buildSummaryKeyboard(sessionID string) *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏁 Finish session", buildFinishCallback(sessionID)),
		),
	)
	return &kb
}

func buildFinishedKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next session", buildNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Progress", buildProgressCallback()),
		),
	)
	return &kb
}

func buildProgressKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", buildProgressCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next session", buildNextCallback()),
		),
	)
	return &kb
}

func buildResetKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, reset", buildResetCallback(resetConfirm)),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCallback(resetCancel)),
		),
	)
	return &kb
}
