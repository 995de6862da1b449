// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "👋 <b>Welcome!</b>\n\n" +
		"This bot walks you through Korean vocabulary in small, themed study sessions. " +
		"Sessions unlock as you complete the ones before them.\n\n" +
		"📚 /sessions — browse all study sessions\n" +
		"▶️ /next — jump to the next recommended session\n" +
		"📊 /progress — see how far you've come\n" +
		"❓ /help — all commands"

	msgHelp = "Available commands:\n\n" +
		"/sessions — browse sessions by level\n" +
		"/session &lt;id&gt; — open a session\n" +
		"/next — next recommended session\n" +
		"/word — a random word from the corpus\n" +
		"/search &lt;query&gt; — find a session\n" +
		"/progress — your progress\n" +
		"/reset — start over from scratch"

	msgUnknownCommand = "Unknown command. Try /sessions, /next, /progress or /help."
	msgInternalError  = "Something went wrong. Please try again later."

	msgSessionIDMissing = "Usage: /session &lt;id&gt;. Find ids with /sessions."
	msgSessionNotFound  = "No session with that id. Find ids with /sessions."
	msgSearchUsage      = "Usage: /search &lt;query&gt;. Example: /search food"
	msgNoSearchResults  = "Nothing matched. Try a broader query, e.g. a topic like \"travel\"."
	msgAllCompleted     = "🎉 You have completed every available session. /reset to start over."
	msgNoActiveStudy    = "That study run has expired. Open the session again with /sessions."

	msgResetConfirm = "⚠️ This clears all completed sessions and progress. Are you sure?"
	msgResetDone    = "🧹 Progress cleared. Only the starting sessions are unlocked again."
	msgResetCancel  = "Reset cancelled — your progress is untouched."
)

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newHTMLEdit creates an edit with HTML parse mode.
func newHTMLEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}
