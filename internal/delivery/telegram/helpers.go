package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

const lrm = "\u200E"

// esc escapes dynamic text for HTML parse mode.
func esc(s string) string {
	return html.EscapeString(s)
}

func sessionMarker(s *entities.Session, completed bool) string {
	switch {
	case completed:
		return "✅"
	case s.Unlocked:
		return "📖"
	default:
		return "🔒"
	}
}

func formatCardFront(s *entities.Session, index int) string {
	w := s.Words[index]
	return fmt.Sprintf(
		"%s<b>%s</b> — card %d/%d\n\n<b>%s</b>\n<i>%s</i>",
		lrm,
		esc(s.Title),
		index+1,
		s.ActualWordCount,
		esc(w.Korean),
		esc(w.Romanization),
	)
}

func formatCardBack(s *entities.Session, index int) string {
	w := s.Words[index]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"%s<b>%s</b> — card %d/%d\n\n<b>%s</b>\n<i>%s</i>\n\n<b>Meaning:</b> %s\n<b>Part of speech:</b> %s",
		lrm,
		esc(s.Title),
		index+1,
		s.ActualWordCount,
		esc(w.Korean),
		esc(w.Romanization),
		esc(w.Translation),
		esc(w.PartOfSpeech),
	))

	if w.Example != nil {
		sb.WriteString(fmt.Sprintf(
			"\n\n<b>Example:</b>\n%s\n<i>%s</i>\n%s",
			esc(w.Example.Korean),
			esc(w.Example.Romanization),
			esc(w.Example.Translation),
		))
	}

	return sb.String()
}

// formatRandomWord renders a standalone word card with the answer shown.
func formatRandomWord(w entities.Word) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"%s🎲 <b>%s</b>\n<i>%s</i>\n\n<b>Meaning:</b> %s\n<b>Part of speech:</b> %s",
		lrm,
		esc(w.Korean),
		esc(w.Romanization),
		esc(w.Translation),
		esc(w.PartOfSpeech),
	))

	if w.Example != nil {
		sb.WriteString(fmt.Sprintf(
			"\n\n<b>Example:</b>\n%s\n<i>%s</i>\n%s",
			esc(w.Example.Korean),
			esc(w.Example.Romanization),
			esc(w.Example.Translation),
		))
	}

	return sb.String()
}

// buildProgressBar renders a text progress bar like ▓▓▓░░░░░░░.
func buildProgressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	filled := done * width / total
	if filled > width {
		filled = width
	}

	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}
