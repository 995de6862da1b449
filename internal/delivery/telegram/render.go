package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
	"github.com/haneulbit/korean-vocab-bot/internal/storage"
)

// levelGroup is one catalog level with its surviving sessions, in canonical
// order.
type levelGroup struct {
	number   int
	title    string
	sessions []*entities.Session
}

// orderedLevels groups the registry's sessions by level, preserving the
// canonical catalog order.
func (h *Handler) orderedLevels() []levelGroup {
	var groups []levelGroup

	for _, s := range h.registry.GetAllSessions() {
		if len(groups) == 0 || groups[len(groups)-1].number != s.Level {
			groups = append(groups, levelGroup{number: s.Level, title: s.LevelTitle})
		}
		g := &groups[len(groups)-1]
		g.sessions = append(g.sessions, s)
	}

	return groups
}

// renderSessionsPage renders one level of the sessions list. One page per
// level keeps messages short on catalogs with many sessions.
func (h *Handler) renderSessionsPage(page int) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	groups := h.orderedLevels()
	if len(groups) == 0 || page < 0 || page >= len(groups) {
		return "", nil, false
	}

	g := groups[page]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📚 <b>Level %d — %s</b>\n\n", g.number, esc(g.title)))

	for _, s := range g.sessions {
		marker := sessionMarker(s, h.registry.IsCompleted(s.ID))
		sb.WriteString(fmt.Sprintf("%s <b>%s</b> (<code>%s</code>)\n%d words · %s\n\n",
			marker,
			esc(s.Title),
			esc(s.ID),
			s.ActualWordCount,
			esc(string(s.Difficulty)),
		))
	}

	sb.WriteString("Open a session with /session &lt;id&gt; or the buttons below.")

	return sb.String(), buildLevelKeyboard(g.sessions, page, len(groups)), true
}

func (h *Handler) renderSessionOverview(s *entities.Session) (string, *tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder

	marker := sessionMarker(s, h.registry.IsCompleted(s.ID))
	sb.WriteString(fmt.Sprintf("%s <b>%s</b>\n", marker, esc(s.Title)))
	sb.WriteString(fmt.Sprintf("Level %d — %s\n\n", s.Level, esc(s.LevelTitle)))
	sb.WriteString(fmt.Sprintf("%s\n\n", esc(s.Description)))
	sb.WriteString(fmt.Sprintf("<b>Topics:</b> %s\n", esc(strings.Join(s.Topics, ", "))))
	sb.WriteString(fmt.Sprintf("<b>Difficulty:</b> %s\n", esc(string(s.Difficulty))))
	sb.WriteString(fmt.Sprintf("<b>Words:</b> %d\n", s.ActualWordCount))

	if p := h.registry.GetProgress(s.ID); p.WordsReviewed > 0 {
		sb.WriteString(fmt.Sprintf("<b>Last run:</b> %d/%d known (%.0f%%)\n",
			p.WordsLearned, p.WordsReviewed, p.Accuracy))
	}

	if !s.Unlocked {
		sb.WriteString("\n🔒 Locked. Complete first: ")
		sb.WriteString(esc(strings.Join(h.remainingPrerequisites(s), ", ")))
	}

	return sb.String(), buildOverviewKeyboard(s)
}

// remainingPrerequisites lists prerequisite ids not yet completed.
func (h *Handler) remainingPrerequisites(s *entities.Session) []string {
	var out []string
	for _, id := range s.Prerequisites {
		if !h.registry.IsCompleted(id) {
			out = append(out, id)
		}
	}
	return out
}

func renderStudySummary(s *entities.Session, st *storage.StudyState) string {
	accuracy := 0.0
	if st.Reviewed > 0 {
		accuracy = float64(st.Known) / float64(st.Reviewed) * 100
	}

	return fmt.Sprintf(
		"🏁 <b>%s</b> — done!\n\nKnown: %d/%d (%.0f%%)\n\nFinish the session to save your progress and unlock what comes next.",
		esc(s.Title),
		st.Known,
		st.Reviewed,
		accuracy,
	)
}

func (h *Handler) renderProgress() string {
	stats := h.registry.GetProgressStats()

	var sb strings.Builder
	sb.WriteString("📊 <b>Your progress</b>\n\n")
	sb.WriteString(buildProgressBar(stats.Completed, stats.Total, 20))
	sb.WriteString(fmt.Sprintf("\n\n✅ Completed: %d / %d\n", stats.Completed, stats.Total))
	sb.WriteString(fmt.Sprintf("🔓 Unlocked: %d\n\n", stats.Unlocked))

	for _, lvl := range stats.Levels {
		sb.WriteString(fmt.Sprintf("Level %d — %s: %d/%d\n",
			lvl.Level, esc(lvl.Title), lvl.Completed, lvl.Total))
	}

	return sb.String()
}

func (h *Handler) renderSearchResults(query string, sessions []*entities.Session) string {
	if len(sessions) == 0 {
		return msgNoSearchResults
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 Sessions matching <b>%s</b>:\n\n", esc(query)))

	for _, s := range sessions {
		marker := sessionMarker(s, h.registry.IsCompleted(s.ID))
		sb.WriteString(fmt.Sprintf("%s <b>%s</b> (<code>%s</code>) — level %d\n",
			marker, esc(s.Title), esc(s.ID), s.Level))
	}

	sb.WriteString("\nOpen a session with /session &lt;id&gt;")
	return sb.String()
}
