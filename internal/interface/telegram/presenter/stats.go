// Package presenter formats engine data for Telegram display. Presenters
// are pure: they map aggregate structures plus catalog metadata to text,
// with no I/O and no mutation.
package presenter

import (
	"fmt"
	"strings"

	"github.com/KapustinMaxim/beerbot/internal/application/query"
	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// DefaultMaxMessageLength is the Telegram message size limit; longer
// renderings are split into sequential chunks.
const DefaultMaxMessageLength = 4096

// weekFootnote reminds users how the weekly window is defined.
const weekFootnote = "📅 Неделя: с понедельника по воскресенье"

// StatsPresenter renders aggregated stats using catalog display metadata.
type StatsPresenter struct {
	catalog *activity.Catalog
}

// NewStatsPresenter creates a new StatsPresenter.
func NewStatsPresenter(catalog *activity.Catalog) *StatsPresenter {
	return &StatsPresenter{catalog: catalog}
}

// ─────────────────────────────────────────────────────────────────────────────
// SINGLE-USER STATS
// ─────────────────────────────────────────────────────────────────────────────

// FormatUserStats renders the full per-activity stats block for one user.
// Activities appear in catalog registration order.
func (p *StatsPresenter) FormatUserStats(stats activity.UserStats, title string) string {
	var sb strings.Builder

	sb.WriteString(title)
	sb.WriteString(":\n\n")

	for _, def := range p.catalog.All() {
		s := stats[def.Key]
		sb.WriteString(fmt.Sprintf("%s %s:\n", def.Emoji, def.Name))
		sb.WriteString(fmt.Sprintf("  • Сегодня: %d%s\n", s.Today, def.Unit))
		sb.WriteString(fmt.Sprintf("  • За неделю: %d%s\n", s.Week, def.Unit))
		sb.WriteString(fmt.Sprintf("  • Всего: %d%s\n\n", s.Total, def.Unit))
	}

	sb.WriteString(weekFootnote)
	return sb.String()
}

// FormatSubmissionReply renders the confirmation sent right after a
// submission: the recorded count plus a compact today|week line per
// activity.
func (p *StatsPresenter) FormatSubmissionReply(def activity.Definition, count int64, stats activity.UserStats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("✅ Записано %d %s!\n\n", count, def.GenitiveName))
	sb.WriteString("📊 Сегодня | За неделю:\n")

	for _, d := range p.catalog.All() {
		s := stats[d.Key]
		sb.WriteString(fmt.Sprintf("%s %s: %d | %d%s\n", d.Emoji, d.Name, s.Today, s.Week, d.Unit))
	}

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// LEADERBOARD
// ─────────────────────────────────────────────────────────────────────────────

// FormatLeaderboard renders the all-users leaderboard, one numbered block
// per user with lifetime/week/today figures per activity.
func (p *StatsPresenter) FormatLeaderboard(result *query.GetLeaderboardResult) string {
	if len(result.Entries) == 0 {
		return "📊 Пока нет данных для отображения статистики."
	}

	var sb strings.Builder
	sb.WriteString("📊 Общая статистика всех пользователей:\n")
	sb.WriteString(weekFootnote)
	sb.WriteString("\n\n")

	for _, entry := range result.Entries {
		sb.WriteString(fmt.Sprintf("%d. @%s\n", entry.Rank, entry.DisplayName))
		for _, def := range p.catalog.All() {
			s := entry.Stats[def.Key]
			sb.WriteString(fmt.Sprintf("   %s %s: %d (неделя: %d, сегодня: %d)%s\n",
				def.Emoji, def.Name, s.Total, s.Week, s.Today, def.Unit))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// MESSAGE SEGMENTATION
// ─────────────────────────────────────────────────────────────────────────────

// SplitMessage splits text into ordered chunks of at most max characters
// each. Splitting is rune-safe and lossless: concatenating the chunks
// reconstructs the original text exactly.
func SplitMessage(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxMessageLength
	}

	runes := []rune(text)
	if len(runes) <= max {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+max-1)/max)
	for start := 0; start < len(runes); start += max {
		end := start + max
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
