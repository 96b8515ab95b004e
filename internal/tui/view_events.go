package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/view"
)

var (
	eventWarningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	eventNormalStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
)

// eventLines renders the events section of a detail page, one line each.
func eventLines(events []domain.Event, width int) []string {
	if len(events) == 0 {
		return []string{mutedStyle.Render("  -")}
	}

	lines := make([]string, 0, len(events)+1)
	header := fmt.Sprintf("  %-10s %-22s %-40s %-8s %s", "TYPE", "REASON", "MESSAGE", "AGE", "COUNT")
	lines = append(lines, headerStyle.Render(header))

	msgWidth := max(width-60, 20)
	for _, e := range events {
		typeStr := eventNormalStyle.Render(fmt.Sprintf("%-10s", e.Type))
		if e.Type == "Warning" {
			typeStr = eventWarningStyle.Render(fmt.Sprintf("%-10s", e.Type))
		}
		lines = append(lines, fmt.Sprintf("  %s %-22s %-40s %-8s %d",
			typeStr,
			truncate(e.Reason, 21),
			truncate(strings.ReplaceAll(e.Message, "\n", " "), msgWidth),
			view.Age(e.LastSeen),
			e.Count))
	}
	return lines
}
