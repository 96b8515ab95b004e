package tui

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Taishi66/kdash/internal/i18n"
)

// logRule highlights every match of re with the style picked for it.
type logRule struct {
	re    *regexp.Regexp
	style func(match string) lipgloss.Style
}

func byWord(styles map[string]lipgloss.Style) func(string) lipgloss.Style {
	return func(m string) lipgloss.Style { return styles[m] }
}

// Rules are tried in order.
var logRules = []logRule{
	{
		re:    regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?`),
		style: func(string) lipgloss.Style { return mutedStyle },
	},
	{
		re: regexp.MustCompile(`\b(INFO|WARN|WARNING|ERROR|FATAL|PANIC|DEBUG|TRACE)\b`),
		style: byWord(map[string]lipgloss.Style{
			"INFO":    bold.Copy().Foreground(colorPrimary),
			"WARN":    bold.Copy().Foreground(colorWarning),
			"WARNING": bold.Copy().Foreground(colorWarning),
			"ERROR":   bold.Copy().Foreground(colorError),
			"FATAL":   bold.Copy().Foreground(colorError),
			"PANIC":   bold.Copy().Foreground(colorError),
			"DEBUG":   mutedStyle,
			"TRACE":   mutedStyle,
		}),
	},
	{
		re: regexp.MustCompile(`\b(GET|POST|PUT|PATCH|DELETE)\b`),
		style: byWord(map[string]lipgloss.Style{
			"GET":    bold.Copy().Foreground(colorSuccess),
			"POST":   bold.Copy().Foreground(colorWarning),
			"PUT":    bold.Copy().Foreground(colorAccent),
			"PATCH":  bold.Copy().Foreground(colorAccent),
			"DELETE": bold.Copy().Foreground(colorError),
		}),
	},
	{
		// HTTP status codes, by class
		re: regexp.MustCompile(`\b[2-5]\d{2}\b`),
		style: func(m string) lipgloss.Style {
			switch m[0] {
			case '2':
				return lipgloss.NewStyle().Foreground(colorSuccess)
			case '3':
				return lipgloss.NewStyle().Foreground(colorAccent)
			case '4':
				return lipgloss.NewStyle().Foreground(colorWarning)
			default:
				return lipgloss.NewStyle().Foreground(colorError)
			}
		},
	},
}

// logState is the logs page of one pod container.
type logState struct {
	podName       string
	containerName string
	lines         []string
	offset        int
	previous      bool
	wrap          bool
}

// setLines stores the log page, keeping at most tail lines, and jumps to
// the bottom.
func (ls *logState) setLines(lines []string, tail, viewHeight int) {
	if tail > 0 && len(lines) > tail {
		lines = lines[len(lines)-tail:]
	}
	ls.lines = lines
	ls.jumpToBottom(viewHeight)
}

func (ls *logState) maxOffset(viewHeight int) int {
	return max(len(ls.lines)-viewHeight, 0)
}

func (ls *logState) scrollDown(amount, viewHeight int) {
	ls.offset = min(ls.offset+amount, ls.maxOffset(viewHeight))
}

func (ls *logState) scrollUp(amount int) {
	ls.offset = max(ls.offset-amount, 0)
}

func (ls *logState) jumpToBottom(viewHeight int) {
	ls.offset = ls.maxOffset(viewHeight)
}

func (ls *logState) title() string {
	target := ls.podName
	if ls.containerName != "" {
		target += "/" + ls.containerName
	}
	mode := "current"
	if ls.previous {
		mode = "previous"
	}
	return fmt.Sprintf("  Logs: %s (%s) [%d %s]", target, mode, len(ls.lines), i18n.T(i18n.MsgLines))
}

func renderLogs(ls *logState, width, viewHeight int) string {
	if len(ls.lines) == 0 {
		return "  " + i18n.T(i18n.MsgNoLogs) + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(ls.title()))
	b.WriteString("\n")

	usable := max(width-2, 1)
	rendered := 0
	for i := ls.offset; i < len(ls.lines) && rendered < viewHeight; i++ {
		var rows []string
		if ls.wrap {
			rows = wrapRunes(ls.lines[i], usable)
		} else {
			rows = []string{truncate(ls.lines[i], usable)}
		}
		for _, row := range rows {
			if rendered == viewHeight {
				break
			}
			b.WriteString("  ")
			b.WriteString(colorizeLine(row))
			b.WriteString("\n")
			rendered++
		}
	}

	return b.String()
}

// wrapRunes splits line into chunks of at most width runes. An empty line
// is kept as one empty row.
func wrapRunes(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}
	rows := make([]string, 0, len(runes)/width+1)
	for len(runes) > width {
		rows = append(rows, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		rows = append(rows, string(runes))
	}
	return rows
}

// colorizeLine styles the matches of logRules. Matching runs on the raw
// line so escape codes of one rule are never rematched by the next; on
// overlap the earlier rule wins.
func colorizeLine(line string) string {
	if line == "" {
		return ""
	}
	type span struct {
		start, end int
		style      lipgloss.Style
	}
	var spans []span
	for _, rule := range logRules {
	next:
		for _, loc := range rule.re.FindAllStringIndex(line, -1) {
			for _, sp := range spans {
				if loc[0] < sp.end && sp.start < loc[1] {
					continue next
				}
			}
			spans = append(spans, span{loc[0], loc[1], rule.style(line[loc[0]:loc[1]])})
		}
	}
	if len(spans) == 0 {
		return line
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		b.WriteString(line[pos:sp.start])
		b.WriteString(sp.style.Render(line[sp.start:sp.end]))
		pos = sp.end
	}
	b.WriteString(line[pos:])
	return b.String()
}

func logHelpKeys(previous, wrap bool) string {
	help := i18n.T(i18n.MsgHelpLogs)
	if wrap {
		help = strings.Replace(help, "w:wrap", "w:nowrap", 1)
	}
	if previous {
		help += "  [previous]"
	}
	return help
}
