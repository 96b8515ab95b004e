package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/view"
)

// renderNamespaceList draws the namespace picker. An entry with an empty
// name stands for all namespaces.
func renderNamespaceList(namespaces []domain.Namespace, cursor, width, maxVisible int, activeNS string) string {
	if len(namespaces) == 0 {
		return "  " + i18n.T(i18n.MsgEmptyNamespaces) + "\n"
	}

	var b strings.Builder

	header := fmt.Sprintf("  %-40s %-12s %s", i18n.T(i18n.MsgColName), i18n.T(i18n.MsgColStatus), i18n.T(i18n.MsgColAge))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	start := 0
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}

	for i := start; i < len(namespaces) && i < start+maxVisible; i++ {
		ns := namespaces[i]
		marker := "  "
		if ns.ObjectMeta.Name == activeNS {
			marker = "> "
		}
		var line string
		if ns.ObjectMeta.Name == "" {
			line = marker + mutedStyle.Render(i18n.T(i18n.MsgAllNamespaces))
		} else {
			line = fmt.Sprintf("%s%-40s %-12s %s",
				marker, truncate(ns.ObjectMeta.Name, 39), colorizePhase(string(ns.Phase)), view.Age(ns.ObjectMeta.CreationTimestamp))
		}

		if i == cursor {
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
