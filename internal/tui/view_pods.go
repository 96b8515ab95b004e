package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/view"
)

func renderPodList(rows []view.PodRow, cursor, width, maxVisible int, sortState SortState) string {
	if len(rows) == 0 {
		return "  " + i18n.T(i18n.MsgEmptyList) + "\n"
	}

	var b strings.Builder

	name := SortIndicator(i18n.T(i18n.MsgColName), sortState)
	status := SortIndicator(i18n.T(i18n.MsgColStatus), sortState)
	restarts := SortIndicator(i18n.T(i18n.MsgColRestarts), sortState)
	age := SortIndicator(i18n.T(i18n.MsgColAge), sortState)

	// Responsive columns
	wide := width >= 110
	var header string
	if wide {
		header = fmt.Sprintf("  %-20s %-42s %-18s %-12s %-8s %s", i18n.T(i18n.MsgColNamespace), name, status, restarts, age, i18n.T(i18n.MsgColNode))
	} else {
		header = fmt.Sprintf("  %-35s %-18s %s", name, status, age)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	start := 0
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}

	for i := start; i < len(rows) && i < start+maxVisible; i++ {
		r := rows[i]
		meta := r.Pod.ObjectMeta
		restartsCell := fmt.Sprintf("%d", r.Pod.RestartCount)
		if r.Restarted() {
			restartsCell = renderStatus(view.StatusPending, restartsCell)
		}

		var line string
		if wide {
			line = fmt.Sprintf("  %-20s %-42s %-18s %-12s %-8s %s",
				truncate(meta.Namespace, 19),
				truncate(meta.Name, 41),
				renderStatus(r.Status(), r.DisplayStatus()),
				restartsCell,
				view.Age(meta.CreationTimestamp),
				r.Pod.NodeName)
		} else {
			line = fmt.Sprintf("  %-35s %-18s %s",
				truncate(meta.Name, 34),
				renderStatus(r.Status(), r.DisplayStatus()),
				view.Age(meta.CreationTimestamp))
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
