package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/view"
)

// cardRow is what the controller lists (jobs, replication controllers,
// daemon sets, deployments) have in common.
type cardRow interface {
	Meta() domain.ObjectMeta
	PodInfo() domain.PodInfo
	Status() view.Status
	DetailHref() string
}

func images(c cardRow) []string {
	switch v := c.(type) {
	case view.JobCard:
		return v.Job.ContainerImages
	case view.ReplicationControllerCard:
		return v.ReplicationController.ContainerImages
	case view.DaemonSetCard:
		return v.DaemonSet.ContainerImages
	case view.DeploymentCard:
		return v.Deployment.ContainerImages
	}
	return nil
}

// podCounts renders "running/desired", with failed and pending counts
// when there are any.
func podCounts(p domain.PodInfo) string {
	s := fmt.Sprintf("%d/%d", p.Running, p.Desired)
	if p.Pending > 0 {
		s += fmt.Sprintf(" ~%d", p.Pending)
	}
	if p.Failed > 0 {
		s += fmt.Sprintf(" !%d", p.Failed)
	}
	return s
}

func statusLabel(s view.Status) string {
	switch s {
	case view.StatusWarning:
		return i18n.T(i18n.MsgStatusWarning)
	case view.StatusPending:
		return i18n.T(i18n.MsgStatusPending)
	default:
		return i18n.T(i18n.MsgStatusSuccess)
	}
}

func renderCardList[C cardRow](cards []C, cursor, width, maxVisible int, sortState SortState) string {
	if len(cards) == 0 {
		return "  " + i18n.T(i18n.MsgEmptyList) + "\n"
	}

	var b strings.Builder

	name := SortIndicator(i18n.T(i18n.MsgColName), sortState)
	status := SortIndicator(i18n.T(i18n.MsgColStatus), sortState)
	age := SortIndicator(i18n.T(i18n.MsgColAge), sortState)

	if width >= 120 {
		header := fmt.Sprintf("  %-20s %-36s %-12s %-12s %-8s %s", i18n.T(i18n.MsgColNamespace), name, status, i18n.T(i18n.MsgColPods), age, i18n.T(i18n.MsgColImages))
		b.WriteString(headerStyle.Render(header))
	} else {
		header := fmt.Sprintf("  %-32s %-12s %-12s %s", name, status, i18n.T(i18n.MsgColPods), age)
		b.WriteString(headerStyle.Render(header))
	}
	b.WriteString("\n")

	start := 0
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}

	for i := start; i < len(cards) && i < start+maxVisible; i++ {
		c := cards[i]
		meta := c.Meta()
		st := c.Status()
		statusCell := renderStatus(st, fmt.Sprintf("%-12s", statusLabel(st)))

		var line string
		if width >= 120 {
			line = fmt.Sprintf("  %-20s %-36s %s %-12s %-8s %s",
				truncate(meta.Namespace, 19), truncate(meta.Name, 35), statusCell,
				podCounts(c.PodInfo()), view.Age(meta.CreationTimestamp),
				truncate(strings.Join(images(c), ","), width-95))
		} else {
			line = fmt.Sprintf("  %-32s %s %-12s %s",
				truncate(meta.Name, 31), statusCell, podCounts(c.PodInfo()), view.Age(meta.CreationTimestamp))
		}

		if i == cursor {
			if _, ok := any(c).(view.ReplicationControllerCard); ok {
				line += "  l:" + i18n.T(i18n.MsgRCListLogsTooltip)
			}
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
