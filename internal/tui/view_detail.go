package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/view"
)

// detailState is a resolved detail page: a summary and its YAML rendering.
type detailState struct {
	kind     string
	name     string
	summary  []string
	yaml     []string
	showYAML bool
	offset   int
}

func newDetailState(kind string, meta domain.ObjectMeta, summary []string, resource any) detailState {
	ds := detailState{kind: kind, name: meta.Key(), summary: summary}
	content, err := view.YAML(resource)
	if err != nil {
		content = err.Error()
	}
	ds.yaml = strings.Split(strings.TrimRight(content, "\n"), "\n")
	return ds
}

func (ds *detailState) lines() []string {
	if ds.showYAML {
		return ds.yaml
	}
	return ds.summary
}

func (ds *detailState) toggleYAML() {
	ds.showYAML = !ds.showYAML
	ds.offset = 0
}

func (ds *detailState) scrollDown(amount, viewHeight int) {
	maxOffset := max(len(ds.lines())-viewHeight, 0)
	ds.offset = min(ds.offset+amount, maxOffset)
}

func (ds *detailState) scrollUp(amount int) {
	ds.offset = max(ds.offset-amount, 0)
}

func (ds *detailState) jumpToBottom(viewHeight int) {
	ds.offset = max(len(ds.lines())-viewHeight, 0)
}

func renderDetail(ds *detailState, width, viewHeight int) string {
	lines := ds.lines()
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder

	mode := i18n.T(i18n.MsgDetailInfo)
	if ds.showYAML {
		mode = "YAML"
	}
	header := fmt.Sprintf("  %s: %s/%s [%d %s]", mode, ds.kind, ds.name, len(lines), i18n.T(i18n.MsgLines))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	end := min(ds.offset+viewHeight, len(lines))
	for i := ds.offset; i < end; i++ {
		line := lines[i]
		if ds.showYAML {
			line = "  " + truncate(line, width-2)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// --- Summaries ---

func section(key i18n.MessageKey) string {
	return "  " + sectionStyle.Render(i18n.T(key))
}

func field(label, value string) string {
	return fmt.Sprintf("    %-28s %s", label+":", value)
}

func metaFields(meta domain.ObjectMeta) []string {
	out := []string{
		field(i18n.T(i18n.MsgColName), meta.Name),
		field(i18n.T(i18n.MsgColNamespace), meta.Namespace),
		field(i18n.T(i18n.MsgColAge), view.Age(meta.CreationTimestamp)),
	}
	if len(meta.Labels) > 0 {
		out = append(out, field("Labels", formatLabels(meta.Labels)))
	}
	return out
}

func formatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + labels[k]
	}
	return strings.Join(parts, ",")
}

func optional(v *int32) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func podInfoLines(p domain.PodInfo) []string {
	st := view.Classify(p)
	return []string{
		field(i18n.T(i18n.MsgColStatus), renderStatus(st, statusLabel(st))),
		field(i18n.T(i18n.MsgColPods), podCounts(p)),
	}
}

func podListLines(list domain.PodList) []string {
	if len(list.Pods) == 0 {
		return []string{mutedStyle.Render("  -")}
	}
	lines := make([]string, 0, len(list.Pods))
	for _, r := range view.PodRows(list, nil) {
		lines = append(lines, fmt.Sprintf("    %-42s %s  %d",
			truncate(r.Pod.ObjectMeta.Name, 41),
			renderStatus(r.Status(), fmt.Sprintf("%-18s", r.DisplayStatus())),
			r.Pod.RestartCount))
	}
	return lines
}

func jobSummary(d domain.JobDetail, width int) []string {
	lines := []string{section(i18n.MsgDetailInfo)}
	lines = append(lines, metaFields(d.ObjectMeta)...)
	lines = append(lines,
		field(i18n.T(i18n.MsgColImages), strings.Join(d.ContainerImages, ", ")),
		field("Completions", optional(d.Completions)),
		field("Parallelism", optional(d.Parallelism)),
	)
	lines = append(lines, podInfoLines(d.PodInfo)...)
	lines = append(lines, "", section(i18n.MsgDetailPods))
	lines = append(lines, podListLines(d.PodList)...)
	lines = append(lines, "", section(i18n.MsgDetailEvents))
	return append(lines, eventLines(d.EventList.Events, width)...)
}

func replicationControllerSummary(d domain.ReplicationControllerDetail, width int) []string {
	lines := []string{section(i18n.MsgDetailInfo)}
	lines = append(lines, metaFields(d.ObjectMeta)...)
	lines = append(lines,
		field("Selector", formatLabels(d.LabelSelector)),
		field(i18n.T(i18n.MsgColImages), strings.Join(d.ContainerImages, ", ")),
	)
	lines = append(lines, podInfoLines(d.PodInfo)...)
	lines = append(lines, "", section(i18n.MsgDetailPods))
	lines = append(lines, podListLines(d.PodList)...)
	lines = append(lines, "", section(i18n.MsgDetailEvents))
	return append(lines, eventLines(d.EventList.Events, width)...)
}

func daemonSetSummary(d domain.DaemonSetDetail, width int) []string {
	presenter := view.NewDaemonSetDetail(&d)
	st := presenter.Status()

	lines := []string{section(i18n.MsgDetailInfo)}
	lines = append(lines, metaFields(d.ObjectMeta)...)
	lines = append(lines,
		field("Selector", formatLabels(d.LabelSelector)),
		field(i18n.T(i18n.MsgColImages), strings.Join(d.ContainerImages, ", ")),
		field(i18n.T(i18n.MsgColStatus), renderStatus(st, statusLabel(st))),
		field(i18n.T(i18n.MsgColPods), podCounts(d.PodInfo)),
	)
	lines = append(lines, "", section(i18n.MsgDetailPods))
	lines = append(lines, podListLines(d.PodList)...)
	lines = append(lines, "", section(i18n.MsgDetailEvents))
	return append(lines, eventLines(d.EventList.Events, width)...)
}

func deploymentSummary(d domain.DeploymentDetail, width int) []string {
	info := view.NewDeploymentInfo(&d)

	lines := []string{section(i18n.MsgDetailInfo)}
	lines = append(lines, metaFields(d.ObjectMeta)...)
	lines = append(lines,
		field("Selector", formatLabels(d.Selector)),
		field(i18n.T(i18n.MsgDetailStrategy), string(d.Strategy)),
		field("Min ready seconds", fmt.Sprintf("%d", d.MinReadySeconds)),
		field("Revision history limit", optional(d.RevisionHistoryLimit)),
	)
	if info.RollingUpdateStrategy() && d.RollingUpdateStrategy != nil {
		lines = append(lines,
			"", section(i18n.MsgDetailRollingUpdate),
			field(i18n.T(i18n.MsgDetailMaxSurge), d.RollingUpdateStrategy.MaxSurge.String()),
			field(i18n.T(i18n.MsgDetailMaxUnavailable), d.RollingUpdateStrategy.MaxUnavailable.String()),
		)
	}
	s := d.StatusInfo
	lines = append(lines,
		"", section(i18n.MsgDetailReplicas),
		field("Updated", fmt.Sprintf("%d/%d", s.Updated, s.Replicas)),
		field("Available", fmt.Sprintf("%d/%d", s.Available, s.Replicas)),
		field("Unavailable", fmt.Sprintf("%d", s.Unavailable)),
	)
	lines = append(lines, "", section(i18n.MsgDetailEvents))
	return append(lines, eventLines(d.EventList.Events, width)...)
}
