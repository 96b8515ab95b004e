package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/view"
)

// logsMenuLoadedMsg carries the result of one logs menu fetch. menu and
// token together identify the fetch; anything else is stale.
type logsMenuLoadedMsg struct {
	menu  *view.PodLogsMenu
	token uint64
	pods  domain.ReplicationControllerPods
	err   error
}

func renderLogsMenu(menu *view.PodLogsMenu, cursor int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s/%s\n\n", i18n.T(i18n.MsgRCListLogsLabel), menu.Namespace, menu.ReplicationControllerName)

	pods := menu.Pods()
	if len(pods) == 0 {
		switch {
		case menu.Loading():
			b.WriteString(mutedStyle.Render(i18n.T(i18n.MsgLoading)))
		case menu.Err() != nil:
			b.WriteString(toastErrorStyle.Render(menu.Err().Error()))
		default:
			b.WriteString(mutedStyle.Render(i18n.T(i18n.MsgRCListLogsEmpty)))
		}
		b.WriteString("\n")
	}

	header := fmt.Sprintf("%-44s %s", i18n.T(i18n.MsgRCListLogsPodLabel), i18n.T(i18n.MsgRCListLogsRunningSinceLabel))
	if len(pods) > 0 {
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")
	}

	for i := range pods {
		pod := &pods[i]
		since := i18n.T(i18n.MsgRCListLogsNotRunningLabel)
		if pod.StartTime != nil {
			since = pod.StartTime.Format("2006-01-02 15:04:05")
		}
		line := fmt.Sprintf("%-44s %s", truncate(pod.Name, 43), since)
		if view.PodContainersRestarted(pod) {
			line += " " + renderStatus(view.StatusWarning, fmt.Sprintf("(%s %d)", i18n.T(i18n.MsgRCListLogsRestarted), pod.TotalRestartCount))
		}
		switch {
		case !view.PodContainerExists(*pod):
			line = mutedStyle.Render(line)
		case i == cursor:
			line = selectedStyle.Render(line)
		}
		if i == cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(i18n.T(i18n.MsgHelpMenu)))
	return "\n" + menuBoxStyle.Render(b.String()) + "\n"
}

// containerSelector picks one container of a multi-container pod.
type containerSelector struct {
	podName string
	choices []string
	cursor  int
}

func newContainerSelector(pod domain.ReplicationControllerPodWithContainers) *containerSelector {
	cs := &containerSelector{podName: pod.Name}
	for _, c := range pod.PodContainers {
		if c.Name != "" {
			cs.choices = append(cs.choices, c.Name)
		}
	}
	return cs
}

func (cs *containerSelector) selected() string {
	if cs.cursor < 0 || cs.cursor >= len(cs.choices) {
		return ""
	}
	return cs.choices[cs.cursor]
}

func renderContainerSelector(cs *containerSelector) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  Container (%s):\n\n", cs.podName)
	for i, name := range cs.choices {
		if i == cs.cursor {
			fmt.Fprintf(&b, "  > %s\n", selectedStyle.Render(name))
		} else {
			fmt.Fprintf(&b, "    %s\n", name)
		}
	}
	b.WriteString("\n  " + i18n.T(i18n.MsgHelpMenu) + "\n")
	return b.String()
}
