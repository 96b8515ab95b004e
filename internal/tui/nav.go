package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/klog/v2"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/future"
	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/resolve"
	"github.com/Taishi66/kdash/internal/router"
)

// navMode says what a successful navigation does to the history.
type navMode int

const (
	navReplace navMode = iota // refresh in place
	navPush                   // drill down; esc comes back
	navBack                   // esc
	navTab                    // tab switch; history is cleared
)

type navigateMsg struct {
	href string
	mode navMode
}

// routeResolvedMsg carries the resource of a settled navigation. seq is
// compared with Model.navSeq: only the latest navigation is applied.
type routeResolvedMsg struct {
	seq   uint64
	route router.Route
	mode  navMode
	data  any
}

type routeFailedMsg struct {
	seq   uint64
	route router.Route
	err   error
}

func navigateCmd(href string, mode navMode) tea.Cmd {
	return func() tea.Msg { return navigateMsg{href: href, mode: mode} }
}

var tabStates = map[View]router.State{
	ViewNamespaces:             router.StateNamespaceList,
	ViewPods:                   router.StatePodList,
	ViewJobs:                   router.StateJobList,
	ViewReplicationControllers: router.StateReplicationControllerList,
	ViewDaemonSets:             router.StateDaemonSetList,
	ViewDeployments:            router.StateDeploymentList,
}

func viewForState(s router.State) View {
	switch s {
	case router.StateNamespaceList:
		return ViewNamespaces
	case router.StatePodList:
		return ViewPods
	case router.StateJobList:
		return ViewJobs
	case router.StateReplicationControllerList:
		return ViewReplicationControllers
	case router.StateDaemonSetList:
		return ViewDaemonSets
	case router.StateDeploymentList:
		return ViewDeployments
	case router.StateLogs:
		return ViewLogs
	default:
		return ViewDetail
	}
}

// tabHref links to the list view v in the current namespace.
func (m Model) tabHref(v View) string {
	state := tabStates[v]
	if state == router.StateNamespaceList {
		return m.links.Href(state, nil)
	}
	return m.links.Href(state, router.NewParams(router.ParamNamespace, m.namespace))
}

// navigate starts resolving href. The current view stays on screen until
// the resource arrives; a failed resolution leaves it in place.
func (m Model) navigate(href string, mode navMode) (Model, tea.Cmd) {
	route, err := m.links.Match(href)
	if err != nil {
		m.toast = newToast(i18n.Tf(i18n.MsgNavigationFailed, href, err), toastError)
		return m, scheduleToastClear()
	}
	if m.client == nil {
		return m, nil
	}
	m.navSeq++
	m.loading = true
	klog.V(2).Infof("navigating to %s (seq %d)", href, m.navSeq)
	return m, m.resolveRoute(m.navSeq, route, mode)
}

// resolveRoute issues the single fetch backing route.
func (m Model) resolveRoute(seq uint64, route router.Route, mode navMode) tea.Cmd {
	ctx := context.Background()
	p := route.Params
	switch route.State {
	case router.StateNamespaceList:
		return awaitRoute(seq, route, mode, resolve.NamespaceList(ctx, m.client.Namespaces()))
	case router.StatePodList:
		return awaitRoute(seq, route, mode, resolve.PodList(ctx, m.client.Pods(), p))
	case router.StateJobList:
		return awaitRoute(seq, route, mode, resolve.JobList(ctx, m.client.Jobs(), p))
	case router.StateJobDetail:
		return awaitRoute(seq, route, mode, resolve.JobDetail(ctx, m.client.JobDetail(), p))
	case router.StateReplicationControllerList:
		return awaitRoute(seq, route, mode, resolve.ReplicationControllerList(ctx, m.client.ReplicationControllers(), p))
	case router.StateReplicationControllerDetail:
		return awaitRoute(seq, route, mode, resolve.ReplicationControllerDetail(ctx, m.client.ReplicationControllerDetail(), p))
	case router.StateDaemonSetList:
		return awaitRoute(seq, route, mode, resolve.DaemonSetList(ctx, m.client.DaemonSets(), p))
	case router.StateDaemonSetDetail:
		return awaitRoute(seq, route, mode, resolve.DaemonSetDetail(ctx, m.client.DaemonSetDetail(), p))
	case router.StateDeploymentList:
		return awaitRoute(seq, route, mode, resolve.DeploymentList(ctx, m.client.Deployments(), p))
	case router.StateDeploymentDetail:
		return awaitRoute(seq, route, mode, resolve.DeploymentDetail(ctx, m.client.DeploymentDetail(), p))
	case router.StateLogs:
		return awaitRoute(seq, route, mode, resolve.Logs(ctx, m.client.Logs(), p))
	}
	err := fmt.Errorf("no view for %q", route.State)
	return func() tea.Msg { return routeFailedMsg{seq: seq, route: route, err: err} }
}

func awaitRoute[T any](seq uint64, route router.Route, mode navMode, fut *future.Future[T]) tea.Cmd {
	return func() tea.Msg {
		v, err := fut.Await(context.Background())
		if err != nil {
			return routeFailedMsg{seq: seq, route: route, err: err}
		}
		return routeResolvedMsg{seq: seq, route: route, mode: mode, data: v}
	}
}

// applyRoute makes a resolved navigation the current view.
func (m Model) applyRoute(msg routeResolvedMsg) Model {
	switch msg.mode {
	case navPush:
		if m.route.State != "" {
			m.history = append(m.history, m.route)
		}
	case navBack:
		if n := len(m.history); n > 0 {
			m.history = m.history[:n-1]
		}
	case navTab:
		m.history = nil
	}

	if msg.mode != navReplace {
		m.cursor = 0
		m.filter.SetValue("")
	}
	if msg.route.State != router.StateNamespaceList {
		m.namespace = msg.route.Params.Namespace()
	}
	m.route = msg.route
	m.view = viewForState(msg.route.State)
	m.loading = false
	m.disconnected = false

	p := msg.route.Params
	keepYAML := m.detail.showYAML && msg.mode == navReplace
	switch v := msg.data.(type) {
	case domain.NamespaceList:
		m.namespaces = v
	case domain.PodList:
		m.pods = v
	case domain.JobList:
		m.jobs = v
	case domain.ReplicationControllerList:
		m.rcs = v
	case domain.DaemonSetList:
		m.daemonSets = v
	case domain.DeploymentList:
		m.deployments = v
	case domain.JobDetail:
		m.detail = newDetailState("job", v.ObjectMeta, jobSummary(v, m.width), v)
	case domain.ReplicationControllerDetail:
		m.detail = newDetailState("replicationcontroller", v.ObjectMeta, replicationControllerSummary(v, m.width), v)
	case domain.DaemonSetDetail:
		m.detail = newDetailState("daemonset", v.ObjectMeta, daemonSetSummary(v, m.width), v)
	case domain.DeploymentDetail:
		m.detail = newDetailState("deployment", v.ObjectMeta, deploymentSummary(v, m.width), v)
	case domain.Logs:
		container := v.Container
		if container == "" {
			container = p.Get(router.ParamContainer)
		}
		m.logState = logState{
			podName:       p.Get(router.ParamPod),
			containerName: container,
			previous:      p.Get(router.ParamPrevious) == "true",
			wrap:          m.logState.wrap,
		}
		m.logState.setLines(v.Lines, m.cfg.Logs.TailLines, m.contentHeight())
	}
	m.detail.showYAML = m.detail.showYAML || keepYAML

	m.cursor = min(m.cursor, max(m.listLen()-1, 0))
	return m
}

// currentHref links to the view on screen.
func (m Model) currentHref() string {
	if m.route.State == "" {
		return ""
	}
	return m.links.Href(m.route.State, m.route.Params)
}

func (m Model) goBack() (Model, tea.Cmd) {
	n := len(m.history)
	if n == 0 {
		m.toast = toast{}
		return m, nil
	}
	prev := m.history[n-1]
	return m.navigate(m.links.Href(prev.State, prev.Params), navBack)
}
