package tui

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/klog/v2"

	"github.com/Taishi66/kdash/internal/config"
	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/router"
	"github.com/Taishi66/kdash/internal/view"
)

// ClientFactory creates a new Gateway (used for reconnection from error screen).
type ClientFactory func() (domain.Gateway, error)

// --- Views ---

type View int

const (
	ViewNamespaces View = iota
	ViewPods
	ViewJobs
	ViewReplicationControllers
	ViewDaemonSets
	ViewDeployments
	ViewDetail
	ViewLogs
	ViewError // startup error screen
)

func (v View) String() string {
	switch v {
	case ViewNamespaces:
		return "NAMESPACES"
	case ViewPods:
		return "PODS"
	case ViewJobs:
		return "JOBS"
	case ViewReplicationControllers:
		return "RCS"
	case ViewDaemonSets:
		return "DAEMONSETS"
	case ViewDeployments:
		return "DEPLOYS"
	case ViewDetail:
		return "DETAIL"
	case ViewLogs:
		return "LOGS"
	default:
		return ""
	}
}

func (v View) isList() bool {
	return v <= ViewDeployments
}

// --- Model ---

type Model struct {
	client        domain.Gateway
	clientFactory ClientFactory
	links         *router.Router

	// Navigation
	view      View
	route     router.Route
	history   []router.Route
	navSeq    uint64
	startHref string
	namespace string // "" is all namespaces

	// Data, replaced wholesale by each navigation
	namespaces  domain.NamespaceList
	pods        domain.PodList
	jobs        domain.JobList
	rcs         domain.ReplicationControllerList
	daemonSets  domain.DaemonSetList
	deployments domain.DeploymentList
	detail      detailState
	logState    logState

	// Logs menu of a replication controller
	logsMenu   *view.PodLogsMenu
	menuCursor int
	selector   *containerSelector

	// UI state
	cursor     int
	width      int
	height     int
	loading    bool
	toast      toast
	startupErr error // non-nil if launched with NewModelWithError

	// Filter
	filter    textinput.Model
	filtering bool

	// Connection state
	disconnected bool

	// Sort
	sortState map[View]SortState

	// Config
	cfg *config.AppConfig
}

func NewModel(client domain.Gateway, factory ClientFactory, cfg *config.AppConfig) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fi := textinput.New()
	fi.Placeholder = i18n.T(i18n.MsgFilterPlaceholder)
	fi.CharLimit = 64
	fi.Width = 30

	links := router.New()
	return Model{
		client:        client,
		clientFactory: factory,
		links:         links,
		view:          ViewPods,
		namespace:     cfg.Namespace,
		startHref:     links.Href(router.StatePodList, router.NewParams(router.ParamNamespace, cfg.Namespace)),
		filter:        fi,
		sortState:     make(map[View]SortState),
		cfg:           cfg,
	}
}

func NewModelWithError(err error, factory ClientFactory, cfg *config.AppConfig) Model {
	m := NewModel(nil, factory, cfg)
	m.view = ViewError
	m.startupErr = err
	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == ViewError {
		return nil
	}
	return navigateCmd(m.startHref, navTab)
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		return m.navigate(msg.href, msg.mode)

	case routeResolvedMsg:
		if msg.seq != m.navSeq {
			klog.V(4).Infof("dropping superseded navigation to %s (seq %d, latest %d)", msg.route.State, msg.seq, m.navSeq)
			return m, nil
		}
		return m.applyRoute(msg), nil

	case routeFailedMsg:
		if msg.seq != m.navSeq {
			return m, nil
		}
		klog.V(2).Infof("navigation to %s failed: %v", msg.route.State, msg.err)
		m.loading = false
		return m.handleAPIError(msg.err)

	case logsMenuLoadedMsg:
		if msg.menu != m.logsMenu {
			return m, nil
		}
		if msg.err != nil {
			if msg.menu.Fail(msg.token, msg.err) {
				return m.handleAPIError(msg.err)
			}
			return m, nil
		}
		if msg.menu.Receive(msg.token, msg.pods) {
			m.menuCursor = min(m.menuCursor, max(len(msg.menu.Pods())-1, 0))
		}
		return m, nil

	case toastExpiredMsg:
		if !m.toast.sticky && !time.Now().Before(m.toast.expires) {
			m.toast = toast{}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Startup error screen: only q/r
	if m.view == ViewError {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.clientFactory == nil {
				return m, nil
			}
			newClient, err := m.clientFactory()
			if err != nil {
				m.startupErr = err
				return m, nil
			}
			m.client = newClient
			m.startupErr = nil
			m.view = ViewPods
			return m.navigate(m.startHref, navTab)
		}
		return m, nil
	}

	// Container selector captures all input
	if m.selector != nil {
		return m.handleContainerSelector(msg)
	}

	// Logs menu captures all input
	if m.logsMenu != nil && m.logsMenu.IsOpen() {
		return m.handleLogsMenu(msg)
	}

	// Filter mode
	if m.filtering {
		return m.handleFilterInput(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, keys.Quit):
		if m.view == ViewLogs || m.view == ViewDetail {
			return m.goBack()
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		return m.goBack()

	// Tab switching
	case key.Matches(msg, keys.Tab1):
		return m.switchView(ViewNamespaces)
	case key.Matches(msg, keys.Tab2):
		return m.switchView(ViewPods)
	case key.Matches(msg, keys.Tab3):
		return m.switchView(ViewJobs)
	case key.Matches(msg, keys.Tab4):
		return m.switchView(ViewReplicationControllers)
	case key.Matches(msg, keys.Tab5):
		return m.switchView(ViewDaemonSets)
	case key.Matches(msg, keys.Tab6):
		return m.switchView(ViewDeployments)
	case key.Matches(msg, keys.TabNext):
		next := ViewPods
		if m.view.isList() {
			next = (m.view + 1) % (ViewDeployments + 1)
		}
		return m.switchView(next)

	// Filter
	case key.Matches(msg, keys.Filter):
		if m.view.isList() {
			m.filtering = true
			m.filter.SetValue("")
			m.filter.Focus()
			return m, textinput.Blink
		}

	// Refresh
	case key.Matches(msg, keys.Refresh):
		return m.refresh()

	// Navigation
	case key.Matches(msg, keys.Down):
		m.scroll(1)
	case key.Matches(msg, keys.Up):
		m.scroll(-1)
	case key.Matches(msg, keys.PageDown):
		m.scroll(20)
	case key.Matches(msg, keys.PageUp):
		m.scroll(-20)
	case key.Matches(msg, keys.Top):
		switch m.view {
		case ViewLogs:
			m.logState.offset = 0
		case ViewDetail:
			m.detail.offset = 0
		default:
			m.cursor = 0
		}
	case key.Matches(msg, keys.Bottom):
		switch m.view {
		case ViewLogs:
			m.logState.jumpToBottom(m.contentHeight())
		case ViewDetail:
			m.detail.jumpToBottom(m.contentHeight())
		default:
			m.cursor = max(m.listLen()-1, 0)
		}

	// Enter
	case key.Matches(msg, keys.Enter):
		return m.handleEnter()

	// Actions
	case key.Matches(msg, keys.Logs):
		if m.view == ViewReplicationControllers {
			return m.openLogsMenu()
		}
	case key.Matches(msg, keys.Previous):
		if m.view == ViewLogs {
			return m.togglePreviousLogs()
		}
	case key.Matches(msg, keys.Wrap):
		if m.view == ViewLogs {
			m.logState.wrap = !m.logState.wrap
			return m, nil
		}
	case key.Matches(msg, keys.YAML):
		if m.view == ViewDetail {
			m.detail.toggleYAML()
			return m, nil
		}
	case key.Matches(msg, keys.Sort):
		if m.view.isList() && m.view != ViewNamespaces {
			return m.cycleSort()
		}
	case key.Matches(msg, keys.Copy):
		if m.view.isList() {
			return m.copySelectedName()
		}
	}

	return m, nil
}

// --- Key Handlers ---

func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filter.Blur()
		if msg.String() == "esc" {
			m.filter.SetValue("")
		}
		m.cursor = 0
		return m, nil
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}
}

// scroll moves the list cursor, or the page offset in logs and detail.
func (m *Model) scroll(delta int) {
	switch m.view {
	case ViewLogs:
		if delta > 0 {
			m.logState.scrollDown(delta, m.contentHeight())
		} else {
			m.logState.scrollUp(-delta)
		}
	case ViewDetail:
		if delta > 0 {
			m.detail.scrollDown(delta, m.contentHeight())
		} else {
			m.detail.scrollUp(-delta)
		}
	default:
		m.cursor = max(min(m.cursor+delta, m.listLen()-1), 0)
	}
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	var href string
	mode := navPush
	switch m.view {
	case ViewNamespaces:
		items := m.namespaceChoices()
		if m.cursor >= len(items) {
			return m, nil
		}
		ns := items[m.cursor].ObjectMeta.Name
		href = m.links.Href(router.StatePodList, router.NewParams(router.ParamNamespace, ns))
		mode = navTab
	case ViewPods:
		items := m.filteredPods()
		if m.cursor >= len(items) {
			return m, nil
		}
		href = items[m.cursor].LogsHref()
	case ViewJobs:
		href = selectedHref(m.filteredJobs(), m.cursor)
	case ViewReplicationControllers:
		href = selectedHref(m.filteredReplicationControllers(), m.cursor)
	case ViewDaemonSets:
		href = selectedHref(m.filteredDaemonSets(), m.cursor)
	case ViewDeployments:
		href = selectedHref(m.filteredDeployments(), m.cursor)
	}
	if href == "" {
		return m, nil
	}
	return m.navigate(href, mode)
}

func selectedHref[C cardRow](cards []C, cursor int) string {
	if cursor >= len(cards) {
		return ""
	}
	return cards[cursor].DetailHref()
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.disconnected && m.client != nil {
		if err := m.client.Reconnect(); err != nil {
			return m.handleAPIError(err)
		}
		m.disconnected = false
		m.toast = toast{}
	}
	if href := m.currentHref(); href != "" {
		return m.navigate(href, navReplace)
	}
	return m.navigate(m.startHref, navTab)
}

func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	return m.navigate(m.tabHref(v), navTab)
}

func (m Model) togglePreviousLogs() (tea.Model, tea.Cmd) {
	previous := "true"
	if m.route.Params.Get(router.ParamPrevious) == "true" {
		previous = ""
	}
	params := m.route.Params.With(router.ParamPrevious, previous)
	return m.navigate(m.links.Href(router.StateLogs, params), navReplace)
}

func (m Model) cycleSort() (tea.Model, tea.Cmd) {
	state := m.sortState[m.view]
	state.Column = NextSort(state.Column, m.view == ViewPods)
	state.Ascending = true
	if m.sortState == nil {
		m.sortState = make(map[View]SortState)
	}
	m.sortState[m.view] = state
	m.cursor = 0
	return m, nil
}

func (m Model) copySelectedName() (tea.Model, tea.Cmd) {
	name := m.selectedName()
	if name == "" {
		return m, nil
	}
	// Copy to clipboard via OSC52 escape sequence (works in most modern terminals)
	m.toast = newToast(i18n.Tf(i18n.MsgCopied, name), toastSuccess)
	return m, tea.Batch(
		scheduleToastClear(),
		tea.Printf("\033]52;c;%s\a", encodeBase64(name)),
	)
}

func (m Model) selectedName() string {
	pick := func(names []string) string {
		if m.cursor < len(names) {
			return names[m.cursor]
		}
		return ""
	}
	switch m.view {
	case ViewNamespaces:
		items := m.namespaceChoices()
		names := make([]string, len(items))
		for i, ns := range items {
			names[i] = ns.ObjectMeta.Name
		}
		return pick(names)
	case ViewPods:
		items := m.filteredPods()
		names := make([]string, len(items))
		for i, r := range items {
			names[i] = r.Pod.ObjectMeta.Name
		}
		return pick(names)
	case ViewJobs:
		return pick(cardNames(m.filteredJobs()))
	case ViewReplicationControllers:
		return pick(cardNames(m.filteredReplicationControllers()))
	case ViewDaemonSets:
		return pick(cardNames(m.filteredDaemonSets()))
	case ViewDeployments:
		return pick(cardNames(m.filteredDeployments()))
	}
	return ""
}

func cardNames[C cardRow](cards []C) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Meta().Name
	}
	return out
}

// --- Logs menu ---

func (m Model) openLogsMenu() (tea.Model, tea.Cmd) {
	items := m.filteredReplicationControllers()
	if m.cursor >= len(items) || m.client == nil {
		return m, nil
	}
	meta := items[m.cursor].Meta()
	if m.logsMenu == nil || m.logsMenu.Namespace != meta.Namespace || m.logsMenu.ReplicationControllerName != meta.Name {
		m.logsMenu = view.NewPodLogsMenu(meta.Namespace, meta.Name, m.client.ReplicationControllerPods(), m.links, m.cfg.LogsMenu.Limit)
	}
	return m.fetchLogsMenu()
}

// fetchLogsMenu (re)opens the current menu with a fresh fetch.
func (m Model) fetchLogsMenu() (Model, tea.Cmd) {
	menu := m.logsMenu
	m.menuCursor = 0
	token, fut := menu.Open(context.Background())
	return m, func() tea.Msg {
		pods, err := fut.Await(context.Background())
		return logsMenuLoadedMsg{menu: menu, token: token, pods: pods, err: err}
	}
}

func (m Model) handleLogsMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pods := m.logsMenu.Pods()
	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
		m.logsMenu.Close()
		return m, nil
	case key.Matches(msg, keys.Down):
		m.menuCursor = max(min(m.menuCursor+1, len(pods)-1), 0)
		return m, nil
	case key.Matches(msg, keys.Up):
		m.menuCursor = max(m.menuCursor-1, 0)
		return m, nil
	case key.Matches(msg, keys.Refresh):
		return m.fetchLogsMenu()
	case key.Matches(msg, keys.Enter):
		if m.menuCursor >= len(pods) {
			return m, nil
		}
		pod := pods[m.menuCursor]
		if !view.PodContainerExists(pod) {
			return m, nil
		}
		if sel := newContainerSelector(pod); len(sel.choices) > 1 {
			m.selector = sel
			return m, nil
		}
		href := m.logsMenu.LogsHref(pod.Name)
		m.logsMenu.Close()
		return m.navigate(href, navPush)
	}
	return m, nil
}

func (m Model) handleContainerSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.selector = nil
		return m, nil
	case key.Matches(msg, keys.Down):
		m.selector.cursor = min(m.selector.cursor+1, len(m.selector.choices)-1)
		return m, nil
	case key.Matches(msg, keys.Up):
		m.selector.cursor = max(m.selector.cursor-1, 0)
		return m, nil
	case key.Matches(msg, keys.Enter):
		sel := m.selector
		m.selector = nil
		menu := m.logsMenu
		if menu == nil {
			return m, nil
		}
		menu.Close()
		params := router.LogsParams(menu.Namespace, menu.ReplicationControllerName, sel.podName).
			With(router.ParamContainer, sel.selected())
		return m.navigate(m.links.Href(router.StateLogs, params), navPush)
	}
	return m, nil
}

// --- Error handling ---

func (m Model) handleAPIError(err error) (tea.Model, tea.Cmd) {
	m.loading = false

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		m.toast = newToast(err.Error(), toastError)
		return m, scheduleToastClear()
	}

	switch apiErr.Type {
	case domain.ErrTokenExpired:
		m.disconnected = true
		m.toast = newStickyToast(apiErr.Message, toastError)
		return m, nil // no auto-clear, keep visible

	case domain.ErrUnreachable:
		m.disconnected = true
		m.toast = newStickyToast(i18n.T(i18n.MsgDisconnected), toastError)
		return m, nil

	case domain.ErrForbidden:
		m.toast = newToast(i18n.Tf(i18n.MsgForbidden, m.namespace), toastError)
		return m, scheduleToastClear()

	case domain.ErrConflict:
		m.toast = newToast(i18n.T(i18n.MsgConflict), toastError)
		return m, scheduleToastClear()

	case domain.ErrRateLimited:
		m.toast = newToast(i18n.T(i18n.MsgRateLimited), toastError)
		return m, scheduleToastClear()

	default:
		m.toast = newToast(apiErr.Message, toastError)
		return m, scheduleToastClear()
	}
}

// --- Filtering ---

func (m Model) filterText() string {
	return strings.ToLower(m.filter.Value())
}

// namespaceChoices lists the namespaces with an "all namespaces" entry first.
func (m Model) namespaceChoices() []domain.Namespace {
	f := m.filterText()
	result := []domain.Namespace{{}}
	for _, ns := range m.namespaces.Namespaces {
		if f == "" || strings.Contains(strings.ToLower(ns.ObjectMeta.Name), f) {
			result = append(result, ns)
		}
	}
	return result
}

func (m Model) filteredPods() []view.PodRow {
	f := m.filterText()
	var result []view.PodRow
	for _, r := range view.PodRows(m.pods, m.links) {
		if f == "" ||
			strings.Contains(strings.ToLower(r.Pod.ObjectMeta.Name), f) ||
			strings.Contains(strings.ToLower(r.DisplayStatus()), f) {
			result = append(result, r)
		}
	}
	return SortPods(result, m.sortState[ViewPods])
}

func filterCards[C cardRow](cards []C, f string) []C {
	if f == "" {
		return cards
	}
	var result []C
	for _, c := range cards {
		meta := c.Meta()
		if strings.Contains(strings.ToLower(meta.Name), f) || strings.Contains(strings.ToLower(meta.Namespace), f) {
			result = append(result, c)
		}
	}
	return result
}

func (m Model) filteredJobs() []view.JobCard {
	cards := filterCards(view.JobCards(m.jobs, m.links), m.filterText())
	return SortCards(cards, m.sortState[ViewJobs])
}

func (m Model) filteredReplicationControllers() []view.ReplicationControllerCard {
	cards := filterCards(view.ReplicationControllerCards(m.rcs, m.links), m.filterText())
	return SortCards(cards, m.sortState[ViewReplicationControllers])
}

func (m Model) filteredDaemonSets() []view.DaemonSetCard {
	cards := filterCards(view.DaemonSetCards(m.daemonSets, m.links), m.filterText())
	return SortCards(cards, m.sortState[ViewDaemonSets])
}

func (m Model) filteredDeployments() []view.DeploymentCard {
	cards := filterCards(view.DeploymentCards(m.deployments, m.links), m.filterText())
	return SortCards(cards, m.sortState[ViewDeployments])
}

func (m Model) listLen() int {
	switch m.view {
	case ViewNamespaces:
		return len(m.namespaceChoices())
	case ViewPods:
		return len(m.filteredPods())
	case ViewJobs:
		return len(m.filteredJobs())
	case ViewReplicationControllers:
		return len(m.filteredReplicationControllers())
	case ViewDaemonSets:
		return len(m.filteredDaemonSets())
	case ViewDeployments:
		return len(m.filteredDeployments())
	default:
		return 0
	}
}

func (m Model) contentHeight() int {
	// header(1) + tabs(1) + blank(1) + col_header(1) + status_bar(1) = 5 lines overhead
	ch := m.height - 6
	if ch < 1 {
		return 1
	}
	return ch
}

// --- View ---

func (m Model) View() string {
	if m.width == 0 {
		return i18n.T(i18n.MsgLoading)
	}

	// Startup error screen
	if m.view == ViewError {
		return m.renderErrorScreen()
	}

	var b strings.Builder

	// Context bar
	b.WriteString(m.renderContextBar())
	b.WriteString("\n")

	// Tabs
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	// Disconnected banner
	if m.disconnected {
		b.WriteString(bannerWarnStyle.Width(m.width).Render(i18n.T(i18n.MsgDisconnected)))
		b.WriteString("\n")
	}

	// Production namespace banner
	if m.namespace != "" && config.IsProdNamespace(m.namespace, m.cfg.ProdPatterns) {
		b.WriteString(bannerProdStyle.Width(m.width).Render(i18n.Tf(i18n.MsgProdBanner, m.namespace)))
		b.WriteString("\n")
	}

	switch {
	case m.selector != nil:
		b.WriteString(renderContainerSelector(m.selector))
	case m.logsMenu != nil && m.logsMenu.IsOpen():
		b.WriteString(renderLogsMenu(m.logsMenu, m.menuCursor))
	case m.loading:
		b.WriteString("\n  " + i18n.T(i18n.MsgLoading) + "\n")
	default:
		b.WriteString(m.renderContent())
	}

	// Filter bar
	if m.filtering {
		b.WriteString(fmt.Sprintf("  /%s", m.filter.View()))
		b.WriteString("\n")
	}

	// Fill remaining space
	lines := strings.Count(b.String(), "\n")
	for i := lines; i < m.height-2; i++ {
		b.WriteString("\n")
	}

	// Toast
	if m.toast.isActive() {
		b.WriteString(m.toast.render())
		b.WriteString("\n")
	}

	// Status bar
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) namespaceLabel() string {
	if m.namespace == "" {
		return i18n.T(i18n.MsgAllNamespaces)
	}
	return m.namespace
}

func (m Model) renderContextBar() string {
	title := titleStyle.Render(i18n.T(i18n.MsgAppTitle))
	if m.client == nil {
		return title
	}
	server := serverStyle.Render(m.client.GetServerURL())
	ns := namespaceStyle.Render(m.namespaceLabel())
	return fmt.Sprintf(" %s  server:%s  ns:%s", title, server, ns)
}

func (m Model) renderTabs() string {
	tabs := []struct {
		view  View
		key   string
		label i18n.MessageKey
	}{
		{ViewNamespaces, "1", i18n.MsgTabNamespaces},
		{ViewPods, "2", i18n.MsgTabPods},
		{ViewJobs, "3", i18n.MsgTabJobs},
		{ViewReplicationControllers, "4", i18n.MsgTabReplicationControllers},
		{ViewDaemonSets, "5", i18n.MsgTabDaemonSets},
		{ViewDeployments, "6", i18n.MsgTabDeployments},
	}

	active := m.view
	if !active.isList() {
		// detail and logs stay under the tab they were opened from
		for i := len(m.history) - 1; i >= 0; i-- {
			if v := viewForState(m.history[i].State); v.isList() {
				active = v
				break
			}
		}
	}

	var parts []string
	for _, t := range tabs {
		label := fmt.Sprintf("[%s] %s", t.key, i18n.T(t.label))
		if active == t.view {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderContent() string {
	ch := m.contentHeight()
	switch m.view {
	case ViewNamespaces:
		return renderNamespaceList(m.namespaceChoices(), m.cursor, m.width, ch, m.namespace)
	case ViewPods:
		return renderPodList(m.filteredPods(), m.cursor, m.width, ch, m.sortState[ViewPods])
	case ViewJobs:
		return renderCardList(m.filteredJobs(), m.cursor, m.width, ch, m.sortState[ViewJobs])
	case ViewReplicationControllers:
		return renderCardList(m.filteredReplicationControllers(), m.cursor, m.width, ch, m.sortState[ViewReplicationControllers])
	case ViewDaemonSets:
		return renderCardList(m.filteredDaemonSets(), m.cursor, m.width, ch, m.sortState[ViewDaemonSets])
	case ViewDeployments:
		return renderCardList(m.filteredDeployments(), m.cursor, m.width, ch, m.sortState[ViewDeployments])
	case ViewDetail:
		return renderDetail(&m.detail, m.width, ch)
	case ViewLogs:
		return renderLogs(&m.logState, m.width, ch)
	default:
		return ""
	}
}

func (m Model) renderStatusBar() string {
	var helpText string
	switch m.view {
	case ViewReplicationControllers:
		helpText = i18n.T(i18n.MsgHelpRCList)
	case ViewDetail:
		helpText = i18n.T(i18n.MsgHelpDetail)
	case ViewLogs:
		helpText = logHelpKeys(m.logState.previous, m.logState.wrap)
	default:
		helpText = i18n.T(i18n.MsgHelpList)
	}

	var itemInfo string
	switch m.view {
	case ViewLogs:
		itemInfo = fmt.Sprintf("%d %s", len(m.logState.lines), i18n.T(i18n.MsgLines))
	case ViewDetail:
		itemInfo = fmt.Sprintf("%d %s", len(m.detail.lines()), i18n.T(i18n.MsgLines))
	default:
		itemInfo = fmt.Sprintf("%d %s", m.listLen(), i18n.T(i18n.MsgItems))
	}
	left := fmt.Sprintf(" %s | %s | %s", m.view.String(), m.namespaceLabel(), itemInfo)
	return statusBarStyle.Width(m.width).Render(left + "  " + helpText)
}

func (m Model) renderErrorScreen() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(errorScreenStyle.Render(i18n.T(i18n.MsgErrorScreenTitle)))
	b.WriteString("\n\n")
	if m.startupErr != nil {
		b.WriteString(fmt.Sprintf("  %s\n", m.startupErr.Error()))
	}
	b.WriteString("\n")
	b.WriteString("  " + i18n.T(i18n.MsgErrorScreenKeys) + "\n")

	lines := strings.Count(b.String(), "\n")
	for i := lines; i < m.height; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

// --- Helpers ---

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return string(runes[:1])
	}
	return string(runes[:maxLen-1]) + "…"
}

func encodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
