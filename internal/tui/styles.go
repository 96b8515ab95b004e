package tui

import (
	"github.com/charmbracelet/lipgloss"
	corev1 "k8s.io/api/core/v1"

	"github.com/Taishi66/kdash/internal/view"
)

// Palette of the web dashboard: material blue, green, amber and red.
var (
	colorPrimary = lipgloss.Color("#326DE6")
	colorAccent  = lipgloss.Color("#29B6F6")
	colorSuccess = lipgloss.Color("#00C752")
	colorWarning = lipgloss.Color("#FFAD20")
	colorError   = lipgloss.Color("#F44336")
	colorMuted   = lipgloss.Color("#757575")
	colorText    = lipgloss.Color("#FFFFFF")
	colorBar     = lipgloss.Color("#303030")
)

var (
	bold = lipgloss.NewStyle().Bold(true)

	titleStyle     = bold.Copy().Foreground(colorAccent)
	serverStyle    = bold.Copy().Foreground(colorPrimary)
	namespaceStyle = bold.Copy().Foreground(colorAccent)
	sectionStyle   = bold.Copy().Foreground(colorPrimary)
	headerStyle    = bold.Copy().Foreground(colorMuted).Underline(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle  = bold.Copy().Background(colorBar)

	tabActiveStyle   = bold.Copy().Foreground(colorAccent).Underline(true)
	tabInactiveStyle = mutedStyle.Copy()

	statusBarStyle = lipgloss.NewStyle().Background(colorBar).Foreground(colorText).Padding(0, 1)

	toastSuccessStyle = bold.Copy().Foreground(colorSuccess)
	toastErrorStyle   = bold.Copy().Foreground(colorError)

	bannerWarnStyle = bold.Copy().Background(colorWarning).Foreground(lipgloss.Color("#000000")).Padding(0, 1)
	bannerProdStyle = bold.Copy().Background(colorError).Foreground(colorText).Padding(0, 1)

	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	errorScreenStyle = bold.Copy().Foreground(colorError).Padding(1, 0, 0, 2)
)

// phaseStatus classifies the phase strings the backend sends for pods and
// namespaces, plus the common container reasons shown in their place.
var phaseStatus = map[string]view.Status{
	string(corev1.PodRunning):           view.StatusSuccess,
	string(corev1.PodSucceeded):         view.StatusSuccess,
	string(corev1.NamespaceActive):      view.StatusSuccess,
	"Completed":                         view.StatusSuccess,
	string(corev1.PodPending):           view.StatusPending,
	string(corev1.NamespaceTerminating): view.StatusPending,
	"ContainerCreating":                 view.StatusPending,
	string(corev1.PodFailed):            view.StatusWarning,
	string(corev1.PodUnknown):           view.StatusWarning,
	"Error":                             view.StatusWarning,
	"CrashLoopBackOff":                  view.StatusWarning,
	"ImagePullBackOff":                  view.StatusWarning,
	"ErrImagePull":                      view.StatusWarning,
	"OOMKilled":                         view.StatusWarning,
}

// colorizePhase colors a phase string; unknown phases are muted.
func colorizePhase(phase string) string {
	st, ok := phaseStatus[phase]
	if !ok {
		return mutedStyle.Render(phase)
	}
	return renderStatus(st, phase)
}

// statusColor maps a controller classification onto the palette.
func statusColor(s view.Status) lipgloss.Color {
	switch s {
	case view.StatusWarning:
		return colorError
	case view.StatusPending:
		return colorWarning
	default:
		return colorSuccess
	}
}

func renderStatus(s view.Status, text string) string {
	return lipgloss.NewStyle().Foreground(statusColor(s)).Render(text)
}
