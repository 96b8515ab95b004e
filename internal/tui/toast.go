package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastTTL = 5 * time.Second

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

type toast struct {
	message string
	level   toastLevel
	expires time.Time
	sticky  bool // stays until replaced, e.g. while disconnected
}

type toastExpiredMsg struct{}

func (t toast) isActive() bool {
	return t.message != "" && (t.sticky || time.Now().Before(t.expires))
}

func (t toast) render() string {
	if !t.isActive() {
		return ""
	}
	switch t.level {
	case toastSuccess:
		return toastSuccessStyle.Render(t.message)
	case toastError:
		return toastErrorStyle.Render(t.message)
	default:
		return t.message
	}
}

func newToast(msg string, level toastLevel) toast {
	return toast{
		message: msg,
		level:   level,
		expires: time.Now().Add(toastTTL),
	}
}

func newStickyToast(msg string, level toastLevel) toast {
	t := newToast(msg, level)
	t.sticky = true
	return t
}

func scheduleToastClear() tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}
