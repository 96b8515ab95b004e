package tui

import (
	"testing"

	"github.com/Taishi66/kdash/internal/view"
)

func TestPhaseStatus(t *testing.T) {
	tests := []struct {
		phase string
		want  view.Status
	}{
		{"Running", view.StatusSuccess},
		{"Active", view.StatusSuccess},
		{"Succeeded", view.StatusSuccess},
		{"Pending", view.StatusPending},
		{"Terminating", view.StatusPending},
		{"ContainerCreating", view.StatusPending},
		{"Failed", view.StatusWarning},
		{"Unknown", view.StatusWarning},
		{"CrashLoopBackOff", view.StatusWarning},
	}
	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			got, ok := phaseStatus[tt.phase]
			if !ok || got != tt.want {
				t.Errorf("phaseStatus[%q] = %v (known %v), want %v", tt.phase, got, ok, tt.want)
			}
		})
	}
}

func TestColorizePhase(t *testing.T) {
	// Just verify it doesn't panic and returns non-empty for known and unknown phases
	for _, s := range []string{"Running", "Terminating", "Failed", "UnknownStatus", ""} {
		t.Run(s, func(t *testing.T) {
			result := colorizePhase(s)
			if s != "" && result == "" {
				t.Errorf("colorizePhase(%q) returned empty string", s)
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status view.Status
		want   string
	}{
		{view.StatusSuccess, string(colorSuccess)},
		{view.StatusPending, string(colorWarning)},
		{view.StatusWarning, string(colorError)},
	}
	for _, tt := range tests {
		if got := string(statusColor(tt.status)); got != tt.want {
			t.Errorf("statusColor(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
