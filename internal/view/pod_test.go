package view

import (
	"testing"

	corev1 "k8s.io/api/core/v1"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/router"
)

func TestPodRowStatus(t *testing.T) {
	tests := []struct {
		phase corev1.PodPhase
		want  Status
	}{
		{corev1.PodRunning, StatusSuccess},
		{corev1.PodSucceeded, StatusSuccess},
		{corev1.PodPending, StatusPending},
		{corev1.PodFailed, StatusWarning},
		{corev1.PodUnknown, StatusWarning},
	}
	for _, tt := range tests {
		row := NewPodRow(domain.Pod{PodStatus: domain.PodStatus{PodPhase: tt.phase}}, nil)
		if got := row.Status(); got != tt.want {
			t.Errorf("phase %s: Status() = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

func TestPodRowDisplayStatus(t *testing.T) {
	row := NewPodRow(domain.Pod{PodStatus: domain.PodStatus{PodPhase: corev1.PodRunning}}, nil)
	if got := row.DisplayStatus(); got != "Running" {
		t.Errorf("DisplayStatus() = %q, want %q", got, "Running")
	}
	row.Pod.PodStatus.Status = "CrashLoopBackOff"
	if got := row.DisplayStatus(); got != "CrashLoopBackOff" {
		t.Errorf("DisplayStatus() = %q, want %q", got, "CrashLoopBackOff")
	}
}

func TestPodRowLogsHref(t *testing.T) {
	rows := PodRows(domain.PodList{Pods: []domain.Pod{
		{ObjectMeta: domain.ObjectMeta{Namespace: "ns", Name: "web-1"}, RestartCount: 2},
	}}, router.New())
	if got := rows[0].LogsHref(); got != "#!/log/ns/web-1" {
		t.Errorf("LogsHref() = %q, want %q", got, "#!/log/ns/web-1")
	}
	if !rows[0].Restarted() {
		t.Error("Restarted() should be true with 2 restarts")
	}
}
