package view

import (
	"context"
	"errors"
	"testing"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/future"
	"github.com/Taishi66/kdash/internal/router"
)

func rcPods(names ...string) domain.ReplicationControllerPods {
	var out domain.ReplicationControllerPods
	for _, n := range names {
		out.Pods = append(out.Pods, domain.ReplicationControllerPodWithContainers{
			Name:          n,
			PodContainers: []domain.PodContainer{{Name: "main"}},
		})
	}
	return out
}

func TestPodLogsMenuOpenFetchesPods(t *testing.T) {
	fetcher := &domain.MockFetcher[domain.ReplicationControllerPods]{Value: rcPods("frontend-1", "frontend-2")}
	menu := NewPodLogsMenu("ns", "frontend", fetcher, router.New(), 10)

	token, f := menu.Open(context.Background())
	if !menu.IsOpen() {
		t.Error("IsOpen() should be true after Open")
	}
	if got := fetcher.Paths(); len(got) != 1 || got[0] != "api/v1/replicationcontroller/pod/ns/frontend?limit=10" {
		t.Errorf("paths = %v", got)
	}

	pods, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await() error = %v", err)
	}
	if !menu.Receive(token, pods) {
		t.Fatal("Receive() should accept the latest token")
	}
	if len(menu.Pods()) != 2 {
		t.Errorf("len(Pods()) = %d, want 2", len(menu.Pods()))
	}
}

func TestPodLogsMenuClearsBeforeFetchSettles(t *testing.T) {
	pending := future.New[domain.ReplicationControllerPods]()
	fetcher := &domain.MockFetcher[domain.ReplicationControllerPods]{Value: rcPods("old-1", "old-2")}
	menu := NewPodLogsMenu("ns", "frontend", fetcher, nil, 10)

	token, _ := menu.Open(context.Background())
	menu.Receive(token, rcPods("old-1", "old-2"))
	if len(menu.Pods()) != 2 {
		t.Fatalf("setup: len(Pods()) = %d, want 2", len(menu.Pods()))
	}

	fetcher.Future = pending
	menu.Open(context.Background())

	if pending.Settled() {
		t.Fatal("fetch should still be pending")
	}
	if len(menu.Pods()) != 0 {
		t.Errorf("len(Pods()) after second Open = %d, want 0 before fetch settles", len(menu.Pods()))
	}
}

func TestPodLogsMenuDropsStaleResult(t *testing.T) {
	first := future.New[domain.ReplicationControllerPods]()
	second := future.New[domain.ReplicationControllerPods]()
	fetcher := &domain.MockFetcher[domain.ReplicationControllerPods]{Future: first}
	menu := NewPodLogsMenu("ns", "frontend", fetcher, nil, 10)

	t1, _ := menu.Open(context.Background())
	fetcher.Future = second
	t2, _ := menu.Open(context.Background())

	if t2 <= t1 {
		t.Fatalf("tokens not increasing: %d then %d", t1, t2)
	}

	// Second fetch settles first, then the stale one.
	if !menu.Receive(t2, rcPods("new-1")) {
		t.Error("Receive() should accept latest token")
	}
	if menu.Receive(t1, rcPods("stale-1", "stale-2")) {
		t.Error("Receive() should drop stale token")
	}
	if got := menu.Pods(); len(got) != 1 || got[0].Name != "new-1" {
		t.Errorf("Pods() = %+v, want [new-1]", got)
	}
	if menu.Fail(t1, errors.New("late")) {
		t.Error("Fail() should ignore stale token")
	}
	if !menu.Fail(t2, errors.New("boom")) {
		t.Error("Fail() should report latest token")
	}
}

func TestPodLogsMenuSettledState(t *testing.T) {
	fetcher := &domain.MockFetcher[domain.ReplicationControllerPods]{Future: future.New[domain.ReplicationControllerPods]()}
	menu := NewPodLogsMenu("ns", "frontend", fetcher, nil, 10)

	t1, _ := menu.Open(context.Background())
	if !menu.Loading() {
		t.Error("Loading() should be true while the fetch is pending")
	}
	menu.Receive(t1, domain.ReplicationControllerPods{})
	if menu.Loading() || menu.Err() != nil {
		t.Errorf("empty result: Loading() = %v, Err() = %v", menu.Loading(), menu.Err())
	}

	t2, _ := menu.Open(context.Background())
	if !menu.Loading() {
		t.Error("Open should reset the settled state")
	}
	menu.Fail(t1, errors.New("late"))
	if !menu.Loading() || menu.Err() != nil {
		t.Error("stale failure should not settle the menu")
	}
	boom := errors.New("boom")
	menu.Fail(t2, boom)
	if menu.Loading() || menu.Err() != boom {
		t.Errorf("failure: Loading() = %v, Err() = %v", menu.Loading(), menu.Err())
	}

	menu.Open(context.Background())
	if menu.Err() != nil {
		t.Error("Open should clear the previous error")
	}
}

func TestPodLogsMenuClose(t *testing.T) {
	menu := NewPodLogsMenu("ns", "rc", &domain.MockFetcher[domain.ReplicationControllerPods]{}, nil, 0)
	menu.Open(context.Background())
	menu.Close()
	if menu.IsOpen() {
		t.Error("IsOpen() should be false after Close")
	}
}

func TestPodLogsMenuLogsHref(t *testing.T) {
	menu := NewPodLogsMenu("ns", "frontend", nil, router.New(), 10)
	want := "#!/log/ns/frontend-1?replicationcontroller=frontend"
	if got := menu.LogsHref("frontend-1"); got != want {
		t.Errorf("LogsHref() = %q, want %q", got, want)
	}
}

func TestPodContainerExists(t *testing.T) {
	tests := []struct {
		name string
		pod  domain.ReplicationControllerPodWithContainers
		want bool
	}{
		{"named container", domain.ReplicationControllerPodWithContainers{PodContainers: []domain.PodContainer{{Name: "nginx"}}}, true},
		{"unnamed first container", domain.ReplicationControllerPodWithContainers{PodContainers: []domain.PodContainer{{}}}, false},
		{"unnamed first, named second", domain.ReplicationControllerPodWithContainers{PodContainers: []domain.PodContainer{{}, {Name: "b"}}}, false},
		{"no containers", domain.ReplicationControllerPodWithContainers{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PodContainerExists(tt.pod); got != tt.want {
				t.Errorf("PodContainerExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPodContainersRestarted(t *testing.T) {
	tests := []struct {
		name string
		pod  *domain.ReplicationControllerPodWithContainers
		want bool
	}{
		{"nil pod", nil, false},
		{"restarted", &domain.ReplicationControllerPodWithContainers{TotalRestartCount: 3}, true},
		{"never restarted", &domain.ReplicationControllerPodWithContainers{TotalRestartCount: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PodContainersRestarted(tt.pod); got != tt.want {
				t.Errorf("PodContainersRestarted() = %v, want %v", got, tt.want)
			}
		})
	}
}
