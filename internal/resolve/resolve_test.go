package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/future"
	"github.com/Taishi66/kdash/internal/router"
)

func TestPodListPath(t *testing.T) {
	tests := []struct {
		name   string
		params router.Params
		want   string
	}{
		{"namespace", router.NewParams(router.ParamNamespace, "foo"), "api/v1/pod/foo"},
		{"no namespace", router.Params{}, "api/v1/pod/"},
		{"nil params", nil, "api/v1/pod/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &domain.MockFetcher[domain.PodList]{}
			PodList(context.Background(), f, tt.params)

			paths := f.Paths()
			if len(paths) != 1 {
				t.Fatalf("GET calls = %d, want exactly 1", len(paths))
			}
			if paths[0] != tt.want {
				t.Errorf("path = %q, want %q", paths[0], tt.want)
			}
		})
	}
}

func TestPodListReturnsFetcherFuture(t *testing.T) {
	pending := future.New[domain.PodList]()
	f := &domain.MockFetcher[domain.PodList]{Future: pending}

	got := PodList(context.Background(), f, router.NewParams(router.ParamNamespace, "foo"))
	if got != pending {
		t.Error("PodList() should return the fetcher's future instance unchanged")
	}
	if got.Settled() {
		t.Error("future should still be pending")
	}
}

func TestResolverPropagatesRejection(t *testing.T) {
	want := &domain.APIError{Type: domain.ErrUnreachable, Message: "down"}
	f := &domain.MockFetcher[domain.JobList]{Err: want}

	_, err := JobList(context.Background(), f, nil).Await(context.Background())
	if !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}

func TestDetailPaths(t *testing.T) {
	ctx := context.Background()
	p := router.StateParams("ns", "web")
	gw := &domain.MockGateway{}

	JobDetail(ctx, gw.JobDetail(), p)
	ReplicationControllerDetail(ctx, gw.ReplicationControllerDetail(), p)
	DaemonSetDetail(ctx, gw.DaemonSetDetail(), p)
	DeploymentDetail(ctx, gw.DeploymentDetail(), p)

	checks := []struct {
		got  []string
		want string
	}{
		{gw.JobDetailFetch.Paths(), "api/v1/job/ns/web"},
		{gw.RCDetailFetch.Paths(), "api/v1/replicationcontroller/ns/web"},
		{gw.DaemonSetDetailFetch.Paths(), "api/v1/daemonset/ns/web"},
		{gw.DeploymentDetailFetch.Paths(), "api/v1/deployment/ns/web"},
	}
	for _, c := range checks {
		if len(c.got) != 1 || c.got[0] != c.want {
			t.Errorf("paths = %v, want [%s]", c.got, c.want)
		}
	}
}

func TestCollectionPaths(t *testing.T) {
	ctx := context.Background()
	gw := &domain.MockGateway{}

	NamespaceList(ctx, gw.Namespaces())
	JobList(ctx, gw.Jobs(), nil)
	ReplicationControllerList(ctx, gw.ReplicationControllers(), router.NewParams(router.ParamNamespace, "a"))
	DaemonSetList(ctx, gw.DaemonSets(), nil)
	DeploymentList(ctx, gw.Deployments(), router.NewParams(router.ParamNamespace, "b"))

	checks := []struct {
		got  []string
		want string
	}{
		{gw.NamespaceFetch.Paths(), "api/v1/namespace"},
		{gw.JobFetch.Paths(), "api/v1/job/"},
		{gw.RCFetch.Paths(), "api/v1/replicationcontroller/a"},
		{gw.DaemonSetFetch.Paths(), "api/v1/daemonset/"},
		{gw.DeploymentFetch.Paths(), "api/v1/deployment/b"},
	}
	for _, c := range checks {
		if len(c.got) != 1 || c.got[0] != c.want {
			t.Errorf("paths = %v, want [%s]", c.got, c.want)
		}
	}
}

func TestReplicationControllerPodsPath(t *testing.T) {
	tests := []struct {
		limit int
		want  string
	}{
		{10, "api/v1/replicationcontroller/pod/ns/frontend?limit=10"},
		{0, "api/v1/replicationcontroller/pod/ns/frontend?limit=10"},
		{25, "api/v1/replicationcontroller/pod/ns/frontend?limit=25"},
	}
	for _, tt := range tests {
		f := &domain.MockFetcher[domain.ReplicationControllerPods]{}
		ReplicationControllerPods(context.Background(), f, "ns", "frontend", tt.limit)
		if got := f.Paths()[0]; got != tt.want {
			t.Errorf("limit %d: path = %q, want %q", tt.limit, got, tt.want)
		}
	}
}

func TestLogsPath(t *testing.T) {
	tests := []struct {
		name   string
		params router.Params
		want   string
	}{
		{"pod only", router.LogsParams("ns", "", "web-1"), "api/v1/log/ns/web-1"},
		{"container", router.LogsParams("ns", "rc", "web-1").With(router.ParamContainer, "nginx"), "api/v1/log/ns/web-1/nginx"},
		{"previous", router.LogsParams("ns", "", "web-1").With(router.ParamPrevious, "true"), "api/v1/log/ns/web-1?previous=true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &domain.MockFetcher[domain.Logs]{}
			Logs(context.Background(), f, tt.params)
			if got := f.Paths()[0]; got != tt.want {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
		})
	}
}
