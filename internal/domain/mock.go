package domain

import (
	"context"
	"sync"

	"github.com/Taishi66/kdash/internal/future"
)

// MockFetcher implements Fetcher for testing.
// Future takes precedence over Value/Err when set.
type MockFetcher[T any] struct {
	Value  T
	Err    error
	Future *future.Future[T]

	mu    sync.Mutex
	paths []string
}

var _ Fetcher[PodList] = (*MockFetcher[PodList])(nil)

func (f *MockFetcher[T]) Get(_ context.Context, path string) *future.Future[T] {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()

	if f.Future != nil {
		return f.Future
	}
	if f.Err != nil {
		return future.Rejected[T](f.Err)
	}
	return future.Resolved(f.Value)
}

// Paths returns every requested path, in call order.
func (f *MockFetcher[T]) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.paths))
	copy(out, f.paths)
	return out
}

// Calls returns how many times Get was called.
func (f *MockFetcher[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.paths)
}

// MockGateway implements Gateway for testing.
type MockGateway struct {
	ServerURLVal string

	NamespaceFetch        MockFetcher[NamespaceList]
	PodFetch              MockFetcher[PodList]
	LogsFetch             MockFetcher[Logs]
	JobFetch              MockFetcher[JobList]
	JobDetailFetch        MockFetcher[JobDetail]
	RCFetch               MockFetcher[ReplicationControllerList]
	RCDetailFetch         MockFetcher[ReplicationControllerDetail]
	RCPodsFetch           MockFetcher[ReplicationControllerPods]
	DaemonSetFetch        MockFetcher[DaemonSetList]
	DaemonSetDetailFetch  MockFetcher[DaemonSetDetail]
	DeploymentFetch       MockFetcher[DeploymentList]
	DeploymentDetailFetch MockFetcher[DeploymentDetail]

	// Error injection
	ReconnectErr error

	// Call tracking
	ReconnectCalls int
}

// Compile-time check.
var _ Gateway = (*MockGateway)(nil)

func (m *MockGateway) GetServerURL() string { return m.ServerURLVal }

func (m *MockGateway) Reconnect() error {
	m.ReconnectCalls++
	return m.ReconnectErr
}

func (m *MockGateway) Namespaces() Fetcher[NamespaceList] { return &m.NamespaceFetch }
func (m *MockGateway) Pods() Fetcher[PodList]             { return &m.PodFetch }
func (m *MockGateway) Logs() Fetcher[Logs]                { return &m.LogsFetch }
func (m *MockGateway) Jobs() Fetcher[JobList]             { return &m.JobFetch }
func (m *MockGateway) JobDetail() Fetcher[JobDetail]      { return &m.JobDetailFetch }

func (m *MockGateway) ReplicationControllers() Fetcher[ReplicationControllerList] {
	return &m.RCFetch
}

func (m *MockGateway) ReplicationControllerDetail() Fetcher[ReplicationControllerDetail] {
	return &m.RCDetailFetch
}

func (m *MockGateway) ReplicationControllerPods() Fetcher[ReplicationControllerPods] {
	return &m.RCPodsFetch
}

func (m *MockGateway) DaemonSets() Fetcher[DaemonSetList]          { return &m.DaemonSetFetch }
func (m *MockGateway) DaemonSetDetail() Fetcher[DaemonSetDetail]   { return &m.DaemonSetDetailFetch }
func (m *MockGateway) Deployments() Fetcher[DeploymentList]        { return &m.DeploymentFetch }
func (m *MockGateway) DeploymentDetail() Fetcher[DeploymentDetail] { return &m.DeploymentDetailFetch }
