package domain

import (
	"context"

	"github.com/Taishi66/kdash/internal/future"
)

// Fetcher issues one GET for path and returns the pending decoded result.
type Fetcher[T any] interface {
	Get(ctx context.Context, path string) *future.Future[T]
}

// ClusterInfo provides metadata about the current API connection.
type ClusterInfo interface {
	GetServerURL() string
	Reconnect() error
}

// NamespaceRepository provides access to namespaces.
type NamespaceRepository interface {
	Namespaces() Fetcher[NamespaceList]
}

// PodRepository provides access to pods and their logs.
type PodRepository interface {
	Pods() Fetcher[PodList]
	Logs() Fetcher[Logs]
}

// WorkloadRepository provides access to pod controllers.
type WorkloadRepository interface {
	Jobs() Fetcher[JobList]
	JobDetail() Fetcher[JobDetail]
	ReplicationControllers() Fetcher[ReplicationControllerList]
	ReplicationControllerDetail() Fetcher[ReplicationControllerDetail]
	ReplicationControllerPods() Fetcher[ReplicationControllerPods]
	DaemonSets() Fetcher[DaemonSetList]
	DaemonSetDetail() Fetcher[DaemonSetDetail]
	Deployments() Fetcher[DeploymentList]
	DeploymentDetail() Fetcher[DeploymentDetail]
}

// Gateway is the primary port combining all dashboard API operations.
// The TUI depends on this interface, not on concrete implementations.
type Gateway interface {
	ClusterInfo
	NamespaceRepository
	PodRepository
	WorkloadRepository
}
