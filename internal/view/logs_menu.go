package view

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/future"
	"github.com/Taishi66/kdash/internal/resolve"
	"github.com/Taishi66/kdash/internal/router"
)

// PodLogsMenu lists the pods of one replication controller with links to
// their logs. The list is refetched on every open.
type PodLogsMenu struct {
	Namespace                 string
	ReplicationControllerName string

	fetcher domain.Fetcher[domain.ReplicationControllerPods]
	links   Hrefer
	limit   int

	pods    []domain.ReplicationControllerPodWithContainers
	token   uint64
	open    bool
	settled bool
	err     error
}

// NewPodLogsMenu returns a closed menu for the replication controller
// rcName. limit <= 0 uses the default page size.
func NewPodLogsMenu(namespace, rcName string, fetcher domain.Fetcher[domain.ReplicationControllerPods], links Hrefer, limit int) *PodLogsMenu {
	return &PodLogsMenu{
		Namespace:                 namespace,
		ReplicationControllerName: rcName,
		fetcher:                   fetcher,
		links:                     links,
		limit:                     limit,
	}
}

// Open clears the displayed pods and only then starts a fresh fetch, so
// pods of a previous selection never show while the new list loads.
// The returned token must be passed to Receive or Fail with the result.
func (m *PodLogsMenu) Open(ctx context.Context) (uint64, *future.Future[domain.ReplicationControllerPods]) {
	if m.pods != nil {
		m.pods = []domain.ReplicationControllerPodWithContainers{}
	}
	m.token++
	m.open = true
	m.settled = false
	m.err = nil
	return m.token, resolve.ReplicationControllerPods(ctx, m.fetcher, m.Namespace, m.ReplicationControllerName, m.limit)
}

// Receive stores the result of the fetch identified by token. Results of
// superseded fetches are dropped and Receive returns false.
func (m *PodLogsMenu) Receive(token uint64, result domain.ReplicationControllerPods) bool {
	if token != m.token {
		klog.V(4).Infof("Dropping stale replication controller pods for %s/%s (token %d, latest %d)",
			m.Namespace, m.ReplicationControllerName, token, m.token)
		return false
	}
	klog.V(2).Infof("Successfully fetched replication controller pods for %s/%s: %d pods",
		m.Namespace, m.ReplicationControllerName, len(result.Pods))
	m.pods = result.Pods
	m.settled = true
	return true
}

// Fail records the error of the fetch identified by token. It returns false
// for superseded fetches.
func (m *PodLogsMenu) Fail(token uint64, err error) bool {
	if token != m.token {
		return false
	}
	klog.Errorf("Error fetching replication controller pods for %s/%s: %v",
		m.Namespace, m.ReplicationControllerName, err)
	m.settled = true
	m.err = err
	return true
}

// Close hides the menu. An in-flight fetch is not canceled.
func (m *PodLogsMenu) Close() { m.open = false }

// IsOpen reports whether the menu is shown.
func (m *PodLogsMenu) IsOpen() bool { return m.open }

// Loading reports whether the latest fetch is still in flight.
func (m *PodLogsMenu) Loading() bool { return !m.settled }

// Err returns the error of the latest fetch, if it failed.
func (m *PodLogsMenu) Err() error { return m.err }

// Pods returns the currently displayed pods.
func (m *PodLogsMenu) Pods() []domain.ReplicationControllerPodWithContainers {
	return m.pods
}

// LogsHref links to the logs view of podName.
func (m *PodLogsMenu) LogsHref(podName string) string {
	if m.links == nil {
		return ""
	}
	return m.links.Href(router.StateLogs, router.LogsParams(m.Namespace, m.ReplicationControllerName, podName))
}

// PodContainerExists reports whether the first container entry of pod has
// a name. Partially populated entries count as having no container.
func PodContainerExists(pod domain.ReplicationControllerPodWithContainers) bool {
	if len(pod.PodContainers) == 0 {
		return false
	}
	return pod.PodContainers[0].Name != ""
}

// PodContainersRestarted reports whether any container of pod restarted.
// A nil pod was never restarted.
func PodContainersRestarted(pod *domain.ReplicationControllerPodWithContainers) bool {
	if pod == nil {
		return false
	}
	return pod.TotalRestartCount > 0
}
