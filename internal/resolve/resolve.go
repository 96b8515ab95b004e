// Package resolve builds dashboard API paths from route params and starts
// the fetch that populates a view before it is shown.
//
// Every resolver issues exactly one GET and returns the fetcher's future
// unchanged. There is no retry and no timeout; rejections propagate to the
// caller, which treats them as a failed navigation.
package resolve

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/future"
	"github.com/Taishi66/kdash/internal/router"
)

const apiPrefix = "api/v1/"

// DefaultMenuLimit is the page size of the logs menu pod list.
const DefaultMenuLimit = 10

// CollectionPath returns api/v1/<kind>/<namespace>. An empty namespace
// leaves an empty trailing segment, which the API reads as all namespaces.
func CollectionPath(kind, namespace string) string {
	return apiPrefix + kind + "/" + url.PathEscape(namespace)
}

// DetailPath returns api/v1/<kind>/<namespace>/<name>.
func DetailPath(kind, namespace, name string) string {
	return CollectionPath(kind, namespace) + "/" + url.PathEscape(name)
}

// NamespaceList fetches every namespace.
func NamespaceList(ctx context.Context, f domain.Fetcher[domain.NamespaceList]) *future.Future[domain.NamespaceList] {
	return f.Get(ctx, apiPrefix+"namespace")
}

// PodList fetches the pods of the params namespace.
func PodList(ctx context.Context, f domain.Fetcher[domain.PodList], p router.Params) *future.Future[domain.PodList] {
	return f.Get(ctx, CollectionPath("pod", p.Namespace()))
}

// JobList fetches the jobs of the params namespace.
func JobList(ctx context.Context, f domain.Fetcher[domain.JobList], p router.Params) *future.Future[domain.JobList] {
	return f.Get(ctx, CollectionPath("job", p.Namespace()))
}

// JobDetail fetches one job by namespace and name.
func JobDetail(ctx context.Context, f domain.Fetcher[domain.JobDetail], p router.Params) *future.Future[domain.JobDetail] {
	return f.Get(ctx, DetailPath("job", p.Namespace(), p.Get(router.ParamName)))
}

// ReplicationControllerList fetches the replication controllers of the params namespace.
func ReplicationControllerList(ctx context.Context, f domain.Fetcher[domain.ReplicationControllerList], p router.Params) *future.Future[domain.ReplicationControllerList] {
	return f.Get(ctx, CollectionPath("replicationcontroller", p.Namespace()))
}

// ReplicationControllerDetail fetches one replication controller by namespace and name.
func ReplicationControllerDetail(ctx context.Context, f domain.Fetcher[domain.ReplicationControllerDetail], p router.Params) *future.Future[domain.ReplicationControllerDetail] {
	return f.Get(ctx, DetailPath("replicationcontroller", p.Namespace(), p.Get(router.ParamName)))
}

// ReplicationControllerPods fetches at most limit pods of one replication
// controller, with their containers. limit <= 0 means DefaultMenuLimit.
func ReplicationControllerPods(ctx context.Context, f domain.Fetcher[domain.ReplicationControllerPods], namespace, name string, limit int) *future.Future[domain.ReplicationControllerPods] {
	if limit <= 0 {
		limit = DefaultMenuLimit
	}
	path := DetailPath("replicationcontroller/pod", namespace, name) + "?limit=" + strconv.Itoa(limit)
	return f.Get(ctx, path)
}

// DaemonSetList fetches the daemon sets of the params namespace.
func DaemonSetList(ctx context.Context, f domain.Fetcher[domain.DaemonSetList], p router.Params) *future.Future[domain.DaemonSetList] {
	return f.Get(ctx, CollectionPath("daemonset", p.Namespace()))
}

// DaemonSetDetail fetches one daemon set by namespace and name.
func DaemonSetDetail(ctx context.Context, f domain.Fetcher[domain.DaemonSetDetail], p router.Params) *future.Future[domain.DaemonSetDetail] {
	return f.Get(ctx, DetailPath("daemonset", p.Namespace(), p.Get(router.ParamName)))
}

// DeploymentList fetches the deployments of the params namespace.
func DeploymentList(ctx context.Context, f domain.Fetcher[domain.DeploymentList], p router.Params) *future.Future[domain.DeploymentList] {
	return f.Get(ctx, CollectionPath("deployment", p.Namespace()))
}

// DeploymentDetail fetches one deployment by namespace and name.
func DeploymentDetail(ctx context.Context, f domain.Fetcher[domain.DeploymentDetail], p router.Params) *future.Future[domain.DeploymentDetail] {
	return f.Get(ctx, DetailPath("deployment", p.Namespace(), p.Get(router.ParamName)))
}

// Logs fetches api/v1/log/<namespace>/<pod>[/<container>], adding
// previous=true when the params ask for the previous container instance.
func Logs(ctx context.Context, f domain.Fetcher[domain.Logs], p router.Params) *future.Future[domain.Logs] {
	var b strings.Builder
	b.WriteString(DetailPath("log", p.Namespace(), p.Get(router.ParamPod)))
	if c := p.Get(router.ParamContainer); c != "" {
		b.WriteString("/")
		b.WriteString(url.PathEscape(c))
	}
	if p.Get(router.ParamPrevious) == "true" {
		b.WriteString("?previous=true")
	}
	return f.Get(ctx, b.String())
}
