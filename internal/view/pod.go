package view

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/router"
)

// PodRow is the list entry of a pod.
type PodRow struct {
	Pod   domain.Pod
	links Hrefer
}

// NewPodRow wraps pod for display in the pod list.
func NewPodRow(pod domain.Pod, links Hrefer) PodRow {
	return PodRow{Pod: pod, links: links}
}

// PodRows converts a pod list response into rows, keeping its order.
func PodRows(list domain.PodList, links Hrefer) []PodRow {
	rows := make([]PodRow, 0, len(list.Pods))
	for _, p := range list.Pods {
		rows = append(rows, NewPodRow(p, links))
	}
	return rows
}

// Status maps the pod phase onto the card classification.
func (r PodRow) Status() Status {
	switch r.Pod.PodStatus.PodPhase {
	case corev1.PodFailed, corev1.PodUnknown:
		return StatusWarning
	case corev1.PodPending:
		return StatusPending
	default:
		return StatusSuccess
	}
}

// Restarted reports whether any container of the pod restarted.
func (r PodRow) Restarted() bool {
	return r.Pod.RestartCount > 0
}

// LogsHref links to the logs view of the pod.
func (r PodRow) LogsHref() string {
	if r.links == nil {
		return ""
	}
	return r.links.Href(router.StateLogs, router.LogsParams(r.Pod.ObjectMeta.Namespace, "", r.Pod.ObjectMeta.Name))
}

// DisplayStatus prefers the backend's status string over the raw phase.
func (r PodRow) DisplayStatus() string {
	if r.Pod.PodStatus.Status != "" {
		return r.Pod.PodStatus.Status
	}
	return string(r.Pod.PodStatus.PodPhase)
}
