package domain

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// ObjectMeta identifies a resource returned by the dashboard API.
// (Namespace, Name) is unique within one collection fetch.
type ObjectMeta struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	Labels            map[string]string `json:"labels,omitempty"`
	CreationTimestamp metav1.Time       `json:"creationTimestamp"`
}

// Key returns "namespace/name".
func (m ObjectMeta) Key() string {
	return m.Namespace + "/" + m.Name
}

// TypeMeta carries the resource kind.
type TypeMeta struct {
	Kind string `json:"kind"`
}

// ListMeta carries collection-level counters.
type ListMeta struct {
	TotalItems int `json:"totalItems"`
}

// Event is a cluster event, used as a warning on controllers.
type Event struct {
	Type     string      `json:"type"`
	Reason   string      `json:"reason"`
	Message  string      `json:"message"`
	Object   string      `json:"object"`
	Count    int32       `json:"count"`
	LastSeen metav1.Time `json:"lastSeen"`
}

// EventList is the events section of a detail page.
type EventList struct {
	Events []Event `json:"events"`
}

// PodInfo aggregates the pods owned by a controller.
type PodInfo struct {
	Current   int32   `json:"current"`
	Desired   int32   `json:"desired"`
	Running   int32   `json:"running"`
	Pending   int32   `json:"pending"`
	Failed    int32   `json:"failed"`
	Succeeded int32   `json:"succeeded"`
	Warnings  []Event `json:"warnings"`
}

// --- Namespaces ---

type Namespace struct {
	ObjectMeta ObjectMeta            `json:"objectMeta"`
	TypeMeta   TypeMeta              `json:"typeMeta"`
	Phase      corev1.NamespacePhase `json:"phase"`
}

type NamespaceList struct {
	ListMeta   ListMeta    `json:"listMeta"`
	Namespaces []Namespace `json:"namespaces"`
}

// --- Pods ---

type PodStatus struct {
	Status   string          `json:"status"`
	PodPhase corev1.PodPhase `json:"podPhase"`
}

// Pod is one entry of a pod list.
type Pod struct {
	ObjectMeta   ObjectMeta `json:"objectMeta"`
	TypeMeta     TypeMeta   `json:"typeMeta"`
	PodStatus    PodStatus  `json:"podStatus"`
	RestartCount int32      `json:"restartCount"`
	NodeName     string     `json:"nodeName"`
	PodIP        string     `json:"podIP"`
}

type PodList struct {
	ListMeta ListMeta `json:"listMeta"`
	Pods     []Pod    `json:"pods"`
}

// PodContainer is a container entry of a replication controller pod.
// Name may be empty when the backend returns partial data.
type PodContainer struct {
	Name         string `json:"name"`
	RestartCount int32  `json:"restartCount"`
}

// ReplicationControllerPodWithContainers is one row of the logs menu.
type ReplicationControllerPodWithContainers struct {
	Name              string         `json:"name"`
	StartTime         *metav1.Time   `json:"startTime"`
	TotalRestartCount int32          `json:"totalRestartCount"`
	PodContainers     []PodContainer `json:"podContainers"`
}

type ReplicationControllerPods struct {
	Pods []ReplicationControllerPodWithContainers `json:"pods"`
}

// Logs is the log page of one pod container.
type Logs struct {
	PodID     string   `json:"podId"`
	Container string   `json:"container"`
	Lines     []string `json:"logs"`
}

// --- Jobs ---

type Job struct {
	ObjectMeta      ObjectMeta `json:"objectMeta"`
	TypeMeta        TypeMeta   `json:"typeMeta"`
	Pods            PodInfo    `json:"pods"`
	ContainerImages []string   `json:"containerImages"`
	Parallelism     *int32     `json:"parallelism"`
}

type JobList struct {
	ListMeta ListMeta `json:"listMeta"`
	Jobs     []Job    `json:"jobs"`
}

type JobDetail struct {
	ObjectMeta      ObjectMeta `json:"objectMeta"`
	TypeMeta        TypeMeta   `json:"typeMeta"`
	PodInfo         PodInfo    `json:"podInfo"`
	ContainerImages []string   `json:"containerImages"`
	Completions     *int32     `json:"completions"`
	Parallelism     *int32     `json:"parallelism"`
	PodList         PodList    `json:"podList"`
	EventList       EventList  `json:"eventList"`
}

// --- Replication controllers ---

type ReplicationController struct {
	ObjectMeta      ObjectMeta `json:"objectMeta"`
	TypeMeta        TypeMeta   `json:"typeMeta"`
	Pods            PodInfo    `json:"pods"`
	ContainerImages []string   `json:"containerImages"`
}

type ReplicationControllerList struct {
	ListMeta               ListMeta                `json:"listMeta"`
	ReplicationControllers []ReplicationController `json:"replicationControllers"`
}

type ReplicationControllerDetail struct {
	ObjectMeta      ObjectMeta        `json:"objectMeta"`
	TypeMeta        TypeMeta          `json:"typeMeta"`
	LabelSelector   map[string]string `json:"labelSelector"`
	ContainerImages []string          `json:"containerImages"`
	PodInfo         PodInfo           `json:"podInfo"`
	PodList         PodList           `json:"podList"`
	EventList       EventList         `json:"eventList"`
}

// --- Daemon sets ---

type DaemonSet struct {
	ObjectMeta      ObjectMeta `json:"objectMeta"`
	TypeMeta        TypeMeta   `json:"typeMeta"`
	Pods            PodInfo    `json:"pods"`
	ContainerImages []string   `json:"containerImages"`
}

type DaemonSetList struct {
	ListMeta   ListMeta    `json:"listMeta"`
	DaemonSets []DaemonSet `json:"daemonSets"`
}

type DaemonSetDetail struct {
	ObjectMeta      ObjectMeta        `json:"objectMeta"`
	TypeMeta        TypeMeta          `json:"typeMeta"`
	LabelSelector   map[string]string `json:"labelSelector"`
	ContainerImages []string          `json:"containerImages"`
	PodInfo         PodInfo           `json:"podInfo"`
	PodList         PodList           `json:"podList"`
	EventList       EventList         `json:"eventList"`
}

// --- Deployments ---

type Deployment struct {
	ObjectMeta      ObjectMeta `json:"objectMeta"`
	TypeMeta        TypeMeta   `json:"typeMeta"`
	Pods            PodInfo    `json:"pods"`
	ContainerImages []string   `json:"containerImages"`
}

type DeploymentList struct {
	ListMeta    ListMeta     `json:"listMeta"`
	Deployments []Deployment `json:"deployments"`
}

// DeploymentStatus holds replica counters of a deployment.
type DeploymentStatus struct {
	Replicas    int32 `json:"replicas"`
	Updated     int32 `json:"updated"`
	Available   int32 `json:"available"`
	Unavailable int32 `json:"unavailable"`
}

type RollingUpdateStrategy struct {
	MaxSurge       intstr.IntOrString `json:"maxSurge"`
	MaxUnavailable intstr.IntOrString `json:"maxUnavailable"`
}

type DeploymentDetail struct {
	ObjectMeta            ObjectMeta                    `json:"objectMeta"`
	TypeMeta              TypeMeta                      `json:"typeMeta"`
	Selector              map[string]string             `json:"selector"`
	StatusInfo            DeploymentStatus              `json:"statusInfo"`
	Strategy              appsv1.DeploymentStrategyType `json:"strategy"`
	MinReadySeconds       int32                         `json:"minReadySeconds"`
	RevisionHistoryLimit  *int32                        `json:"revisionHistoryLimit"`
	RollingUpdateStrategy *RollingUpdateStrategy        `json:"rollingUpdateStrategy"`
	EventList             EventList                     `json:"eventList"`
}
