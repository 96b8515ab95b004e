package view

import (
	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/router"
)

// JobCard is the list entry of a job.
type JobCard struct {
	statusCard
	Job domain.Job
}

// NewJobCard wraps job for display in the job list.
func NewJobCard(job domain.Job, links Hrefer) JobCard {
	return JobCard{
		statusCard: statusCard{meta: job.ObjectMeta, pods: job.Pods, detail: router.StateJobDetail, links: links},
		Job:        job,
	}
}

// JobCards converts a job list response into cards, keeping its order.
func JobCards(list domain.JobList, links Hrefer) []JobCard {
	cards := make([]JobCard, 0, len(list.Jobs))
	for _, j := range list.Jobs {
		cards = append(cards, NewJobCard(j, links))
	}
	return cards
}

// ReplicationControllerCard is the list entry of a replication controller.
type ReplicationControllerCard struct {
	statusCard
	ReplicationController domain.ReplicationController
}

// NewReplicationControllerCard wraps rc for display in the replication controller list.
func NewReplicationControllerCard(rc domain.ReplicationController, links Hrefer) ReplicationControllerCard {
	return ReplicationControllerCard{
		statusCard:            statusCard{meta: rc.ObjectMeta, pods: rc.Pods, detail: router.StateReplicationControllerDetail, links: links},
		ReplicationController: rc,
	}
}

// ReplicationControllerCards converts a replication controller list response into cards.
func ReplicationControllerCards(list domain.ReplicationControllerList, links Hrefer) []ReplicationControllerCard {
	cards := make([]ReplicationControllerCard, 0, len(list.ReplicationControllers))
	for _, rc := range list.ReplicationControllers {
		cards = append(cards, NewReplicationControllerCard(rc, links))
	}
	return cards
}

// DaemonSetCard is the list entry of a daemon set.
type DaemonSetCard struct {
	statusCard
	DaemonSet domain.DaemonSet
}

// NewDaemonSetCard wraps ds for display in the daemon set list.
func NewDaemonSetCard(ds domain.DaemonSet, links Hrefer) DaemonSetCard {
	return DaemonSetCard{
		statusCard: statusCard{meta: ds.ObjectMeta, pods: ds.Pods, detail: router.StateDaemonSetDetail, links: links},
		DaemonSet:  ds,
	}
}

// DaemonSetCards converts a daemon set list response into cards.
func DaemonSetCards(list domain.DaemonSetList, links Hrefer) []DaemonSetCard {
	cards := make([]DaemonSetCard, 0, len(list.DaemonSets))
	for _, ds := range list.DaemonSets {
		cards = append(cards, NewDaemonSetCard(ds, links))
	}
	return cards
}

// DeploymentCard is the list entry of a deployment.
type DeploymentCard struct {
	statusCard
	Deployment domain.Deployment
}

// NewDeploymentCard wraps d for display in the deployment list.
func NewDeploymentCard(d domain.Deployment, links Hrefer) DeploymentCard {
	return DeploymentCard{
		statusCard: statusCard{meta: d.ObjectMeta, pods: d.Pods, detail: router.StateDeploymentDetail, links: links},
		Deployment: d,
	}
}

// DeploymentCards converts a deployment list response into cards.
func DeploymentCards(list domain.DeploymentList, links Hrefer) []DeploymentCard {
	cards := make([]DeploymentCard, 0, len(list.Deployments))
	for _, d := range list.Deployments {
		cards = append(cards, NewDeploymentCard(d, links))
	}
	return cards
}
