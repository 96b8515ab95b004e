package view

import (
	appsv1 "k8s.io/api/apps/v1"

	"github.com/Taishi66/kdash/internal/domain"
)

// DeploymentInfo presents the info section of a deployment detail page.
type DeploymentInfo struct {
	Deployment *domain.DeploymentDetail
}

func NewDeploymentInfo(d *domain.DeploymentDetail) DeploymentInfo {
	return DeploymentInfo{Deployment: d}
}

// RollingUpdateStrategy reports whether the deployment rolls pods
// gradually rather than recreating them.
func (i DeploymentInfo) RollingUpdateStrategy() bool {
	if i.Deployment == nil {
		return false
	}
	return i.Deployment.Strategy == appsv1.RollingUpdateDeploymentStrategyType
}

// DaemonSetDetail presents a daemon set detail page. It holds the resolved
// detail as is.
type DaemonSetDetail struct {
	DaemonSetDetail *domain.DaemonSetDetail
}

func NewDaemonSetDetail(d *domain.DaemonSetDetail) DaemonSetDetail {
	return DaemonSetDetail{DaemonSetDetail: d}
}

// Status classifies the daemon set pods.
func (d DaemonSetDetail) Status() Status {
	if d.DaemonSetDetail == nil {
		return StatusSuccess
	}
	return Classify(d.DaemonSetDetail.PodInfo)
}
