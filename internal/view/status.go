// Package view holds the presentation controllers: read-only projections of
// already-resolved resources that the TUI renders directly. Nothing here
// caches derived values; every predicate is recomputed on each call.
package view

import (
	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/router"
)

// Status is the display classification of a pod controller.
type Status int

const (
	StatusSuccess Status = iota
	StatusPending
	StatusWarning
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusPending:
		return "pending"
	default:
		return "success"
	}
}

// Hrefer builds in-app links. *router.Router implements it.
type Hrefer interface {
	Href(state router.State, params router.Params) string
}

// HasWarnings reports whether any pod of the controller has a warning.
func HasWarnings(p domain.PodInfo) bool {
	return len(p.Warnings) > 0
}

// IsPending reports whether there are no warnings and the pending count is
// not zero. A negative count is malformed and is not taken as success.
func IsPending(p domain.PodInfo) bool {
	return !HasWarnings(p) && p.Pending != 0
}

// IsSuccess is the default state: neither warnings nor pending pods.
func IsSuccess(p domain.PodInfo) bool {
	return !IsPending(p) && !HasWarnings(p)
}

// Classify returns the single status that holds for p.
// Warnings take priority over pending, pending over success.
func Classify(p domain.PodInfo) Status {
	switch {
	case HasWarnings(p):
		return StatusWarning
	case IsPending(p):
		return StatusPending
	default:
		return StatusSuccess
	}
}

// statusCard is shared by every controller card.
type statusCard struct {
	meta   domain.ObjectMeta
	pods   domain.PodInfo
	detail router.State
	links  Hrefer
}

func (c statusCard) HasWarnings() bool { return HasWarnings(c.pods) }
func (c statusCard) IsPending() bool   { return IsPending(c.pods) }
func (c statusCard) IsSuccess() bool   { return IsSuccess(c.pods) }
func (c statusCard) Status() Status    { return Classify(c.pods) }

// DetailHref links to the detail view of the card's resource.
func (c statusCard) DetailHref() string {
	if c.links == nil {
		return ""
	}
	return c.links.Href(c.detail, router.StateParams(c.meta.Namespace, c.meta.Name))
}

// Name returns the resource name.
func (c statusCard) Name() string { return c.meta.Name }

// Namespace returns the resource namespace.
func (c statusCard) Namespace() string { return c.meta.Namespace }

// Meta returns the resource metadata.
func (c statusCard) Meta() domain.ObjectMeta { return c.meta }

// PodInfo returns the aggregated pod counters.
func (c statusCard) PodInfo() domain.PodInfo { return c.pods }
