package tui

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/Taishi66/kdash/internal/view"
)

// SortColumn identifies a column for sorting.
type SortColumn int

const (
	SortNone SortColumn = iota
	SortName
	SortStatus
	SortRestarts // pods only
	SortAge
)

// SortState holds the current sort configuration for a view.
type SortState struct {
	Column    SortColumn
	Ascending bool
}

// Label returns the header the sort column applies to.
func (s SortState) Label() string {
	switch s.Column {
	case SortName:
		return "NAME"
	case SortStatus:
		return "STATUS"
	case SortRestarts:
		return "RESTARTS"
	case SortAge:
		return "AGE"
	default:
		return ""
	}
}

// SortIndicator returns ▲ or ▼ for the active sort column header.
func SortIndicator(header string, state SortState) string {
	label := state.Label()
	if label == "" || !strings.EqualFold(header, label) {
		return header
	}
	if state.Ascending {
		return header + " ▲"
	}
	return header + " ▼"
}

// NextSort cycles NAME -> STATUS -> [RESTARTS ->] AGE -> none.
func NextSort(current SortColumn, withRestarts bool) SortColumn {
	switch current {
	case SortNone:
		return SortName
	case SortName:
		return SortStatus
	case SortStatus:
		if withRestarts {
			return SortRestarts
		}
		return SortAge
	case SortRestarts:
		return SortAge
	default:
		return SortNone
	}
}

// sortKey is what rows are compared on.
type sortKey struct {
	name     string
	status   view.Status
	restarts int32
	created  time.Time
}

func (a sortKey) less(b sortKey, col SortColumn) bool {
	switch col {
	case SortName:
		return strings.ToLower(a.name) < strings.ToLower(b.name)
	case SortStatus:
		// warnings first
		return a.status > b.status
	case SortRestarts:
		return a.restarts > b.restarts
	case SortAge:
		return a.created.After(b.created) // newest first for ascending
	default:
		return false
	}
}

func sortRows[T any](rows []T, state SortState, key func(T) sortKey) []T {
	if state.Column == SortNone || len(rows) == 0 {
		return rows
	}
	sorted := slices.Clone(rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := key(sorted[i]), key(sorted[j])
		if state.Ascending {
			return a.less(b, state.Column)
		}
		return b.less(a, state.Column)
	})
	return sorted
}

// SortPods orders pod rows.
func SortPods(rows []view.PodRow, state SortState) []view.PodRow {
	return sortRows(rows, state, func(r view.PodRow) sortKey {
		return sortKey{
			name:     r.Pod.ObjectMeta.Name,
			status:   r.Status(),
			restarts: r.Pod.RestartCount,
			created:  r.Pod.ObjectMeta.CreationTimestamp.Time,
		}
	})
}

// SortCards orders controller cards. Restart counts do not apply.
func SortCards[C cardRow](cards []C, state SortState) []C {
	return sortRows(cards, state, func(c C) sortKey {
		meta := c.Meta()
		return sortKey{name: meta.Name, status: c.Status(), created: meta.CreationTimestamp.Time}
	})
}
