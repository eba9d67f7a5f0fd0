// SPDX-License-Identifier: MIT
// Package: lvlath-ift/pathfn
//
// types.go — numeric constraint, caller-owned maps, the PathFunction contract
// and sentinel errors.

package pathfn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// Number is the set of value-map element types a policy can operate on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Sentinel errors.
var (
	// ErrNilValueMap indicates a nil Maps or a nil Value slice.
	ErrNilValueMap = errors.New("pathfn: value map is nil")
	// ErrMapSizeMismatch indicates label or predecessor maps sized differently from the value map.
	ErrMapSizeMismatch = errors.New("pathfn: map dimensions do not match")
	// ErrHandicapSize indicates a handicap sized differently from the value map.
	ErrHandicapSize = errors.New("pathfn: handicap size does not match value map")
	// ErrFeatureSize indicates a feature matrix that is not nodes×dims.
	ErrFeatureSize = errors.New("pathfn: feature matrix size does not match value map")
	// ErrNilSpace indicates a Geodesic policy built without coordinates.
	ErrNilSpace = errors.New("pathfn: spatial layout is nil")
	// ErrSpaceSize indicates coordinates for a different node count than the value map.
	ErrSpaceSize = errors.New("pathfn: spatial layout size does not match value map")
)

// Maps holds the caller-owned per-node outputs of a forest run.
//
// Value is required. Label and Pred are optional (nil disables them). In a
// fresh run every non-root Pred entry must be -1; NewMaps does this.
type Maps[D Number] struct {
	Value []D
	Label []int
	Pred  []int
}

// NewMaps allocates maps for n nodes, every value set to fill, every label
// to 0 and every predecessor to -1.
func NewMaps[D Number](n int, fill D, withLabel, withPred bool) *Maps[D] {
	m := &Maps[D]{Value: make([]D, n)}
	for i := range m.Value {
		m.Value[i] = fill
	}
	if withLabel {
		m.Label = make([]int, n)
	}
	if withPred {
		m.Pred = make([]int, n)
		for i := range m.Pred {
			m.Pred[i] = -1
		}
	}
	return m
}

// Len returns the node count of m.
func (m *Maps[D]) Len() int { return len(m.Value) }

// Validate checks that m is usable: a value map is present and every
// optional map matches its length.
func (m *Maps[D]) Validate() error {
	if m == nil || m.Value == nil {
		return ErrNilValueMap
	}
	n := len(m.Value)
	if m.Label != nil && len(m.Label) != n {
		return fmt.Errorf("%w: value=%d label=%d", ErrMapSizeMismatch, n, len(m.Label))
	}
	if m.Pred != nil && len(m.Pred) != n {
		return fmt.Errorf("%w: value=%d predecessor=%d", ErrMapSizeMismatch, n, len(m.Pred))
	}
	return nil
}

// PathFunction is the capability set the IFT driver relies on.
//
// Remove is the hook bound by Initialize; the four named hooks stay callable
// directly. Capable is the cheap pre-check, Propagate the relaxation, which
// commits value (and label/predecessor when bound) and reports success.
type PathFunction[D Number] interface {
	Initialize(m *Maps[D], sequential bool) error
	Remove(index int, state bucketqueue.State) bool
	RemoveSimple(index int, state bucketqueue.State) bool
	RemoveLabel(index int, state bucketqueue.State) bool
	RemovePredecessor(index int, state bucketqueue.State) bool
	RemoveComplete(index int, state bucketqueue.State) bool
	Capable(src, dst int, dstState bucketqueue.State) bool
	Propagate(src, dst, pos int) bool
	PropagateDifferential(src, dst, pos int) bool
	Increasing() bool
}

var (
	_ PathFunction[int64]   = (*Sum[int64])(nil)
	_ PathFunction[int]     = (*Max[int])(nil)
	_ PathFunction[float64] = (*Diff[float64])(nil)
	_ PathFunction[float64] = (*Geodesic[float64])(nil)
	_ PathFunction[float32] = (*FeatureDistance[float32])(nil)
)
