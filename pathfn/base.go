package pathfn

import (
	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// HookKind names the root hook bound by Initialize.
type HookKind int

const (
	HookSimple HookKind = iota
	HookPredecessor
	HookLabel
	HookComplete
)

// String implements fmt.Stringer.
func (k HookKind) String() string {
	switch k {
	case HookPredecessor:
		return "predecessor"
	case HookLabel:
		return "label"
	case HookComplete:
		return "complete"
	default:
		return "simple"
	}
}

// Base carries the map bindings and root hooks shared by every policy.
// Policies embed it and install a root-value rule with SetRoot.
type Base[D Number] struct {
	value []D
	label []int
	pred  []int

	// nextLabel is -1 unless sequential labeling was requested.
	nextLabel int
	hook      HookKind
	root      func(index int) D
}

// SetRoot installs the rule giving a settling seed its resting value.
// A nil rule leaves seed values as the caller set them.
func (b *Base[D]) SetRoot(rule func(index int) D) { b.root = rule }

// Initialize binds b to m and selects the root hook:
//
//	sequential && label  && pred → RemoveComplete
//	sequential && label          → RemoveLabel
//	pred                         → RemovePredecessor
//	otherwise                    → RemoveSimple
func (b *Base[D]) Initialize(m *Maps[D], sequential bool) error {
	if err := m.Validate(); err != nil {
		return err
	}
	b.value, b.label, b.pred = m.Value, m.Label, m.Pred

	b.nextLabel = -1
	labelled := sequential && b.label != nil
	if labelled {
		b.nextLabel = 0
	}
	switch {
	case labelled && b.pred != nil:
		b.hook = HookComplete
	case labelled:
		b.hook = HookLabel
	case b.pred != nil:
		b.hook = HookPredecessor
	default:
		b.hook = HookSimple
	}
	return nil
}

// Hook reports which root hook Remove dispatches to.
func (b *Base[D]) Hook() HookKind { return b.hook }

// NextLabel returns the label the next seed will receive, or -1 without
// sequential labeling.
func (b *Base[D]) NextLabel() int { return b.nextLabel }

// Values returns the bound value map.
func (b *Base[D]) Values() []D { return b.value }

// Labels returns the bound label map, possibly nil.
func (b *Base[D]) Labels() []int { return b.label }

// Preds returns the bound predecessor map, possibly nil.
func (b *Base[D]) Preds() []int { return b.pred }

// HasForest reports whether both label and predecessor maps are bound,
// which differential propagation requires.
func (b *Base[D]) HasForest() bool { return b.label != nil && b.pred != nil }

// BestValue returns the best value index can still reach. Without a
// handicap that is its current value.
func (b *Base[D]) BestValue(index int) D { return b.value[index] }

// Remove dispatches to the hook selected by Initialize.
func (b *Base[D]) Remove(index int, state bucketqueue.State) bool {
	switch b.hook {
	case HookComplete:
		return b.RemoveComplete(index, state)
	case HookLabel:
		return b.RemoveLabel(index, state)
	case HookPredecessor:
		return b.RemovePredecessor(index, state)
	default:
		return b.RemoveSimple(index, state)
	}
}

func (b *Base[D]) settle(index int) {
	if b.root != nil {
		b.value[index] = b.root(index)
	}
}

func (b *Base[D]) takeLabel(index int) {
	b.label[index] = b.nextLabel
	b.nextLabel++
}

// RemoveSimple finalizes a seed's value.
func (b *Base[D]) RemoveSimple(index int, state bucketqueue.State) bool {
	if state == bucketqueue.Inserted {
		b.settle(index)
	}
	return true
}

// RemovePredecessor finalizes a seed's value and makes it a root.
func (b *Base[D]) RemovePredecessor(index int, state bucketqueue.State) bool {
	if state == bucketqueue.Inserted {
		b.settle(index)
		b.pred[index] = -1
	}
	return true
}

// RemoveLabel finalizes a seed's value and gives it the next label.
func (b *Base[D]) RemoveLabel(index int, state bucketqueue.State) bool {
	if state == bucketqueue.Inserted {
		b.settle(index)
		b.takeLabel(index)
	}
	return true
}

// RemoveComplete finalizes a seed as a labelled root.
func (b *Base[D]) RemoveComplete(index int, state bucketqueue.State) bool {
	if state == bucketqueue.Inserted {
		b.settle(index)
		b.takeLabel(index)
		b.pred[index] = -1
	}
	return true
}

// Commit records that src conquered dst: dst inherits src's label and points
// to src, for whichever of the two maps is bound.
func (b *Base[D]) Commit(src, dst int) {
	if b.pred != nil {
		b.pred[dst] = src
	}
	if b.label != nil {
		b.label[dst] = b.label[src]
	}
}

// reconquer reports whether dst hangs from src but carries a different
// label, the condition under which differential runs overwrite it.
func (b *Base[D]) reconquer(src, dst int) bool {
	return b.pred != nil && b.label != nil && b.pred[dst] == src && b.label[dst] != b.label[src]
}
