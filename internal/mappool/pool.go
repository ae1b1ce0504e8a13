// Package mappool models map pools: sets of (mode, stage) pairs submitted by
// teams or curated by tournament organizers.
package mappool

import (
	"slices"
)

// Pool is an immutable, deduplicated set of pairs. Insertion order is kept.
// The zero value is an empty pool.
type Pool struct {
	pairs []Pair
	set   map[Pair]struct{}
	dupes []Pair
}

// New builds a pool. Repeated pairs are dropped and reported by Duplicates.
func New(pairs ...Pair) Pool {
	p := Pool{
		pairs: make([]Pair, 0, len(pairs)),
		set:   make(map[Pair]struct{}, len(pairs)),
	}
	for _, pair := range pairs {
		if _, ok := p.set[pair]; ok {
			p.dupes = append(p.dupes, pair)
			continue
		}
		p.set[pair] = struct{}{}
		p.pairs = append(p.pairs, pair)
	}
	return p
}

// FromModeMap builds a pool from stage lists keyed by mode, in canonical mode order.
func FromModeMap(stages map[Mode][]StageID) Pool {
	var pairs []Pair
	for _, mode := range Modes {
		for _, id := range stages[mode] {
			pairs = append(pairs, Pair{Mode: mode, StageID: id})
		}
	}
	return New(pairs...)
}

// Contains reports whether pair is in the pool.
func (p Pool) Contains(pair Pair) bool {
	_, ok := p.set[pair]
	return ok
}

// ContainsStage reports whether any mode of stage id is in the pool.
func (p Pool) ContainsStage(id StageID) bool {
	for _, pair := range p.pairs {
		if pair.StageID == id {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the pool has no pairs.
func (p Pool) IsEmpty() bool { return len(p.pairs) == 0 }

// Len returns the number of distinct pairs.
func (p Pool) Len() int { return len(p.pairs) }

// Overlaps reports whether the two pools share at least one pair.
func (p Pool) Overlaps(other Pool) bool {
	small, big := p, other
	if small.Len() > big.Len() {
		small, big = big, small
	}
	for _, pair := range small.pairs {
		if big.Contains(pair) {
			return true
		}
	}
	return false
}

// Pairs returns a copy of the pairs in insertion order.
func (p Pool) Pairs() []Pair {
	return slices.Clone(p.pairs)
}

// Duplicates returns the pairs dropped by New because they were already present.
func (p Pool) Duplicates() []Pair {
	return slices.Clone(p.dupes)
}

// Modes returns the distinct modes of the pool in canonical order.
func (p Pool) Modes() []Mode {
	var out []Mode
	for _, mode := range Modes {
		if slices.ContainsFunc(p.pairs, func(pair Pair) bool { return pair.Mode == mode }) {
			out = append(out, mode)
		}
	}
	return out
}

// Filter returns a new pool holding the pairs keep accepts.
func (p Pool) Filter(keep func(Pair) bool) Pool {
	var kept []Pair
	for _, pair := range p.pairs {
		if keep(pair) {
			kept = append(kept, pair)
		}
	}
	return New(kept...)
}
