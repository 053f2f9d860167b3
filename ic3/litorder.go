// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"sort"

	"github.com/go-air/ic3check/z"
)

// HeuristicLitOrder holds a running usage count per variable, biasing
// generalization toward dropping the least frequently retained
// literals first.
type HeuristicLitOrder struct {
	counts map[z.Var]float64
}

func newHeuristicLitOrder() *HeuristicLitOrder {
	return &HeuristicLitOrder{counts: make(map[z.Var]float64)}
}

// count increments the counter for every literal's variable in cube.
func (h *HeuristicLitOrder) count(cube Cube) {
	for _, lit := range cube {
		h.counts[lit.Var()]++
	}
}

// decay multiplies every counter touched so far by factor, per the
// configured DecayFactor.
func (h *HeuristicLitOrder) decay(factor float64) {
	for v := range h.counts {
		h.counts[v] *= factor
	}
}

func (h *HeuristicLitOrder) get(v z.Var) float64 {
	return h.counts[v]
}

// SlimLitOrder compares literals by ascending usage count: fewer
// occurrences sorts first, so mic tries dropping them first. It holds
// a non-owning reference to the counter table, passed explicitly
// rather than retained, so the comparator stays stateless apart from
// that one table pointer.
type SlimLitOrder struct {
	Heuristic *HeuristicLitOrder
}

func (o SlimLitOrder) less(a, b z.Lit) bool {
	ca, cb := o.Heuristic.get(a.Var()), o.Heuristic.get(b.Var())
	if ca != cb {
		return ca < cb
	}
	return a < b
}

// orderCube stable-sorts cube by SlimLitOrder, leftmost being the
// literal mic should try dropping first.
func (o SlimLitOrder) orderCube(cube Cube) {
	sort.SliceStable(cube, func(i, j int) bool { return o.less(cube[i], cube[j]) })
}

// orderAssumps reorders an assumption vector by the same comparator,
// starting at index start, optionally reversed. This biases SAT
// decisions without changing the query the assumptions encode.
func (o SlimLitOrder) orderAssumps(vec []z.Lit, rev bool, start int) {
	tail := vec[start:]
	if rev {
		sort.SliceStable(tail, func(i, j int) bool { return o.less(tail[j], tail[i]) })
	} else {
		sort.SliceStable(tail, func(i, j int) bool { return o.less(tail[i], tail[j]) })
	}
}

// litOrderTracker drives updateLitOrder's periodic decay bookkeeping.
type litOrderTracker struct {
	heuristic  *HeuristicLitOrder
	numUpdates int
	interval   int
	factor     float64
}

func newLitOrderTracker(cfg Config) *litOrderTracker {
	return &litOrderTracker{
		heuristic: newHeuristicLitOrder(),
		interval:  cfg.DecayInterval,
		factor:    cfg.DecayFactor,
	}
}

// updateLitOrder is called on every cube successfully added to a
// frame: it counts the cube's literals and decays every interval
// updates.
func (t *litOrderTracker) updateLitOrder(cube Cube) {
	t.numUpdates++
	if t.interval > 0 && t.numUpdates%t.interval == 0 {
		t.heuristic.decay(t.factor)
	}
	t.heuristic.count(cube)
}

func (t *litOrderTracker) order() SlimLitOrder {
	return SlimLitOrder{Heuristic: t.heuristic}
}
