// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import "container/heap"

// Obligation asks the core to generalize and block the state named by
// State relative to Level, having been discovered Depth transitions
// away from the counterexample it would, left unblocked, help
// complete.
type Obligation struct {
	State int
	Level int
	Depth int
}

// obligationQueue orders obligations lowest level first (required for
// soundness: a deeper obligation must never be handled before one
// that, if it turns out to reach the initial states, proves the
// property false outright), then shallowest depth first (a heuristic
// favoring short counterexamples), then by state index as a final,
// arbitrary tiebreak.
type obligationQueue []Obligation

func (q obligationQueue) Len() int { return len(q) }

func (q obligationQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.Level != b.Level {
		return a.Level < b.Level
	}
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	return a.State < b.State
}

func (q obligationQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *obligationQueue) Push(x interface{}) { *q = append(*q, x.(Obligation)) }

func (q *obligationQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// handleObligations drains a priority queue seeded by one freshly
// discovered CTI, generalizing and blocking each obligation relative
// to its level, and pushing a new one level (or one level further
// from the counterexample) back onto the queue as each query demands.
// It returns resolved=false, with cexState naming the pool state that
// reached level 0, the moment that happens: the bad state is
// reachable from init, via the successor chain rooted at cexState.
func (ck *Checker) handleObligations(seed []Obligation) (cexState int, resolved bool) {
	q := obligationQueue(append([]Obligation{}, seed...))
	heap.Init(&q)
	for q.Len() > 0 {
		obl := heap.Pop(&q).(Obligation)
		if obl.Level == 0 {
			return obl.State, false
		}
		ck.stats.Obligations++
		st := ck.pool.state(obl.State)
		cube := clone(st.Latches)
		ok, core, predIdx := ck.ce.consecution(obl.Level-1, cube, obl.State)
		if ok {
			n := ck.gen.generalize(obl.Level-1, core)
			if n < ck.fs.top() {
				heap.Push(&q, Obligation{State: obl.State, Level: n + 1, Depth: obl.Depth})
			}
			continue
		}
		heap.Push(&q, Obligation{State: predIdx, Level: obl.Level - 1, Depth: obl.Depth + 1})
		heap.Push(&q, obl)
	}
	return 0, true
}
