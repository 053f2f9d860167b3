// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

// State is a CTI record in the pool: a lifted latch assignment paired
// with the input assignment that produces the transition, and a back
// reference toward the state it was discovered as a predecessor of.
// State trees are arenas of integer indices, not owning references, so
// deleting along a chain never requires reference counting.
type State struct {
	Successor int
	Latches   Cube
	Inputs    Cube
	Index     int
	Used      bool
}

// pool is a fixed-indexed arena of States. Index 0 is the reserved
// null sentinel and is never handed out by newState.
type pool struct {
	states []State
	free   []int
}

func newPool() *pool {
	p := &pool{states: make([]State, 1, 128)}
	p.states[0] = State{Index: 0}
	return p
}

// newState returns a recycled or freshly appended index with Used set
// and its inner slices cleared.
func (p *pool) newState() int {
	if n := len(p.free); n > 0 {
		i := p.free[n-1]
		p.free = p.free[:n-1]
		s := &p.states[i]
		s.Used = true
		s.Successor = 0
		s.Latches = s.Latches[:0]
		s.Inputs = s.Inputs[:0]
		return i
	}
	i := len(p.states)
	p.states = append(p.states, State{Index: i, Used: true})
	return i
}

// state returns a pointer to the i'th state.
func (p *pool) state(i int) *State {
	return &p.states[i]
}

// delState marks i as free. The caller must have already cleared any
// ancestor/successor references to i.
func (p *pool) delState(i int) {
	if i == 0 {
		return
	}
	s := &p.states[i]
	s.Used = false
	s.Latches = nil
	s.Inputs = nil
	p.free = append(p.free, i)
}

// resetStates frees every used state not reachable, by successor
// chain, from keep (typically 0, the sentinel, meaning "free
// everything").
func (p *pool) resetStates(keep int) {
	reachable := make(map[int]bool)
	for i := keep; i != 0; i = p.states[i].Successor {
		reachable[i] = true
		if p.states[i].Successor == i {
			break // guard against a malformed cycle
		}
	}
	for i := 1; i < len(p.states); i++ {
		if p.states[i].Used && !reachable[i] {
			p.delState(i)
		}
	}
}
