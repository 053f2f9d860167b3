// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package ic3 implements property-directed reachability (IC3) over
// and-inverter graph transition systems adapted by the model package:
// a monotone stack of over-approximating frames, strengthened by
// blocking counterexamples to induction one proof obligation at a
// time, until either the frame stack reaches a fixpoint (the property
// holds, and the fixpoint frame's clauses are an inductive invariant)
// or a chain of obligations bottoms out at the initial states (the
// property is violated, and the chain is a counterexample trace).
package ic3

import (
	"time"

	"github.com/go-air/ic3check/model"
	"github.com/go-air/ic3check/sat"
	"github.com/go-air/ic3check/z"
)

// Verdict is the outcome of a Check.
type Verdict int

const (
	// Unknown is never returned by Check; it is the zero value.
	Unknown Verdict = iota
	// Safe means the property holds: Result.Invariant is populated.
	Safe
	// Unsafe means the property is violated: Result.Trace is populated.
	Unsafe
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "safe"
	case Unsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}

// Result is what Check returns.
type Result struct {
	Verdict   Verdict
	Invariant []Cube    // clauses over latches; populated when Verdict == Safe
	Trace     [][]z.Lit // input vectors, init-relative order; populated when Verdict == Unsafe
}

// Checker runs one instance of the algorithm against one Model. It is
// not safe for concurrent use; Check runs to completion synchronously.
type Checker struct {
	mdl     *model.Model
	fs      *frameStack
	pool    *pool
	ce      *consecutionEngine
	gen     *generalizer
	tracker *litOrderTracker
	cfg     Config
	stats   Stats

	lastResult *Result
}

// NewChecker builds a Checker for mdl using cfg's tunables.
func NewChecker(mdl *model.Model, cfg Config) *Checker {
	fs := newFrameStack(mdl)
	p := newPool()
	ck := &Checker{mdl: mdl, fs: fs, pool: p, cfg: cfg}
	ck.tracker = newLitOrderTracker(cfg)
	ck.ce = newConsecutionEngine(fs, mdl, p, &ck.stats)
	ck.ce.setOrder(ck.tracker.order())
	ck.gen = newGeneralizer(ck.ce, fs, cfg, ck.tracker)
	return ck
}

// Stats reports the query and timing counters accumulated so far.
func (ck *Checker) Stats() Stats { return ck.stats }

// Check runs the algorithm to completion.
func (ck *Checker) Check() *Result {
	if trace := ck.initialViolation(); trace != nil {
		res := &Result{Verdict: Unsafe, Trace: trace}
		ck.lastResult = res
		return res
	}
	ck.fs.extend() // F_1
	for {
		cexState, unsafe := ck.strengthen()
		if unsafe {
			res := &Result{Verdict: Unsafe, Trace: ck.buildTrace(cexState)}
			ck.lastResult = res
			return res
		}
		if fixAt, fixed := ck.propagate(1); fixed {
			res := &Result{Verdict: Safe, Invariant: ck.fs.invariant(fixAt + 1)}
			ck.lastResult = res
			return res
		}
		ck.pool.resetStates(0)
		ck.fs.extend()
	}
}

// initialViolation checks the trivial base case: does the initial
// region itself already satisfy the bad-state condition? It returns a
// zero-length trace when so, nil otherwise.
func (ck *Checker) initialViolation() [][]z.Lit {
	s := sat.New()
	ck.mdl.LoadTransitionInto(s)
	for _, lit := range ck.mdl.InitialStates() {
		addUnit(s, lit)
	}
	s.Assume(ck.mdl.BadLiteral())
	start := time.Now()
	res := s.Solve()
	ck.stats.timeSat(start)
	switch res {
	case 1:
		return [][]z.Lit{}
	case -1:
		return nil
	default:
		fatalSat("initial-violation", res)
		return nil
	}
}

// strengthen repeatedly finds a state in the frontier frame that
// transitions into a bad state, and drains the resulting proof
// obligation, until the frontier no longer has one.
func (ck *Checker) strengthen() (cexState int, unsafe bool) {
	top := ck.fs.top()
	for {
		f := ck.fs.at(top)
		s := f.solver
		primedBad := ck.mdl.PrimedBad(s, f.badMemo)
		s.Assume(primedBad)
		start := time.Now()
		res := s.Solve()
		ck.stats.timeSat(start)
		if res == -1 {
			return 0, false
		}
		if res != 1 {
			fatalSat("strengthen", res)
		}
		latchAssign := ck.ce.assignment(s, ck.mdl.Latches())
		inputAssign := ck.ce.assignment(s, ck.mdl.Inputs())
		lifted := ck.ce.liftAgainstPrimed(latchAssign, inputAssign, ck.ce.primedBadLift())
		idx := ck.pool.newState()
		st := ck.pool.state(idx)
		st.Latches = ck.ce.splitLatches(lifted)
		st.Inputs = inputAssign
		ck.stats.CTIs++
		cex, resolved := ck.handleObligations([]Obligation{{State: idx, Level: top, Depth: 1}})
		if !resolved {
			return cex, true
		}
	}
}

// propagate pushes every cube that has become consecutive forward,
// across frames [from, top), and reports the earliest frame whose
// borderCubes emptied entirely: a fixpoint, meaning that frame's
// formula now equals the frame above it.
func (ck *Checker) propagate(from int) (fixAt int, fixed bool) {
	for i := from; i < ck.fs.top(); i++ {
		f := ck.fs.at(i)
		var remaining []Cube
		for _, c := range f.borderCubes {
			ok, core, _ := ck.ce.consecution(i, c, 0)
			if ok {
				ck.fs.pushForward(i, core)
			} else {
				remaining = append(remaining, c)
			}
		}
		f.borderCubes = remaining
		if len(remaining) == 0 {
			return i, true
		}
	}
	return 0, false
}

// buildTrace walks the successor chain rooted at cexState, a level-0
// pool state, forward toward the original CTI that strengthen found
// at the frontier, collecting each step's input vector in init-first
// order.
func (ck *Checker) buildTrace(cexState int) [][]z.Lit {
	var trace [][]z.Lit
	seen := make(map[int]bool)
	for i := cexState; i != 0 && !seen[i]; {
		seen[i] = true
		st := ck.pool.state(i)
		trace = append(trace, append([]z.Lit{}, st.Inputs...))
		if st.Successor == 0 {
			break
		}
		i = st.Successor
	}
	return trace
}

// NewIncremental builds a Checker for mdl2, optionally reusing the
// proof a prior, already-Safe run found against a more constrained
// model, per the two incremental-reuse modes: mode 1 replays only the
// final invariant, as one extra frame above a fresh stack; mode 2
// replays the entire frame stack the prior run ended with, level for
// level. Any other mode, or a prev that did not end Safe, yields a
// plain fresh Checker.
func NewIncremental(mdl2 *model.Model, prev *Checker, mode int, cfg Config) *Checker {
	ck := NewChecker(mdl2, cfg)
	if prev == nil || prev.lastResult == nil || prev.lastResult.Verdict != Safe {
		return ck
	}
	switch mode {
	case 1:
		ck.fs.extend()
		top := ck.fs.top()
		for _, clause := range prev.lastResult.Invariant {
			ck.fs.addCube(top, negate(clause), ck.tracker)
		}
	case 2:
		for i := 1; i < len(prev.fs.frames); i++ {
			ck.fs.extend()
		}
		for lvl, f := range prev.fs.frames {
			for _, c := range f.borderCubes {
				ck.fs.addCube(lvl, clone(c), ck.tracker)
			}
		}
	}
	return ck
}
