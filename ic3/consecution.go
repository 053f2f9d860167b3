// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"time"

	"github.com/go-air/ic3check/model"
	"github.com/go-air/ic3check/sat"
	"github.com/go-air/ic3check/z"
)

// consecutionEngine owns every SAT query the core issues against the
// frame stack, plus a dedicated lift solver used only to generalize
// freshly discovered predecessor states.
type consecutionEngine struct {
	fs    *frameStack
	mdl   *model.Model
	pool  *pool
	lift  *sat.Solver
	order SlimLitOrder
	stats *Stats

	latchVar map[z.Var]bool

	liftBadReady  bool
	liftBadMemo   map[z.Var]z.Lit
	liftPrimedBad z.Lit
}

func newConsecutionEngine(fs *frameStack, mdl *model.Model, p *pool, stats *Stats) *consecutionEngine {
	lift := sat.New()
	mdl.LoadTransitionInto(lift)
	ce := &consecutionEngine{
		fs:       fs,
		mdl:      mdl,
		pool:     p,
		lift:     lift,
		stats:    stats,
		latchVar: make(map[z.Var]bool, len(mdl.Latches())),
	}
	for _, l := range mdl.Latches() {
		ce.latchVar[l.Var()] = true
	}
	return ce
}

// setOrder installs the literal-order heuristic used to bias the
// order assumptions are tried in, mirroring the teacher's habit of
// re-ordering assumptions rather than clauses.
func (ce *consecutionEngine) setOrder(o SlimLitOrder) { ce.order = o }

// consecution asks whether some state in frame i transitions, under
// trans, into c's primed image. If no such state exists, c already
// holds one step later relative to F_i: ok is true and core is a
// (possibly smaller) cube, the unprimed unsat core over c's primed
// literals, still sufficient for that conclusion. Otherwise ok is
// false and pred names a freshly lifted predecessor state recorded in
// the pool, its Successor field set to succIdx.
func (ce *consecutionEngine) consecution(i int, c Cube, succIdx int) (ok bool, core Cube, pred int) {
	f := ce.fs.at(i)
	s := f.solver
	for _, lit := range negate(c) {
		s.Add(lit)
	}
	act := s.Activate()
	primed := ce.mdl.PrimeCube(c)
	assumps := make([]z.Lit, 0, len(primed)+1)
	assumps = append(assumps, act)
	assumps = append(assumps, primed...)
	if ce.order.Heuristic != nil {
		ce.order.orderAssumps(assumps, false, 1)
	}
	s.Assume(assumps...)
	start := time.Now()
	res := s.Solve()
	ce.stats.timeSat(start)
	s.Deactivate(act)
	switch res {
	case -1:
		unsatCore := s.Why(assumps)
		shrunk := make(Cube, 0, len(unsatCore))
		for _, lit := range unsatCore {
			if lit == act {
				continue
			}
			shrunk = append(shrunk, ce.mdl.Unprime(lit))
		}
		if len(shrunk) == 0 {
			shrunk = clone(c)
		}
		return true, sortCube(shrunk), 0
	case 1:
		latchAssign := ce.assignment(s, ce.mdl.Latches())
		inputAssign := ce.assignment(s, ce.mdl.Inputs())
		lifted := ce.liftPredecessor(latchAssign, inputAssign, c)
		idx := ce.pool.newState()
		st := ce.pool.state(idx)
		st.Successor = succIdx
		st.Latches = ce.splitLatches(lifted)
		st.Inputs = inputAssign
		ce.stats.CTIs++
		return false, nil, idx
	default:
		fatalSat("consecution", res)
		return false, nil, 0
	}
}

// assignment reads the solver's last model for each of lits, returning
// a sorted cube of signed literals.
func (ce *consecutionEngine) assignment(s *sat.Solver, lits []z.Lit) Cube {
	out := make(Cube, len(lits))
	for i, lit := range lits {
		if s.Value(lit) {
			out[i] = lit
		} else {
			out[i] = lit.Not()
		}
	}
	return sortCube(out)
}

// liftPredecessor generalizes a full latch+input witness known to
// force succ' under trans down to a minimal sufficient subset, using
// the dedicated lift solver's unsat core: latchAssign and inputAssign,
// together with trans, entail succ's primed image, so asserting
// succ's primed negation on top of them is unsatisfiable, and the
// core of that contradiction names exactly the literals that mattered.
func (ce *consecutionEngine) liftPredecessor(latchAssign, inputAssign, succ Cube) Cube {
	s := ce.lift
	for _, lit := range negate(ce.mdl.PrimeCube(succ)) {
		s.Add(lit)
	}
	act := s.Activate()
	assumps := make([]z.Lit, 0, len(latchAssign)+len(inputAssign)+1)
	assumps = append(assumps, act)
	assumps = append(assumps, latchAssign...)
	assumps = append(assumps, inputAssign...)
	s.Assume(assumps...)
	start := time.Now()
	res := s.Solve()
	ce.stats.timeSat(start)
	s.Deactivate(act)
	if res != -1 {
		fatalSat("lift", res)
	}
	core := s.Why(assumps)
	lifted := make(Cube, 0, len(core))
	for _, lit := range core {
		if lit == act {
			continue
		}
		lifted = append(lifted, lit)
	}
	if len(lifted) == 0 {
		lifted = append(append(Cube{}, latchAssign...), inputAssign...)
	}
	return sortCube(lifted)
}

// primedBadLift returns the lift solver's own copy of the primed bad
// literal, encoding it into the lift solver's variable space (distinct
// from any frame's) on first use and caching the result.
func (ce *consecutionEngine) primedBadLift() z.Lit {
	if !ce.liftBadReady {
		if ce.liftBadMemo == nil {
			ce.liftBadMemo = make(map[z.Var]z.Lit)
		}
		ce.liftPrimedBad = ce.mdl.PrimedBad(ce.lift, ce.liftBadMemo)
		ce.liftBadReady = true
	}
	return ce.liftPrimedBad
}

// liftAgainstPrimed is liftPredecessor's single-literal counterpart,
// used by strengthen to generalize a CTI found directly against the
// primed bad literal rather than against a frame cube's primed image.
func (ce *consecutionEngine) liftAgainstPrimed(latchAssign, inputAssign Cube, primedTarget z.Lit) Cube {
	s := ce.lift
	s.Add(primedTarget.Not())
	s.Add(z.LitNull)
	act := s.Activate()
	assumps := make([]z.Lit, 0, len(latchAssign)+len(inputAssign)+1)
	assumps = append(assumps, act)
	assumps = append(assumps, latchAssign...)
	assumps = append(assumps, inputAssign...)
	s.Assume(assumps...)
	start := time.Now()
	res := s.Solve()
	ce.stats.timeSat(start)
	s.Deactivate(act)
	if res != -1 {
		fatalSat("lift", res)
	}
	core := s.Why(assumps)
	lifted := make(Cube, 0, len(core))
	for _, lit := range core {
		if lit == act {
			continue
		}
		lifted = append(lifted, lit)
	}
	if len(lifted) == 0 {
		lifted = append(append(Cube{}, latchAssign...), inputAssign...)
	}
	return sortCube(lifted)
}

func (ce *consecutionEngine) splitLatches(c Cube) Cube {
	out := make(Cube, 0, len(c))
	for _, lit := range c {
		if ce.latchVar[lit.Var()] {
			out = append(out, lit)
		}
	}
	return sortCube(out)
}
