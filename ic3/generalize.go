// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

// generalizer shrinks a cube known to block a state into a smaller one
// still suitable as a clause, using unsat-core shrinking together with
// recursive counterexample-to-generalization (CTG) handling.
type generalizer struct {
	ce      *consecutionEngine
	fs      *frameStack
	cfg     Config
	tracker *litOrderTracker
}

func newGeneralizer(ce *consecutionEngine, fs *frameStack, cfg Config, tracker *litOrderTracker) *generalizer {
	return &generalizer{ce: ce, fs: fs, cfg: cfg, tracker: tracker}
}

// initiation reports whether cube c may soundly be used as a blocking
// clause: true iff no initial state satisfies c. Since both c and the
// initial region are plain conjunctions of latch literals, this is a
// direct comparison rather than a SAT query: they conflict iff some
// latch appears in both with opposite polarity.
func (ce *consecutionEngine) initiation(c Cube) bool {
	init := ce.mdl.InitialStates()
	for _, lit := range c {
		for _, ilit := range init {
			if lit.Var() == ilit.Var() && lit != ilit {
				return true
			}
		}
	}
	return false
}

// mic (minimal inductive clause) greedily drops literals from c,
// trying the literal order's least-used literals first, keeping each
// drop only when ctgDown confirms the shrunk cube is still usable.
func (g *generalizer) mic(c Cube, level, recDepth int) Cube {
	c = sortCube(clone(c))
	order := g.tracker.order()
	order.orderCube(c)
	attempts := 0
	i := 0
	for i < len(c) {
		if g.cfg.MicAttempts > 0 && attempts >= g.cfg.MicAttempts {
			g.ce.stats.NAbortMic++
			break
		}
		candidate := without(c, i)
		shrunk, ok := g.ctgDown(candidate, level, recDepth)
		if ok {
			c = shrunk
			attempts = 0
			continue
		}
		attempts++
		i++
	}
	return c
}

// generalize shrinks cube — already known consecutive at level, having
// just come back as an unsat core from consecution(level, ...) — into
// a minimal inductive sub-cube via mic, then greedily pushes it
// forward as far as it will go before finally homing it, reporting
// the frame it ended up at.
func (g *generalizer) generalize(level int, cube Cube) int {
	m := g.mic(cube, level, 0)
	n := level + 1
	for n < g.fs.top() {
		ok, core, _ := g.ce.consecution(n, m, 0)
		if !ok {
			break
		}
		m = core
		n++
	}
	g.fs.addCube(n, m, g.tracker)
	return n
}

// ctgDown is the "down" procedure with counterexample-to-generalization
// handling: it repeatedly tests whether c is consecutive at level,
// and whenever the counterexample is itself a cube that can be
// generalized and blocked one level down, it does so and retries
// rather than giving up immediately, within the configured CTG and
// join budgets.
func (g *generalizer) ctgDown(c Cube, level, recDepth int) (Cube, bool) {
	ctgs := 0
	joins := 0
	for {
		if !g.ce.initiation(c) {
			return nil, false
		}
		ok, core, predIdx := g.ce.consecution(level, c, 0)
		if ok {
			return core, true
		}
		pred := g.ce.pool.state(predIdx)
		predCube := clone(pred.Latches)
		canRecurse := !g.cfg.Basic && ctgs < g.cfg.MaxCTGs && recDepth < g.cfg.MaxDepth && level > 0
		if canRecurse && g.ce.initiation(predCube) {
			if ok2, _, _ := g.ce.consecution(level-1, predCube, 0); ok2 {
				ctgs++
				g.ce.stats.CTGs++
				blocked := g.mic(predCube, level-1, recDepth+1)
				g.fs.addCube(level, blocked, g.tracker)
				g.ce.pool.delState(predIdx)
				continue
			}
		}
		g.ce.pool.delState(predIdx)
		ctgs = 0
		joins++
		g.ce.stats.NAbortJoin++
		if joins > g.cfg.MaxJoins {
			return nil, false
		}
	}
}
