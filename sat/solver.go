// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sat is the incremental propositional SAT backend used by the
// ic3 package.  It is a thin façade over the internal xo CDCL engine,
// exposing assume/solve/conflict-core operations and activation literals
// for transient query scopes, per frame and for the lift solver.
package sat

import (
	"time"

	"github.com/go-air/ic3check/inter"
	"github.com/go-air/ic3check/internal/xo"
	"github.com/go-air/ic3check/z"
)

// Solver is a concrete, incremental implementation of inter.S.  Every
// frame in the ic3 frame stack, and the dedicated lift solver, own one
// Solver each.
type Solver struct {
	xo *xo.S
}

// New creates a new Solver with a small default capacity.
func New() *Solver {
	return &Solver{xo: xo.NewS()}
}

// NewV creates a new Solver with a hint for the number of variables.
func NewV(capHint int) *Solver {
	return &Solver{xo: xo.NewSV(capHint)}
}

// NewVc creates a new Solver with hints for the number of variables and
// the number of clauses.
func NewVc(vCapHint, cCapHint int) *Solver {
	return &Solver{xo: xo.NewSVc(vCapHint, cCapHint)}
}

// Copy makes a deep copy of the solver, including all clauses, learnt or
// otherwise.  Statistics are reset in the copy.
func (g *Solver) Copy() *Solver {
	return &Solver{xo: g.xo.Copy()}
}

// SCopy implements inter.S.
func (g *Solver) SCopy() inter.S {
	return g.Copy()
}

// MaxVar returns the variable with the largest id known to the solver.
func (g *Solver) MaxVar() z.Var {
	return g.xo.Vars.Max
}

// Lit produces a fresh variable and returns its positive literal,
// conforming to inter.Liter.
func (g *Solver) Lit() z.Lit {
	return g.xo.Lit()
}

// Add implements inter.S.  To add a clause (x + y + z), one calls
//
//	g.Add(x)
//	g.Add(y)
//	g.Add(z)
//	g.Add(0)
func (g *Solver) Add(m z.Lit) {
	g.xo.Add(m)
}

// Assume causes the solver to assume that m is true in the next call to
// Solve() or Test().
func (g *Solver) Assume(ms ...z.Lit) {
	g.xo.Assume(ms...)
}

// Solve solves the constraints under the current assumptions.  It
// returns 1 if sat, -1 if unsat, and 0 if canceled.
func (g *Solver) Solve() int {
	return g.xo.Solve()
}

// Try solves with a timeout, returning 0 if the timeout elapses first.
func (g *Solver) Try(dur time.Duration) int {
	return g.xo.Try(dur)
}

// GoSolve provides a connection to a single background solving
// goroutine.  The ic3 core never calls this: it is fully synchronous.
func (g *Solver) GoSolve() inter.Solve {
	return g.xo.GoSolve()
}

// Value returns the truth value assigned to m by the most recent
// satisfiable call to Solve() or Test().
func (g *Solver) Value(m z.Lit) bool {
	return g.xo.Vars.Vals[m] == 1
}

// Why returns the minimized set of assumptions sufficient for the last
// UNSAT result.
func (g *Solver) Why(ms []z.Lit) []z.Lit {
	return g.xo.Why(ms)
}

// Test checks whether the current assumptions are consistent under unit
// propagation and opens a scope for further assumptions.
func (g *Solver) Test(dst []z.Lit) (res int, out []z.Lit) {
	return g.xo.Test(dst)
}

// Untest closes the most recently opened Test scope, backtracking its
// assumptions.
func (g *Solver) Untest() int {
	return g.xo.Untest()
}

// Reasons gives the literals which imply m via a single clause.
func (g *Solver) Reasons(dst []z.Lit, m z.Lit) []z.Lit {
	return g.xo.Reasons(dst, m)
}

// Activate creates a clause from the last non-terminated sequence of
// Adds and a fresh literal m, such that assuming m activates the
// clause.  The ic3 core uses this to scope a blocked cube's negation to
// a single consecution query, releasing it with Deactivate immediately
// after the query returns.
func (g *Solver) Activate() (m z.Lit) {
	return g.xo.Activate()
}

// ActivateWith is like Activate but lets the caller supply the
// activation literal, useful for activating several clauses with one
// literal.
func (g *Solver) ActivateWith(act z.Lit) {
	g.xo.ActivateWith(act)
}

// ActivationLit returns a fresh literal suitable for ActivateWith.
func (g *Solver) ActivationLit() z.Lit {
	return g.xo.ActivationLit()
}

// Deactivate frees an activation literal and removes every clause,
// including learnt ones, that depends on it.
func (g *Solver) Deactivate(m z.Lit) {
	g.xo.Deactivate(m)
}
