// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package model adapts a parsed AIGER circuit into the transition-system
// vocabulary the ic3 package drives: latches, inputs, a single initial
// cube, a transition relation loadable into any sat.Solver, and a
// designated bad-state literal.
package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-air/ic3check/logic"
	"github.com/go-air/ic3check/logic/aiger"
	"github.com/go-air/ic3check/sat"
	"github.com/go-air/ic3check/z"
)

// ErrNoSuchProperty is returned by New when the requested property
// index is out of range of the parsed circuit's Bad properties.
var ErrNoSuchProperty = errors.New("model: no such property index")

// Model is a read-mostly adapter over an AIGER circuit.  The only
// mutation the core is permitted to make is RelaxInit, used by
// incremental reuse.
type Model struct {
	aig       *aiger.T
	propIdx   int
	init      []z.Lit // cube over latches, sorted by Var
	primeOf   map[z.Var]z.Lit
	unprimeOf map[z.Var]z.Lit
	primeNext z.Var
}

// New builds a Model from a parsed AIGER circuit, selecting the
// propIdx'th Bad property as the safety property to check.
func New(aig *aiger.T, propIdx int) (*Model, error) {
	if propIdx < 0 || propIdx >= len(aig.Bad) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrNoSuchProperty, propIdx, len(aig.Bad))
	}
	m := &Model{
		aig:       aig,
		propIdx:   propIdx,
		primeOf:   make(map[z.Var]z.Lit, len(aig.Latches)),
		unprimeOf: make(map[z.Var]z.Lit, len(aig.Latches)),
	}
	m.primeNext = z.Var(aig.Sys().Len())
	for _, l := range aig.Latches {
		p := m.primeNext.Pos()
		m.primeNext++
		m.primeOf[l.Var()] = p
		m.unprimeOf[p.Var()] = l
	}
	for _, l := range aig.Latches {
		init := aig.Init(l)
		if init == z.LitNull {
			continue
		}
		lit := l
		if init == aig.Sys().F {
			lit = l.Not()
		}
		m.init = append(m.init, lit)
	}
	sort.Slice(m.init, func(i, j int) bool { return m.init[i].Var() < m.init[j].Var() })
	return m, nil
}

// Latches returns the latch literals of the circuit, in AIGER order.
func (m *Model) Latches() []z.Lit { return m.aig.Latches }

// Inputs returns the primary input literals of the circuit.
func (m *Model) Inputs() []z.Lit { return m.aig.Inputs }

// InitialStates returns the cube (sorted by Var) of literals asserted
// by the circuit's initial condition.  Latches left uninitialized
// ('X' in the AIGER sense) do not appear in the cube.
func (m *Model) InitialStates() []z.Lit {
	out := make([]z.Lit, len(m.init))
	copy(out, m.init)
	return out
}

// BadLiteral returns the literal whose assertion denotes a bad state
// for the selected property.  The safety property itself is this
// literal's negation.
func (m *Model) BadLiteral() z.Lit {
	return m.aig.Bad[m.propIdx]
}

// PrimedLatches returns, for every latch in Latches() order, that
// latch's permanent primed copy: a literal, distinct from every
// circuit variable, that the transition relation constrains to equal
// the latch's value in the successor state.
func (m *Model) PrimedLatches() []z.Lit {
	out := make([]z.Lit, len(m.aig.Latches))
	for i, l := range m.aig.Latches {
		out[i] = m.primeOf[l.Var()]
	}
	return out
}

// Prime returns the primed copy of a latch literal m, preserving
// polarity.
func (m *Model) Prime(lit z.Lit) z.Lit {
	p, ok := m.primeOf[lit.Var()]
	if !ok {
		panic("model: Prime of non-latch literal")
	}
	if lit.IsPos() {
		return p
	}
	return p.Not()
}

// PrimeCube returns the primed copy of every literal in cube, in the
// same order.
func (m *Model) PrimeCube(cube []z.Lit) []z.Lit {
	out := make([]z.Lit, len(cube))
	for i, lit := range cube {
		out[i] = m.Prime(lit)
	}
	return out
}

// Unprime maps a primed literal back to the corresponding unprimed
// latch literal, preserving polarity.  Unprime panics if lit is not a
// primed latch literal.
func (m *Model) Unprime(lit z.Lit) z.Lit {
	l, ok := m.unprimeOf[lit.Var()]
	if !ok {
		panic("model: Unprime of non-primed literal")
	}
	if lit.IsPos() {
		return l
	}
	return l.Not()
}

// IsPrimed reports whether v is a primed-latch variable.
func (m *Model) IsPrimed(v z.Var) bool {
	_, ok := m.unprimeOf[v]
	return ok
}

// LoadTransitionInto asserts, permanently, the transition relation
// into s: every AND-gate definition reachable from a latch's next
// function or the bad/constraint literals, every environment
// constraint, and an equivalence between each latch's primed copy and
// its next-state function.
func (m *Model) LoadTransitionInto(s *sat.Solver) {
	sys := m.aig.Sys()
	sys.C.ToCnf(s)
	for _, c := range m.aig.Constraints {
		s.Add(c)
		s.Add(z.LitNull)
	}
	for _, l := range m.aig.Latches {
		next := sys.Next(l)
		addIff(s, m.Prime(l), next)
	}
}

// addIff asserts a <-> b.
func addIff(dst *sat.Solver, a, b z.Lit) {
	dst.Add(a.Not())
	dst.Add(b)
	dst.Add(z.LitNull)
	dst.Add(a)
	dst.Add(b.Not())
	dst.Add(z.LitNull)
}

// PrimedBad returns, within s's own variable space, a literal defined
// (via equivalence clauses added to s) to equal BadLiteral evaluated
// one step later: every latch leaf in BadLiteral's combinational fanin
// is replaced with its primed copy. The mapping is memoized in memo so
// callers sharing one solver across several PrimedBad-style queries
// only pay the AND-gate re-encoding once.
func (m *Model) PrimedBad(s *sat.Solver, memo map[z.Var]z.Lit) z.Lit {
	return m.primeLit(s, m.BadLiteral(), memo)
}

func (m *Model) primeLit(s *sat.Solver, lit z.Lit, memo map[z.Var]z.Lit) z.Lit {
	v := lit.Var()
	if pv, ok := memo[v]; ok {
		return polarize(pv, lit)
	}
	if p, ok := m.primeOf[v]; ok {
		memo[v] = p
		return polarize(p, lit)
	}
	sys := m.aig.Sys()
	switch sys.Type(v.Pos()) {
	case logic.SConst:
		memo[v] = sys.T
		return polarize(sys.T, lit)
	case logic.SInput:
		panic("model: property depends on a primary input directly; unsupported")
	case logic.SAnd:
		a, b := sys.Ins(v.Pos())
		pa := m.primeLit(s, a, memo)
		pb := m.primeLit(s, b, memo)
		pg := s.Lit()
		memo[v] = pg
		addAndGate(s, pg, pa, pb)
		return polarize(pg, lit)
	default:
		panic("model: unexpected node type in property fanin")
	}
}

func polarize(base, orig z.Lit) z.Lit {
	if orig.IsPos() {
		return base
	}
	return base.Not()
}

// addAndGate Tseitin-encodes g <-> (a and b).
func addAndGate(dst *sat.Solver, g, a, b z.Lit) {
	dst.Add(g.Not())
	dst.Add(a)
	dst.Add(z.LitNull)
	dst.Add(g.Not())
	dst.Add(b)
	dst.Add(z.LitNull)
	dst.Add(g)
	dst.Add(a.Not())
	dst.Add(b.Not())
	dst.Add(z.LitNull)
}

// RelaxInit strictly enlarges the initial region by removing the
// literal constraining latchIndex (position within Latches()) from the
// initial cube, if one exists.  If latchIndex does not correspond to a
// currently-constrained latch, RelaxInit instead drops the last
// literal of the initial cube, matching the positional
// "init.pop_back()" idiom of the original implementation this
// operation replaces.
func (m *Model) RelaxInit(latchIndex int) {
	if latchIndex >= 0 && latchIndex < len(m.aig.Latches) {
		v := m.aig.Latches[latchIndex].Var()
		for i, lit := range m.init {
			if lit.Var() == v {
				m.init = append(m.init[:i], m.init[i+1:]...)
				return
			}
		}
	}
	if len(m.init) > 0 {
		m.init = m.init[:len(m.init)-1]
	}
}

// Copy produces a deep copy of m with its own independent init cube,
// suitable for incremental reuse experiments that relax one model
// while retaining an earlier, more-constrained one.
func Copy(m *Model) *Model {
	cp := &Model{
		aig:       aiger.Copy(m.aig),
		propIdx:   m.propIdx,
		primeOf:   make(map[z.Var]z.Lit, len(m.primeOf)),
		unprimeOf: make(map[z.Var]z.Lit, len(m.unprimeOf)),
		primeNext: m.primeNext,
	}
	for k, v := range m.primeOf {
		cp.primeOf[k] = v
	}
	for k, v := range m.unprimeOf {
		cp.unprimeOf[k] = v
	}
	cp.init = make([]z.Lit, len(m.init))
	copy(cp.init, m.init)
	return cp
}
