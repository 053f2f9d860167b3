// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package model_test

import (
	"testing"

	"github.com/go-air/ic3check/logic"
	"github.com/go-air/ic3check/logic/aiger"
	"github.com/go-air/ic3check/model"
	"github.com/go-air/ic3check/sat"
)

// toggleFixture builds a 1-latch circuit: init=0, next=NOT latch,
// bad=latch.
func toggleFixture(t *testing.T) *aiger.T {
	t.Helper()
	sys := logic.NewS()
	r := sys.Latch(sys.F)
	sys.SetNext(r, r.Not())
	a := aiger.MakeFor(sys)
	a.Bad = append(a.Bad, r)
	return a
}

func TestNewRejectsOutOfRangeProperty(t *testing.T) {
	a := toggleFixture(t)
	if _, err := model.New(a, 1); err == nil {
		t.Fatalf("expected error for out of range property index")
	}
}

func TestInitialStatesAndBadLiteral(t *testing.T) {
	a := toggleFixture(t)
	m, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	init := m.InitialStates()
	if len(init) != 1 {
		t.Fatalf("expected 1 literal in init cube, got %d", len(init))
	}
	if init[0].IsPos() {
		t.Fatalf("expected latch to be initialized false, got positive literal")
	}
	if m.BadLiteral() != a.Latches[0] {
		t.Fatalf("bad literal mismatch")
	}
}

func TestPrimeUnprimeRoundTrip(t *testing.T) {
	a := toggleFixture(t)
	m, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	latch := a.Latches[0]
	p := m.Prime(latch)
	if m.Unprime(p) != latch {
		t.Fatalf("unprime(prime(l)) != l")
	}
	if m.Unprime(p.Not()) != latch.Not() {
		t.Fatalf("polarity lost across prime/unprime round trip")
	}
}

func TestLoadTransitionEncodesToggle(t *testing.T) {
	a := toggleFixture(t)
	m, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	s := sat.New()
	m.LoadTransitionInto(s)

	latch := a.Latches[0]
	p := m.Prime(latch)

	// from latch=false, successor must be true: asserting latch.Not()
	// and p.Not() (successor false) should be UNSAT.
	s.Assume(latch.Not())
	s.Assume(p.Not())
	if s.Solve() != -1 {
		t.Fatalf("expected UNSAT: toggle from false must go true")
	}
	s.Assume(latch.Not())
	s.Assume(p)
	if s.Solve() != 1 {
		t.Fatalf("expected SAT: toggle from false to true is consistent")
	}
}

func TestRelaxInitEnlargesInitialRegion(t *testing.T) {
	sys := logic.NewS()
	l0 := sys.Latch(sys.F)
	l1 := sys.Latch(sys.F)
	sys.SetNext(l0, l0)
	sys.SetNext(l1, l1)
	a := aiger.MakeFor(sys)
	a.Bad = append(a.Bad, l0)
	m, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	if len(m.InitialStates()) != 2 {
		t.Fatalf("expected 2-literal init cube before relaxation")
	}
	m.RelaxInit(1)
	init := m.InitialStates()
	if len(init) != 1 {
		t.Fatalf("expected 1-literal init cube after relaxing latch 1, got %d", len(init))
	}
	if init[0].Var() != l0.Var() {
		t.Fatalf("relaxed the wrong latch")
	}
}
