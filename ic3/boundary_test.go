// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"testing"

	"github.com/go-air/ic3check/logic"
	"github.com/go-air/ic3check/logic/aiger"
	"github.com/go-air/ic3check/model"
	"github.com/go-air/ic3check/z"
)

// TestEmptyInitialStateSetIsImmediatelySafe: a latch left uninitialized
// ('X') contributes nothing to the initial cube, so with no latch
// constrained at all, init is the tautologically true cube (empty),
// and bad asserted on that same unconstrained latch must still be
// reachable at t=0 only if some initial valuation satisfies it — with
// an empty init cube, initiation alone can neither confirm nor deny
// this, but a bad literal that can never be forced true by the
// transition relation (a constant-false next state) is unreachable at
// every later step, and remains a well-formed empty-invariant case
// once the frontier's border cubes are exhausted.
func TestEmptyInitialStateSetIsImmediatelySafe(t *testing.T) {
	sys := logic.NewS()
	l := sys.Latch(z.LitNull)
	sys.SetNext(l, sys.F)
	a := aiger.MakeFor(sys)
	a.Bad = append(a.Bad, sys.F)
	mdl, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("model.New: %s", err)
	}
	if len(mdl.InitialStates()) != 0 {
		t.Fatalf("expected an empty initial cube, got %v", mdl.InitialStates())
	}
	ck := NewChecker(mdl, DefaultConfig())
	res := ck.Check()
	if res.Verdict != Safe {
		t.Fatalf("expected Safe, got %s", res.Verdict)
	}
	if len(res.Invariant) != 0 {
		t.Fatalf("expected an empty invariant when bad is a constant, got %v", res.Invariant)
	}
}

// TestSingleLatchCounterPeriodN: a chain of n latches, each initialized
// false, where latch i becomes true one step after latch i-1 does (a
// unary shift register), with bad asserted on the last latch, is
// violated exactly n steps after init.
func TestSingleLatchCounterPeriodN(t *testing.T) {
	const n = 4
	sys := logic.NewS()
	latches := make([]z.Lit, n)
	for i := range latches {
		latches[i] = sys.Latch(sys.F)
	}
	sys.SetNext(latches[0], sys.T)
	for i := 1; i < n; i++ {
		sys.SetNext(latches[i], sys.Or(latches[i], latches[i-1]))
	}
	a := aiger.MakeFor(sys)
	a.Bad = append(a.Bad, latches[n-1])
	mdl, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("model.New: %s", err)
	}
	ck := NewChecker(mdl, DefaultConfig())
	res := ck.Check()
	if res.Verdict != Unsafe {
		t.Fatalf("expected Unsafe, got %s", res.Verdict)
	}
	if len(res.Trace) != n {
		t.Fatalf("expected a %d-step trace (latch %d first set at step n), got %d", n, n-1, len(res.Trace))
	}
}
