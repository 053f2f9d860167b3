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

// TestCheckMutexInvariant builds a two-latch mutual-exclusion circuit
// (each latch grants a critical section, an arbiter alternates which
// one may become true, the two are never true simultaneously) and
// checks the bad condition "both critical sections held", expressed
// via a CardSort cardinality constraint rather than a hand-built AND
// gate: bad holds iff at least two of {l1, l2} are true.
func TestCheckMutexInvariant(t *testing.T) {
	sys := logic.NewS()
	l1 := sys.Latch(sys.F)
	l2 := sys.Latch(sys.T)
	// Ping-pong: each latch grants the other the critical section on
	// the next step, so l1 and l2 are never true at the same time.
	sys.SetNext(l1, l2)
	sys.SetNext(l2, l1)

	card := sys.CardSort([]z.Lit{l1, l2})
	bad := card.Geq(2)

	a := aiger.MakeFor(sys)
	a.Bad = append(a.Bad, bad)
	mdl, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("model.New: %s", err)
	}
	ck := NewChecker(mdl, DefaultConfig())
	res := ck.Check()
	if res.Verdict != Safe {
		t.Fatalf("expected Safe, got %s", res.Verdict)
	}
	if len(res.Invariant) == 0 {
		t.Fatalf("expected a non-empty invariant for the mutex property")
	}
}
