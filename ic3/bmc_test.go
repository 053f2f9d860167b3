// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"testing"

	"github.com/go-air/ic3check/logic"
	"github.com/go-air/ic3check/logic/aiger"
	"github.com/go-air/ic3check/model"
	"github.com/go-air/ic3check/sat"
	"github.com/go-air/ic3check/z"
)

// bmcDepth independently corroborates IC3's counterexample depth for a
// small fixture by bounded unrolling: the least d for which
// unroll(d) ∧ bad(d) is satisfiable, or -1 if no such d <= max exists.
// This never decides an ic3.Checker verdict; it is a test-only oracle.
func bmcDepth(sys *logic.S, bad z.Lit, max int) int {
	roll := logic.NewRoll(sys)
	for d := 0; d <= max; d++ {
		s := sat.New()
		roll.C.ToCnf(s)
		for _, l := range sys.Latches {
			init := sys.Init(l)
			if init == z.LitNull {
				continue
			}
			lit := roll.At(l, 0)
			if init == sys.F {
				lit = lit.Not()
			}
			s.Add(lit)
			s.Add(z.LitNull)
		}
		s.Assume(roll.At(bad, d))
		if s.Solve() == 1 {
			return d
		}
	}
	return -1
}

// TestCheckTraceDepthMatchesBMC cross-checks the depth of the trace
// IC3 finds for a 3-bit counter's overflow property against an
// independent bounded-model-checking oracle over the same circuit.
func TestCheckTraceDepthMatchesBMC(t *testing.T) {
	sys := logic.NewS()
	bits := make([]z.Lit, 3)
	for i := range bits {
		bits[i] = sys.Latch(sys.F)
	}
	// ripple-carry increment: bit0 always flips; bit i flips iff every
	// lower bit is currently 1.
	carry := sys.T
	for _, b := range bits {
		sys.SetNext(b, sys.Xor(b, carry))
		carry = sys.And(carry, b)
	}
	bad := sys.Ands(bits[0], bits[1], bits[2])
	a := aiger.MakeFor(sys)
	a.Bad = append(a.Bad, bad)
	mdl, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("model.New: %s", err)
	}

	ck := NewChecker(mdl, DefaultConfig())
	res := ck.Check()
	if res.Verdict != Unsafe {
		t.Fatalf("expected Unsafe (counter reaches 111), got %s", res.Verdict)
	}

	want := bmcDepth(sys, bad, 10)
	if want < 0 {
		t.Fatalf("bmc oracle found no witness within the search bound")
	}
	if len(res.Trace) != want {
		t.Fatalf("ic3 trace depth %d does not match bmc oracle depth %d", len(res.Trace), want)
	}
}
