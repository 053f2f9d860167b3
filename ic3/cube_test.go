// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"testing"

	"github.com/go-air/ic3check/z"
)

func lit(v int, pos bool) z.Lit {
	l := z.Var(v).Pos()
	if !pos {
		return l.Not()
	}
	return l
}

func TestSortCubeAndIsSorted(t *testing.T) {
	c := Cube{lit(3, true), lit(1, false), lit(2, true)}
	sortCube(c)
	if !isSorted(c) {
		t.Fatalf("expected sorted cube, got %v", c)
	}
	if c[0].Var() != z.Var(1) || c[1].Var() != z.Var(2) || c[2].Var() != z.Var(3) {
		t.Fatalf("unexpected order: %v", c)
	}
}

func TestCubeEqual(t *testing.T) {
	a := Cube{lit(1, true), lit(2, false)}
	b := Cube{lit(1, true), lit(2, false)}
	c := Cube{lit(1, true), lit(2, true)}
	if !cubeEqual(a, b) {
		t.Fatalf("expected a == b")
	}
	if cubeEqual(a, c) {
		t.Fatalf("expected a != c")
	}
}

func TestSubsumes(t *testing.T) {
	a := Cube{lit(1, true)}
	b := Cube{lit(1, true), lit(2, false)}
	if !subsumes(a, b) {
		t.Fatalf("expected a to subsume b")
	}
	if subsumes(b, a) {
		t.Fatalf("did not expect b to subsume a")
	}
	c := Cube{lit(1, false)}
	if subsumes(c, b) {
		t.Fatalf("did not expect opposite-polarity cube to subsume")
	}
}

func TestNegate(t *testing.T) {
	c := Cube{lit(1, true), lit(2, false)}
	n := negate(c)
	if n[0] != lit(1, false) || n[1] != lit(2, true) {
		t.Fatalf("unexpected negation: %v", n)
	}
	if c[0] != lit(1, true) {
		t.Fatalf("negate must not mutate its argument")
	}
}

func TestWithout(t *testing.T) {
	c := Cube{lit(1, true), lit(2, true), lit(3, true)}
	w := without(c, 1)
	if len(w) != 2 || w[0] != lit(1, true) || w[1] != lit(3, true) {
		t.Fatalf("unexpected result: %v", w)
	}
	if len(c) != 3 {
		t.Fatalf("without must not mutate its argument")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := Cube{lit(1, true)}
	cp := clone(c)
	cp[0] = lit(1, false)
	if c[0] != lit(1, true) {
		t.Fatalf("clone aliased the original backing array")
	}
}
