// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"sort"

	"github.com/go-air/ic3check/z"
)

// Cube is a conjunction of literals, sorted ascending by variable
// index.  Every cube the core produces or accepts maintains this
// invariant; functions in this file assume it on their inputs.
type Cube []z.Lit

// sortCube sorts c in place by variable index and returns it.
func sortCube(c Cube) Cube {
	sort.Slice(c, func(i, j int) bool { return c[i].Var() < c[j].Var() })
	return c
}

// isSorted reports whether c is strictly increasing by variable
// index, the invariant every cube handled by the core must maintain.
func isSorted(c Cube) bool {
	for i := 1; i < len(c); i++ {
		if c[i-1].Var() >= c[i].Var() {
			return false
		}
	}
	return true
}

// cubeLess gives the lexicographic order IC3.h's _LitVecComp uses for
// its CubeSet: shorter cubes first, then elementwise comparison of the
// sorted literal sequences.
func cubeLess(a, b Cube) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// cubeEqual reports whether a and b are the identical sorted literal
// sequence.
func cubeEqual(a, b Cube) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// subsumes reports whether a subsumes b: every literal of a also
// appears in b.  Both a and b must be sorted by variable index.
func subsumes(a, b Cube) bool {
	if len(a) > len(b) {
		return false
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] == b[j] {
			i++
			j++
			continue
		}
		if b[j] < a[i] {
			j++
			continue
		}
		return false
	}
	return i == len(a)
}

// negate returns the clause (the negation of cube c): every literal's
// polarity flipped, order preserved.  The result is suitable for a
// sequence of Add calls terminated by z.LitNull.
func negate(c Cube) Cube {
	out := make(Cube, len(c))
	for i, lit := range c {
		out[i] = lit.Not()
	}
	return out
}

// clone makes an independent copy of c.
func clone(c Cube) Cube {
	out := make(Cube, len(c))
	copy(out, c)
	return out
}

// without returns a copy of c with the literal at position j removed.
func without(c Cube, j int) Cube {
	out := make(Cube, 0, len(c)-1)
	out = append(out, c[:j]...)
	out = append(out, c[j+1:]...)
	return out
}
