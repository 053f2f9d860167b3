// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"github.com/go-air/ic3check/model"
	"github.com/go-air/ic3check/sat"
	"github.com/go-air/ic3check/z"
)

// frame is one level of the over-approximation stack. Its solver holds
// the transition relation, the property, and the negation of every
// cube ever added at this level or any level below it: the frame
// stack's addCube touches frames 0..level for a cube homed at level,
// so frame i's live clause set is the union of borderCubes at every
// home level >= i, and frame i's solver accumulates monotonically as
// homes accumulate at levels <= its own index. This gives
// clauses(F_{i+1}) subset-of clauses(F_i) (fewer levels can have
// touched it), matching the subset invariant in the testable
// properties list.
type frame struct {
	k           int
	borderCubes []Cube
	solver      *sat.Solver
	badMemo     map[z.Var]z.Lit
}

// frameStack owns the ordered sequence of frames F_0..F_k plus the
// model they are all instances of.
type frameStack struct {
	mdl    *model.Model
	frames []*frame
}

func addUnit(s *sat.Solver, lit z.Lit) {
	s.Add(lit)
	s.Add(z.LitNull)
}

func addClause(s *sat.Solver, clause Cube) {
	for _, lit := range clause {
		s.Add(lit)
	}
	s.Add(z.LitNull)
}

func (fs *frameStack) newFrame(idx int) *frame {
	s := sat.New()
	fs.mdl.LoadTransitionInto(s)
	addUnit(s, fs.mdl.BadLiteral().Not()) // assert property
	return &frame{k: idx, solver: s, badMemo: make(map[z.Var]z.Lit)}
}

// newFrameStack creates F_0, whose solver additionally asserts the
// model's initial cube permanently, per Initiation: F_0 == init.
func newFrameStack(mdl *model.Model) *frameStack {
	fs := &frameStack{mdl: mdl}
	f0 := fs.newFrame(0)
	for _, lit := range mdl.InitialStates() {
		addUnit(f0.solver, lit)
	}
	fs.frames = append(fs.frames, f0)
	return fs
}

// extend appends a new, initially unconstrained (beyond trans and
// property) frame at the top of the stack.
func (fs *frameStack) extend() *frame {
	idx := len(fs.frames)
	f := fs.newFrame(idx)
	fs.frames = append(fs.frames, f)
	return f
}

// top returns the index of the highest frame, k.
func (fs *frameStack) top() int { return len(fs.frames) - 1 }

func (fs *frameStack) at(i int) *frame { return fs.frames[i] }

// addCube records cube c as newly blocked at level, asserting its
// negation permanently into every frame's solver at index <= level,
// and drops any cube at those levels that c subsumes. It is a no-op if
// c is already present verbatim at level. It reports whether it
// actually added anything.
func (fs *frameStack) addCube(level int, c Cube, tracker *litOrderTracker) bool {
	c = sortCube(clone(c))
	for _, existing := range fs.frames[level].borderCubes {
		if cubeEqual(existing, c) {
			return false
		}
	}
	for i := 0; i <= level; i++ {
		f := fs.frames[i]
		kept := f.borderCubes[:0]
		for _, existing := range f.borderCubes {
			if !subsumes(c, existing) {
				kept = append(kept, existing)
			}
		}
		f.borderCubes = kept
		addClause(f.solver, negate(c))
	}
	fs.frames[level].borderCubes = append(fs.frames[level].borderCubes, c)
	if tracker != nil {
		tracker.updateLitOrder(c)
	}
	return true
}

// pushForward relocates cube c's home from level i to i+1 without
// regeneralizing or reordering it: it is already consecutive at i, so
// its negation only needs to additionally hold at the new frame.
func (fs *frameStack) pushForward(i int, c Cube) {
	if i+1 >= len(fs.frames) {
		return
	}
	addClause(fs.frames[i+1].solver, negate(c))
	fs.frames[i+1].borderCubes = append(fs.frames[i+1].borderCubes, c)
}

// invariant returns the union of borderCubes from frame `from` up to
// and including the top frame, each as a clause (negated cube) — the
// inductive invariant reported on a SAFE verdict.
func (fs *frameStack) invariant(from int) []Cube {
	var out []Cube
	for i := from; i < len(fs.frames); i++ {
		for _, c := range fs.frames[i].borderCubes {
			out = append(out, negate(c))
		}
	}
	return out
}
