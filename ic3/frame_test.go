// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"testing"

	"github.com/go-air/ic3check/logic"
	"github.com/go-air/ic3check/logic/aiger"
	"github.com/go-air/ic3check/model"
)

// counterFixture builds a 2-latch circuit with no interesting
// transition beyond self-loops, enough to exercise the frame stack in
// isolation from the rest of the algorithm.
func counterFixture(t *testing.T) *model.Model {
	t.Helper()
	sys := logic.NewS()
	l0 := sys.Latch(sys.F)
	l1 := sys.Latch(sys.F)
	sys.SetNext(l0, l0)
	sys.SetNext(l1, l1)
	a := aiger.MakeFor(sys)
	a.Bad = append(a.Bad, l0)
	mdl, err := model.New(a, 0)
	if err != nil {
		t.Fatalf("model.New: %s", err)
	}
	return mdl
}

func TestFrameStackInitIsF0(t *testing.T) {
	mdl := counterFixture(t)
	fs := newFrameStack(mdl)
	if fs.top() != 0 {
		t.Fatalf("expected a single frame after construction, top=%d", fs.top())
	}
}

func TestFrameStackExtendGrowsTop(t *testing.T) {
	mdl := counterFixture(t)
	fs := newFrameStack(mdl)
	fs.extend()
	fs.extend()
	if fs.top() != 2 {
		t.Fatalf("expected top=2 after two extends, got %d", fs.top())
	}
}

func TestAddCubeHomesAtEveryLevelUpToAndIncluding(t *testing.T) {
	mdl := counterFixture(t)
	fs := newFrameStack(mdl)
	fs.extend()
	fs.extend()
	tracker := newLitOrderTracker(DefaultConfig())
	c := Cube{mdl.Latches()[0]}
	if !fs.addCube(2, c, tracker) {
		t.Fatalf("expected addCube to report a change")
	}
	if len(fs.at(2).borderCubes) != 1 {
		t.Fatalf("expected cube to be homed at level 2")
	}
	if len(fs.at(0).borderCubes) != 0 || len(fs.at(1).borderCubes) != 0 {
		t.Fatalf("addCube must only append to borderCubes at its own home level")
	}
}

func TestAddCubeIsIdempotent(t *testing.T) {
	mdl := counterFixture(t)
	fs := newFrameStack(mdl)
	fs.extend()
	tracker := newLitOrderTracker(DefaultConfig())
	c := Cube{mdl.Latches()[0]}
	fs.addCube(1, c, tracker)
	if fs.addCube(1, clone(c), tracker) {
		t.Fatalf("expected re-adding an identical cube to be a no-op")
	}
	if len(fs.at(1).borderCubes) != 1 {
		t.Fatalf("expected exactly one copy of the cube after re-adding")
	}
}

func TestAddCubePrunesSubsumedCubes(t *testing.T) {
	mdl := counterFixture(t)
	fs := newFrameStack(mdl)
	fs.extend()
	tracker := newLitOrderTracker(DefaultConfig())
	wide := Cube{mdl.Latches()[0], mdl.Latches()[1]}
	fs.addCube(1, wide, tracker)
	narrow := Cube{mdl.Latches()[0]}
	fs.addCube(1, narrow, tracker)
	if len(fs.at(1).borderCubes) != 1 {
		t.Fatalf("expected the wider cube to be pruned once subsumed, got %v", fs.at(1).borderCubes)
	}
}

func TestPushForwardRelocatesCube(t *testing.T) {
	mdl := counterFixture(t)
	fs := newFrameStack(mdl)
	fs.extend()
	fs.extend()
	tracker := newLitOrderTracker(DefaultConfig())
	c := Cube{mdl.Latches()[0]}
	fs.addCube(1, c, tracker)
	fs.pushForward(1, c)
	if len(fs.at(2).borderCubes) != 1 {
		t.Fatalf("expected cube pushed into frame 2")
	}
}

func TestInvariantUnionsFromFrame(t *testing.T) {
	mdl := counterFixture(t)
	fs := newFrameStack(mdl)
	fs.extend()
	fs.extend()
	tracker := newLitOrderTracker(DefaultConfig())
	c0 := Cube{mdl.Latches()[0]}
	c1 := Cube{mdl.Latches()[1]}
	fs.addCube(1, c0, tracker)
	fs.addCube(2, c1, tracker)
	inv := fs.invariant(1)
	if len(inv) != 2 {
		t.Fatalf("expected invariant to union clauses from frame 1 up, got %d", len(inv))
	}
}
