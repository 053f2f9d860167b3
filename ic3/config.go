// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

// Config holds the tunables of the generalization engine and the
// literal-order heuristic, as an explicit record rather than global
// state so a process can run several checks with different settings.
type Config struct {
	// MaxDepth caps CTG recursion depth in ctgDown.
	MaxDepth int
	// MaxCTGs caps the number of counterexamples-to-generalization
	// handled per ctgDown call before it aborts the join.
	MaxCTGs int
	// MaxJoins caps the total number of cube joins per mic call.
	MaxJoins int
	// MicAttempts is the number of consecutive drop failures mic
	// tolerates before giving up on the remaining positions.
	MicAttempts int
	// DecayInterval is how many updateLitOrder calls elapse between
	// decay() calls on the literal-order counters.
	DecayInterval int
	// DecayFactor multiplies literal-order counters on decay.
	DecayFactor float64
	// Basic disables CTG-based generalization: mic only shrinks by
	// unsat core, matching the CLI's -b flag.
	Basic bool
	// Random shuffles pool iteration order and SAT assumption
	// tie-breaks for performance profiling. It never changes which
	// clauses are derivable, only the order they are discovered in.
	Random bool
}

// DefaultConfig returns the tunable defaults named in the design: a
// CTG recursion cap of 1, a per-call CTG budget of 3, a join cap of
// 2^20, a mic abort threshold of 3 consecutive failures, and a literal
// counter decay of 0.99 every 1000 updates.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      1,
		MaxCTGs:       3,
		MaxJoins:      1 << 20,
		MicAttempts:   3,
		DecayInterval: 1000,
		DecayFactor:   0.99,
	}
}
