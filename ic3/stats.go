// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import (
	"fmt"
	"time"
)

// Stats accumulates the query counts, CTI/CTG counts, and SAT timing
// the -s CLI flag reports, in the spirit of the teacher's own
// internal/xo.Stats: a plain data record read after the fact, never
// consulted by control flow.
type Stats struct {
	SatQueries  int64
	CTIs        int64
	CTGs        int64
	NAbortMic   int64
	NAbortJoin  int64
	Obligations int64
	SatTime     time.Duration
}

func (s *Stats) String() string {
	return fmt.Sprintf(
		"sat-queries=%d ctis=%d ctgs=%d abort-mic=%d abort-join=%d obligations=%d sat-time=%s",
		s.SatQueries, s.CTIs, s.CTGs, s.NAbortMic, s.NAbortJoin, s.Obligations, s.SatTime)
}

func (s *Stats) timeSat(start time.Time) {
	s.SatQueries++
	s.SatTime += time.Since(start)
}
