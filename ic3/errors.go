// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ic3

import "fmt"

// SatBackendError reports an unrecoverable failure of the underlying
// SAT backend, such as a Solve() call returning an unrecognized
// result. The core never attempts to continue past one; Check panics
// with a *SatBackendError, leaving recovery to the caller (typically
// the CLI's top-level main).
type SatBackendError struct {
	Query string
	Res   int
}

func (e *SatBackendError) Error() string {
	return fmt.Sprintf("ic3: sat backend error during %s: unexpected result %d", e.Query, e.Res)
}

func fatalSat(query string, res int) {
	panic(&SatBackendError{Query: query, Res: res})
}
