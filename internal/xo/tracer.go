// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

// Tracer is an opaque hook stored on Cdb via SetTracer. No code in this
// package currently invokes methods on it.
type Tracer interface{}
