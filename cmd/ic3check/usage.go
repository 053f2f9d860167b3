// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

var usage = `%s usage: %s <aiger-input> [property-index]
%s checks a safety property of an and-inverter-graph transition system
via property-directed reachability (IC3). The input may be ascii or
binary AIGER, optionally gzipped or bzip2ed. property-index selects
which "bad" output to check; it defaults to 0.

On completion, %s prints one line to stdout: "1" and the elapsed time
if the property holds (followed by the inductive invariant, one DIMACS
clause per line), or "0" and the elapsed time if it does not (followed
by the counterexample trace, one input cube per line).

`
