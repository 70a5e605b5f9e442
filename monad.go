// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

// Sequencing operations for streams.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept for call-site clarity.

// Bind sequences two streams (monadic bind). It runs m, then passes the
// terminal result to f to get the continuation stream. Structurally, every
// [Pure] leaf of m is replaced by f's stream while await/emit/effect nodes
// are preserved.
//
// Bind rewrites exactly one node per call; the remainder of the rewrite is
// deferred into the stored continuation, so the traversal loop - not the Go
// call stack - drives it across arbitrarily long chains.
func Bind[Aq, A, Bq, B, R, S any](m Step[Aq, A, Bq, B, R], f func(R) Step[Aq, A, Bq, B, S]) Step[Aq, A, Bq, B, S] {
	switch n := m.(type) {
	case *doneStep[Aq, A, Bq, B, R]:
		return f(n.result)
	case *awaitStep[Aq, A, Bq, B, R]:
		return &awaitStep[Aq, A, Bq, B, S]{address: n.address, resume: func(a A) Step[Aq, A, Bq, B, S] {
			return Bind(n.resume(a), f)
		}}
	case *emitStep[Aq, A, Bq, B, R]:
		return &emitStep[Aq, A, Bq, B, S]{value: n.value, resume: func(bq Bq) Step[Aq, A, Bq, B, S] {
			return Bind(n.resume(bq), f)
		}}
	case *effectStep[Aq, A, Bq, B, R]:
		return &effectStep[Aq, A, Bq, B, S]{action: func() Step[Aq, A, Bq, B, S] {
			return Bind(n.action(), f)
		}}
	}
	unknownStep()
	return nil
}

// Map applies a pure function to the terminal result of a stream.
func Map[Aq, A, Bq, B, R, S any](m Step[Aq, A, Bq, B, R], f func(R) S) Step[Aq, A, Bq, B, S] {
	return Bind(m, func(r R) Step[Aq, A, Bq, B, S] {
		return Pure[Aq, A, Bq, B](f(r))
	})
}

// Then sequences two streams, discarding the first terminal result.
func Then[Aq, A, Bq, B, R, S any](m Step[Aq, A, Bq, B, R], n Step[Aq, A, Bq, B, S]) Step[Aq, A, Bq, B, S] {
	return Bind(m, func(R) Step[Aq, A, Bq, B, S] {
		return n
	})
}
