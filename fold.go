// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

// Strict reducers over sources.
//
// The fold family walks the node union directly - the one place outside
// run.go/next.go that does - so reduction allocates no intermediate streams.
// The accumulator is a local variable updated in place at every emit: eager
// evaluation, bounded memory over arbitrarily long sources.
//
// Early-stopping queries ([Head], [Find], [Any], ...) are compositions of
// the engine with a prior limiting stage, so they inherit the suspension
// discipline and never pull past the value that determines the answer.

// Fold reduces a source with a strict left fold: starting from begin, step
// combines the accumulator with each emitted value, and done finalizes the
// accumulator once the source finishes.
func Fold[B, R, X, S any](p Source[B, R], begin X, step func(X, B) X, done func(X) S) S {
	acc := begin
	for {
		switch n := p.(type) {
		case *doneStep[None, Unit, Unit, B, R]:
			return done(acc)
		case *emitStep[None, Unit, Unit, B, R]:
			acc = step(acc, n.value)
			p = n.resume(Unit{})
		case *effectStep[None, Unit, Unit, B, R]:
			p = n.action()
		case *awaitStep[None, Unit, Unit, B, R]:
			contractViolation("source suspended on a request")
		default:
			unknownStep()
		}
	}
}

// FoldR is [Fold] preserving the source's terminal result alongside the
// reduction.
func FoldR[B, R, X, S any](p Source[B, R], begin X, step func(X, B) X, done func(X) S) (S, R) {
	acc := begin
	for {
		switch n := p.(type) {
		case *doneStep[None, Unit, Unit, B, R]:
			return done(acc), n.result
		case *emitStep[None, Unit, Unit, B, R]:
			acc = step(acc, n.value)
			p = n.resume(Unit{})
		case *effectStep[None, Unit, Unit, B, R]:
			p = n.action()
		case *awaitStep[None, Unit, Unit, B, R]:
			contractViolation("source suspended on a request")
		default:
			unknownStep()
		}
	}
}

// FoldE is the effectful [Fold]: begin, step, and done may fail. The first
// error stops the traversal immediately - the source is abandoned at its
// suspension point and no further values are pulled.
func FoldE[B, R, X, S any](p Source[B, R], begin func() (X, error), step func(X, B) (X, error), done func(X) (S, error)) (S, error) {
	acc, err := begin()
	if err != nil {
		var zero S
		return zero, err
	}
	for {
		switch n := p.(type) {
		case *doneStep[None, Unit, Unit, B, R]:
			return done(acc)
		case *emitStep[None, Unit, Unit, B, R]:
			acc, err = step(acc, n.value)
			if err != nil {
				var zero S
				return zero, err
			}
			p = n.resume(Unit{})
		case *effectStep[None, Unit, Unit, B, R]:
			p = n.action()
		case *awaitStep[None, Unit, Unit, B, R]:
			contractViolation("source suspended on a request")
		default:
			unknownStep()
		}
	}
}

// Collect gathers every value the source emits into a slice.
//
// Convenience for tests and small inputs only: it holds the whole stream in
// memory, forfeiting the engine's bounded-memory property. Prefer [Fold] or
// a [Sink] for real consumption.
func Collect[B, R any](p Source[B, R]) []B {
	return Fold(p, []B(nil), func(acc []B, b B) []B {
		return append(acc, b)
	}, func(acc []B) []B { return acc })
}

// Head returns the first emitted value. ok is false if the source finished
// without emitting. Nothing past the first emit is consumed.
func Head[B, R any](p Source[B, R]) (B, bool) {
	e := Next(p)
	if pair, ok := e.GetRight(); ok {
		return pair.Fst, true
	}
	var zero B
	return zero, false
}

// Last returns the final emitted value, consuming the whole source.
// ok is false if the source emitted nothing.
func Last[B, R any](p Source[B, R]) (B, bool) {
	type slot struct {
		v  B
		ok bool
	}
	s := Fold(p, slot{}, func(_ slot, b B) slot {
		return slot{v: b, ok: true}
	}, func(s slot) slot { return s })
	return s.v, s.ok
}

// Nth returns the n-th emitted value (zero-based), pulling exactly n+1
// values. ok is false if the source finishes earlier.
func Nth[B, R any](p Source[B, R], n int) (B, bool) {
	if n < 0 {
		var zero B
		return zero, false
	}
	return Head(Connect(p, Drop[B, R](n)))
}

// Find returns the first emitted value satisfying pred, pulling no further
// than that value.
func Find[B, R any](p Source[B, R], pred func(B) bool) (B, bool) {
	return Head(Connect(p, Filter[B, R](pred)))
}

// Any reports whether some emitted value satisfies pred, stopping at the
// first match.
func Any[B, R any](p Source[B, R], pred func(B) bool) bool {
	_, ok := Find(p, pred)
	return ok
}

// All reports whether every emitted value satisfies pred, stopping at the
// first counterexample.
func All[B, R any](p Source[B, R], pred func(B) bool) bool {
	return !Any(p, func(b B) bool { return !pred(b) })
}

// IsEmpty reports whether the source finishes without emitting,
// pulling at most one value.
func IsEmpty[B, R any](p Source[B, R]) bool {
	_, ok := Head(p)
	return !ok
}

// Length counts the emitted values, consuming the whole source.
func Length[B, R any](p Source[B, R]) int {
	return Fold(p, 0, func(n int, _ B) int { return n + 1 }, func(n int) int { return n })
}
