// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

// Composition algebras over [Step].
//
// Two substitution algebras and a connection operator:
//
//   - [ForEach]: pull algebra - every emit of the left stream is replaced by
//     a call to the right-hand handler. Identity: [Yield].
//   - [Feed]: push algebra - every await of the right stream is replaced by
//     a call to the left-hand handler. Identity: [Request].
//   - [Connect]: producer-consumer connection - every value the producer
//     emits becomes the reply to the consumer's next await. Identity: [Cat].
//
// All three satisfy two-sided identity and associativity laws, verified in
// compose_test.go. At most one value is in flight per boundary: neither
// algebra buffers past the single pending emit or request.

// ForEach replaces every value m emits with the stream produced by f.
// The handler may itself emit, await upstream, or discard the value; its
// terminal result is the downstream reply delivered back to m. Awaits and
// effects of m pass through unchanged.
func ForEach[Aq, A, Bq, B, Cq, C, R any](m Step[Aq, A, Bq, B, R], f func(B) Step[Aq, A, Cq, C, Bq]) Step[Aq, A, Cq, C, R] {
	switch n := m.(type) {
	case *doneStep[Aq, A, Bq, B, R]:
		return Pure[Aq, A, Cq, C](n.result)
	case *awaitStep[Aq, A, Bq, B, R]:
		return &awaitStep[Aq, A, Cq, C, R]{address: n.address, resume: func(a A) Step[Aq, A, Cq, C, R] {
			return ForEach(n.resume(a), f)
		}}
	case *emitStep[Aq, A, Bq, B, R]:
		return Bind(f(n.value), func(bq Bq) Step[Aq, A, Cq, C, R] {
			return ForEach(n.resume(bq), f)
		})
	case *effectStep[Aq, A, Bq, B, R]:
		return &effectStep[Aq, A, Cq, C, R]{action: func() Step[Aq, A, Cq, C, R] {
			return ForEach(n.action(), f)
		}}
	}
	unknownStep()
	return nil
}

// Feed replaces every request of m with the stream produced by f.
// The handler receives the request address and its terminal result is the
// reply delivered back to m. Emits and effects of m pass through unchanged.
func Feed[Aq, A, Bq, B, Cq, C, R any](f func(Bq) Step[Aq, A, Cq, C, B], m Step[Bq, B, Cq, C, R]) Step[Aq, A, Cq, C, R] {
	switch n := m.(type) {
	case *doneStep[Bq, B, Cq, C, R]:
		return Pure[Aq, A, Cq, C](n.result)
	case *awaitStep[Bq, B, Cq, C, R]:
		return Bind(f(n.address), func(b B) Step[Aq, A, Cq, C, R] {
			return Feed(f, n.resume(b))
		})
	case *emitStep[Bq, B, Cq, C, R]:
		return &emitStep[Aq, A, Cq, C, R]{value: n.value, resume: func(cq Cq) Step[Aq, A, Cq, C, R] {
			return Feed(f, n.resume(cq))
		}}
	case *effectStep[Bq, B, Cq, C, R]:
		return &effectStep[Aq, A, Cq, C, R]{action: func() Step[Aq, A, Cq, C, R] {
			return Feed(f, n.action())
		}}
	}
	unknownStep()
	return nil
}

// PullBy composes with the downstream side driving: m runs until it requests,
// then control transfers to the upstream stage f seeded at the requested
// address. Subsequent exchanges flow through the saved continuations of both
// sides. The handoff defers through an effect node so the traversal loop, not
// the Go call stack, drives long exchanges.
func PullBy[Aq, A, Bq, B, Cq, C, R any](f func(Bq) Step[Aq, A, Bq, B, R], m Step[Bq, B, Cq, C, R]) Step[Aq, A, Cq, C, R] {
	switch n := m.(type) {
	case *doneStep[Bq, B, Cq, C, R]:
		return Pure[Aq, A, Cq, C](n.result)
	case *awaitStep[Bq, B, Cq, C, R]:
		return &effectStep[Aq, A, Cq, C, R]{action: func() Step[Aq, A, Cq, C, R] {
			return PushBy(f(n.address), n.resume)
		}}
	case *emitStep[Bq, B, Cq, C, R]:
		return &emitStep[Aq, A, Cq, C, R]{value: n.value, resume: func(cq Cq) Step[Aq, A, Cq, C, R] {
			return PullBy(f, n.resume(cq))
		}}
	case *effectStep[Bq, B, Cq, C, R]:
		return &effectStep[Aq, A, Cq, C, R]{action: func() Step[Aq, A, Cq, C, R] {
			return PullBy(f, n.action())
		}}
	}
	unknownStep()
	return nil
}

// PushBy composes with the upstream side driving: p runs until it emits,
// then control transfers to the downstream stage f with the emitted value.
func PushBy[Aq, A, Bq, B, Cq, C, R any](p Step[Aq, A, Bq, B, R], f func(B) Step[Bq, B, Cq, C, R]) Step[Aq, A, Cq, C, R] {
	switch n := p.(type) {
	case *doneStep[Aq, A, Bq, B, R]:
		return Pure[Aq, A, Cq, C](n.result)
	case *awaitStep[Aq, A, Bq, B, R]:
		return &awaitStep[Aq, A, Cq, C, R]{address: n.address, resume: func(a A) Step[Aq, A, Cq, C, R] {
			return PushBy(n.resume(a), f)
		}}
	case *emitStep[Aq, A, Bq, B, R]:
		return &effectStep[Aq, A, Cq, C, R]{action: func() Step[Aq, A, Cq, C, R] {
			return PullBy(n.resume, f(n.value))
		}}
	case *effectStep[Aq, A, Bq, B, R]:
		return &effectStep[Aq, A, Cq, C, R]{action: func() Step[Aq, A, Cq, C, R] {
			return PushBy(n.action(), f)
		}}
	}
	unknownStep()
	return nil
}

// Connect links a producing stage to a consuming stage: whenever q awaits,
// p runs until its next emit, whose value becomes q's reply. The composed
// stream finishes with whichever side reaches its terminal state first;
// the other side is abandoned at its suspension point.
func Connect[Aq, A, B, Cq, C, R any](p Step[Aq, A, Unit, B, R], q Step[Unit, B, Cq, C, R]) Step[Aq, A, Cq, C, R] {
	return PullBy(func(Unit) Step[Aq, A, Unit, B, R] { return p }, q)
}

// Cat forwards every value unchanged: await, yield, repeat.
// It is the two-sided identity for [Connect].
func Cat[A, R any]() Pipe[A, A, R] {
	var loop func() Pipe[A, A, R]
	loop = func() Pipe[A, A, R] {
		return Bind(Await[A, Unit, A](), func(a A) Pipe[A, A, R] {
			return Then(Yield[Unit, A](a), Do(loop))
		})
	}
	return loop()
}
