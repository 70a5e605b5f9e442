// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

// Step is a suspended, effectful, bidirectional stream computation.
// It is a persistent tree of four node variants, consumed exactly once
// by a traversal; continuations produce fresh Step values, never mutate.
//
// Type parameters, upstream to downstream:
//   - Aq: request address sent upstream
//   - A: reply received from upstream
//   - Bq: reply received from downstream
//   - B: value offered downstream
//   - R: terminal result
//
// Constructed via [Request], [Respond], [Do], [Pure] and sequenced via
// [Bind], [Map], [Then]. Variants stay unexported: only the traversal
// engine ([RunEffect], [Next], [Fold]) walks the union directly.
type Step[Aq, A, Bq, B, R any] interface {
	step(Aq, A, Bq, B, R) // unexported marker method
}

// awaitStep is a computation suspended on an upstream request.
// resume maps the eventual upstream reply to the next Step.
type awaitStep[Aq, A, Bq, B, R any] struct {
	address Aq
	resume  func(A) Step[Aq, A, Bq, B, R]
}

func (*awaitStep[Aq, A, Bq, B, R]) step(Aq, A, Bq, B, R) {}

// emitStep is a computation suspended offering a value downstream.
// resume maps the downstream reply back to the next Step.
type emitStep[Aq, A, Bq, B, R any] struct {
	value  B
	resume func(Bq) Step[Aq, A, Bq, B, R]
}

func (*emitStep[Aq, A, Bq, B, R]) step(Aq, A, Bq, B, R) {}

// effectStep defers one unit of work. The action runs exactly once,
// when a traversal reaches the node, and yields the next Step.
type effectStep[Aq, A, Bq, B, R any] struct {
	action func() Step[Aq, A, Bq, B, R]
}

func (*effectStep[Aq, A, Bq, B, R]) step(Aq, A, Bq, B, R) {}

// doneStep is the terminal node carrying the final result.
type doneStep[Aq, A, Bq, B, R any] struct {
	result R
}

func (*doneStep[Aq, A, Bq, B, R]) step(Aq, A, Bq, B, R) {}

// pureReply is the identity continuation for Request.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func pureReply[Aq, A, Bq, B any](a A) Step[Aq, A, Bq, B, A] {
	return &doneStep[Aq, A, Bq, B, A]{result: a}
}

// pureAck is the identity continuation for Respond.
func pureAck[Aq, A, Bq, B any](bq Bq) Step[Aq, A, Bq, B, Bq] {
	return &doneStep[Aq, A, Bq, B, Bq]{result: bq}
}

// Request sends address upstream and suspends until the reply arrives.
// The computation's result is the upstream reply.
func Request[Aq, A, Bq, B any](address Aq) Step[Aq, A, Bq, B, A] {
	return &awaitStep[Aq, A, Bq, B, A]{address: address, resume: pureReply[Aq, A, Bq, B]}
}

// Respond offers value downstream and suspends until it is accepted.
// The computation's result is the downstream reply.
func Respond[Aq, A, Bq, B any](value B) Step[Aq, A, Bq, B, Bq] {
	return &emitStep[Aq, A, Bq, B, Bq]{value: value, resume: pureAck[Aq, A, Bq, B]}
}

// Do defers one unit of work. The action runs exactly once, when the
// traversal reaches it, and returns the rest of the stream. All side
// effects in a stream live inside Do actions; construction performs none.
func Do[Aq, A, Bq, B, R any](action func() Step[Aq, A, Bq, B, R]) Step[Aq, A, Bq, B, R] {
	return &effectStep[Aq, A, Bq, B, R]{action: action}
}

// Pure lifts a final result into a completed Step.
func Pure[Aq, A, Bq, B, R any](r R) Step[Aq, A, Bq, B, R] {
	return &doneStep[Aq, A, Bq, B, R]{result: r}
}

// Await requests one value from a unit-address upstream.
// This is the one-directional form of [Request] used by [Sink] and [Pipe]
// stages, whose upstream address type is [Unit].
func Await[A, Bq, B any]() Step[Unit, A, Bq, B, A] {
	return Request[Unit, A, Bq, B](Unit{})
}

// Yield offers one value to a unit-reply downstream.
// This is the one-directional form of [Respond] used by [Source] and [Pipe]
// stages, whose downstream reply type is [Unit].
func Yield[Aq, A, B any](value B) Step[Aq, A, Unit, B, Unit] {
	return Respond[Aq, A, Unit, B](value)
}
