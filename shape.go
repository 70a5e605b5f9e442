// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

// Unit is the reply type of interfaces that carry no information upstream.
// One-directional stages request with a Unit address and acknowledge emitted
// values with a Unit reply.
type Unit = struct{}

// None marks a closed stream interface. Go has no uninhabited types, so the
// zero value technically exists, but no operation in this package ever
// produces a None at a suspension point: a [Source] never awaits and a
// [Sink] never emits. A traversal that observes a suspension over None is a
// programming error and traps via [contractViolation], never a silent default.
type None struct{}

// Source produces values of type B and finishes with R.
// Its upstream interface is closed: it can never legally await.
type Source[B, R any] = Step[None, Unit, Unit, B, R]

// Sink consumes values of type A and finishes with R.
// Its downstream interface is closed: it can never legally emit.
type Sink[A, R any] = Step[Unit, A, Unit, None, R]

// Pipe consumes values of type A, produces values of type B,
// and finishes with R.
type Pipe[A, B, R any] = Step[Unit, A, Unit, B, R]

// Closed is a self-contained effectful computation with both interfaces
// closed. Run it with [RunEffect].
type Closed[R any] = Step[None, Unit, Unit, None, R]

// contractViolation panics on a suspension over a closed interface.
// Extracted as a noinline function so traversal loops remain inlineable.
//
//go:noinline
func contractViolation(what string) {
	panic("duct: " + what)
}

// unknownStep panics on a Step variant outside the four-node union.
// Unreachable for values built through this package.
//
//go:noinline
func unknownStep() {
	panic("duct: unknown step variant")
}
