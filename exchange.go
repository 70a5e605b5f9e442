// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

import (
	"code.hybscloud.com/kont"
)

// Exchange combinators convert between directional shapes by threading a
// single slot of state across a composition boundary. The slot is captured
// by the composed stream's closures and never aliased outside it; there is
// one thread of control and the slot is read-then-written within a single
// suspension step, so no locking is involved. A stream built by an exchange
// combinator is consumable once.

// Tee converts a sink into a pass-through pipe: every value the pipe accepts
// is fed to the sink first, then re-emitted downstream unchanged - exactly
// once, in order. The pipe finishes with the sink's result; a value the sink
// accepted but the pipe has not yet re-emitted is flushed before finishing.
func Tee[A, R any](s Sink[A, R]) Pipe[A, A, R] {
	var pending A
	var held bool

	// up serves the sink's awaits: flush the previously accepted value
	// downstream, pull the next one from the real upstream, hold it, and
	// hand it to the sink.
	up := func(Unit) Step[Unit, A, Unit, A, A] {
		recv := Bind(Await[A, Unit, A](), func(a A) Step[Unit, A, Unit, A, A] {
			return Do(func() Step[Unit, A, Unit, A, A] {
				pending = a
				held = true
				return Pure[Unit, A, Unit, A](a)
			})
		})
		return Do(func() Step[Unit, A, Unit, A, A] {
			if held {
				v := pending
				held = false
				return Then(Yield[Unit, A](v), recv)
			}
			return recv
		})
	}
	// A sink's downstream interface is closed; it can never emit.
	dn := func(None) Step[Unit, A, Unit, A, Unit] {
		contractViolation("sink emitted a value")
		return nil
	}

	body := Feed(up, ForEach(s, dn))
	return Bind(body, func(r R) Pipe[A, A, R] {
		return Do(func() Pipe[A, A, R] {
			if held {
				v := pending
				held = false
				return Then(Yield[Unit, A](v), Pure[Unit, A, Unit, A](r))
			}
			return Pure[Unit, A, Unit, A](r)
		})
	})
}

// Generalize widens a one-directional pipe into a fully bidirectional relay.
// The widened interface's current address lives in a single slot, seeded
// with x0: each of p's awaits requests upstream with the slot's value, and
// each downstream reply to one of p's emits replaces it.
//
// Generalize(Cat(), x) relays both directions unchanged, and generalizing a
// [Connect] of two pipes is equivalent to connecting their generalizations.
func Generalize[X, A, B, R any](p Pipe[A, B, R], x0 X) Step[X, A, X, B, R] {
	x := x0

	up := func(Unit) Step[X, A, X, B, A] {
		return Do(func() Step[X, A, X, B, A] {
			return Request[X, A, X, B](x)
		})
	}
	dn := func(b B) Step[Unit, A, X, B, Unit] {
		return Bind(Respond[Unit, A, X, B](b), func(xq X) Step[Unit, A, X, B, Unit] {
			return Do(func() Step[Unit, A, X, B, Unit] {
				x = xq
				return Pure[Unit, A, X, B](Unit{})
			})
		})
	}

	return Feed(up, ForEach(p, dn))
}

// ZipWith pairs two sources into one: each round pulls one value from p,
// then one from q, and emits f of both. It finishes with the terminal result
// of whichever side is exhausted first - Left for p, Right for q - without
// pulling from the other side past that point.
func ZipWith[A, B, C, RA, RB any](f func(A, B) C, p Source[A, RA], q Source[B, RB]) Source[C, kont.Either[RA, RB]] {
	var loop func(p Source[A, RA], q Source[B, RB]) Source[C, kont.Either[RA, RB]]
	loop = func(p Source[A, RA], q Source[B, RB]) Source[C, kont.Either[RA, RB]] {
		return Do(func() Source[C, kont.Either[RA, RB]] {
			ea := Next(p)
			if ra, fin := ea.GetLeft(); fin {
				return Pure[None, Unit, Unit, C](kont.Left[RA, RB](ra))
			}
			pa, _ := ea.GetRight()
			eb := Next(q)
			if rb, fin := eb.GetLeft(); fin {
				return Pure[None, Unit, Unit, C](kont.Right[RA](rb))
			}
			pb, _ := eb.GetRight()
			return Then(Yield[None, Unit](f(pa.Fst, pb.Fst)), Do(func() Source[C, kont.Either[RA, RB]] {
				return loop(pa.Snd, pb.Snd)
			}))
		})
	}
	return loop(p, q)
}

// Zip pairs two sources into a source of [kont.Pair] values.
func Zip[A, B, RA, RB any](p Source[A, RA], q Source[B, RB]) Source[kont.Pair[A, B], kont.Either[RA, RB]] {
	return ZipWith(func(a A, b B) kont.Pair[A, B] {
		return kont.Pair[A, B]{Fst: a, Snd: b}
	}, p, q)
}
