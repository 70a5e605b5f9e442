// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

// Derived stages, each a short loop over [Await], [Yield], and [Do].
// None of these touch the node union; they exist so that traversal-engine
// queries and tests have standard building blocks.

// Each emits every element of xs in order, then finishes.
// Use [Map] on the result to line its terminal type up with a sink's.
func Each[B any](xs []B) Source[B, Unit] {
	var loop func(i int) Source[B, Unit]
	loop = func(i int) Source[B, Unit] {
		if i == len(xs) {
			return Pure[None, Unit, Unit, B](Unit{})
		}
		return Then(Yield[None, Unit](xs[i]), Do(func() Source[B, Unit] {
			return loop(i + 1)
		}))
	}
	return Do(func() Source[B, Unit] { return loop(0) })
}

// Filter forwards only the values satisfying pred.
func Filter[A, R any](pred func(A) bool) Pipe[A, A, R] {
	var loop func() Pipe[A, A, R]
	loop = func() Pipe[A, A, R] {
		return Bind(Await[A, Unit, A](), func(a A) Pipe[A, A, R] {
			if !pred(a) {
				return Do(loop)
			}
			return Then(Yield[Unit, A](a), Do(loop))
		})
	}
	return loop()
}

// MapEach applies f to every value passing through.
func MapEach[A, B, R any](f func(A) B) Pipe[A, B, R] {
	var loop func() Pipe[A, B, R]
	loop = func() Pipe[A, B, R] {
		return Bind(Await[A, Unit, B](), func(a A) Pipe[A, B, R] {
			return Then(Yield[Unit, A](f(a)), Do(loop))
		})
	}
	return loop()
}

// Take forwards the first n values, then finishes without pulling further.
func Take[A any](n int) Pipe[A, A, Unit] {
	if n <= 0 {
		return Pure[Unit, A, Unit, A](Unit{})
	}
	return Bind(Await[A, Unit, A](), func(a A) Pipe[A, A, Unit] {
		return Then(Yield[Unit, A](a), Do(func() Pipe[A, A, Unit] {
			return Take[A](n - 1)
		}))
	})
}

// TakeWhile forwards values until the first one failing pred, which is
// consumed but not forwarded.
func TakeWhile[A any](pred func(A) bool) Pipe[A, A, Unit] {
	var loop func() Pipe[A, A, Unit]
	loop = func() Pipe[A, A, Unit] {
		return Bind(Await[A, Unit, A](), func(a A) Pipe[A, A, Unit] {
			if !pred(a) {
				return Pure[Unit, A, Unit, A](Unit{})
			}
			return Then(Yield[Unit, A](a), Do(loop))
		})
	}
	return loop()
}

// Drop discards the first n values and forwards the rest unchanged.
func Drop[A, R any](n int) Pipe[A, A, R] {
	if n <= 0 {
		return Cat[A, R]()
	}
	return Bind(Await[A, Unit, A](), func(A) Pipe[A, A, R] {
		return Do(func() Pipe[A, A, R] {
			return Drop[A, R](n - 1)
		})
	})
}

// Concat flattens incoming slices, emitting their elements in order.
func Concat[A, R any]() Pipe[[]A, A, R] {
	var emit func(xs []A, i int) Pipe[[]A, A, R]
	var loop func() Pipe[[]A, A, R]
	emit = func(xs []A, i int) Pipe[[]A, A, R] {
		if i == len(xs) {
			return Do(loop)
		}
		return Then(Yield[Unit, []A](xs[i]), Do(func() Pipe[[]A, A, R] {
			return emit(xs, i+1)
		}))
	}
	loop = func() Pipe[[]A, A, R] {
		return Bind(Await[[]A, Unit, A](), func(xs []A) Pipe[[]A, A, R] {
			return emit(xs, 0)
		})
	}
	return loop()
}
