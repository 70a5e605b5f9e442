// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

import (
	"code.hybscloud.com/kont"
)

// Unfold builds a source from a state-threading step function.
// step returns Right(Pair{value, nextState}) to emit and continue, or
// Left(result) to finish. Each step runs as one effect, so unfolding is
// iterative: stack depth does not grow with the number of emitted values.
func Unfold[S, B, R any](initial S, step func(S) kont.Either[R, kont.Pair[B, S]]) Source[B, R] {
	var loop func(s S) Source[B, R]
	loop = func(s S) Source[B, R] {
		return Do(func() Source[B, R] {
			e := step(s)
			if r, fin := e.GetLeft(); fin {
				return Pure[None, Unit, Unit, B](r)
			}
			p, _ := e.GetRight()
			return Then(Yield[None, Unit](p.Fst), Do(func() Source[B, R] {
				return loop(p.Snd)
			}))
		})
	}
	return loop(initial)
}

// Iterate emits the infinite sequence x0, f(x0), f(f(x0)), ...
// Consume it through a bounded stage such as [Take].
func Iterate[B any](x0 B, f func(B) B) Source[B, Unit] {
	var loop func(x B) Source[B, Unit]
	loop = func(x B) Source[B, Unit] {
		return Then(Yield[None, Unit](x), Do(func() Source[B, Unit] {
			return loop(f(x))
		}))
	}
	return loop(x0)
}
