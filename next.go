// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

import (
	"code.hybscloud.com/kont"
)

// Next advances a source to its next emitted value, performing effects on
// the way. It is the stepping boundary for external drivers: evaluate one
// element at a time, keeping the rest of the source as a resumable value.
//
// Returns Right(Pair{value, rest}) when the source emitted, or Left(result)
// when it finished. Dropping the returned rest abandons the source at its
// suspension point; nothing past the last emit is consumed.
func Next[B, R any](p Source[B, R]) kont.Either[R, kont.Pair[B, Source[B, R]]] {
	for {
		switch n := p.(type) {
		case *doneStep[None, Unit, Unit, B, R]:
			return kont.Left[R, kont.Pair[B, Source[B, R]]](n.result)
		case *emitStep[None, Unit, Unit, B, R]:
			// Acknowledging the emit rewrites nodes but performs no effects.
			return kont.Right[R](kont.Pair[B, Source[B, R]]{
				Fst: n.value,
				Snd: n.resume(Unit{}),
			})
		case *effectStep[None, Unit, Unit, B, R]:
			p = n.action()
		case *awaitStep[None, Unit, Unit, B, R]:
			contractViolation("source suspended on a request")
		default:
			unknownStep()
		}
	}
}
