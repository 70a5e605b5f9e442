// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

// RunEffect executes a closed stream to completion, performing each effect
// exactly once in encounter order, and returns the terminal result.
//
// The loop owns the current node and walks iteratively; stack depth does not
// grow with stream length. A closed stream has no legal suspension: an await
// or emit node is a programming error and traps.
func RunEffect[R any](e Closed[R]) R {
	for {
		switch n := e.(type) {
		case *doneStep[None, Unit, Unit, None, R]:
			return n.result
		case *effectStep[None, Unit, Unit, None, R]:
			e = n.action()
		case *awaitStep[None, Unit, Unit, None, R]:
			contractViolation("closed stream suspended on a request")
		case *emitStep[None, Unit, Unit, None, R]:
			contractViolation("closed stream suspended on an emit")
		default:
			unknownStep()
		}
	}
}
