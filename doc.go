// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package duct provides composable, effectful, bidirectional stream
// processing over a single suspended-computation type.
//
// A [Step] is a persistent tree describing a stream stage: it may request a
// value upstream, offer a value downstream, perform one unit of work, or
// finish with a result. Every suspension point is explicit and resumption is
// synchronous - the tree itself is the continuation. There is no scheduler
// and no buffering: at most one value is in flight at any composition
// boundary.
//
// # Architecture
//
//   - Representation: four node variants behind the [Step] interface,
//     built with [Request], [Respond], [Do], [Pure] and sequenced with
//     [Bind], [Map], [Then].
//   - Shapes: [Source], [Sink], [Pipe], [Closed] fix one or both interfaces
//     to the closed marker [None]. Suspending over a closed interface is a
//     contract violation and traps; it is never silently defaulted.
//   - Composition: the pull algebra [ForEach], the push algebra [Feed], and
//     the producer-consumer connection [Connect], each with a two-sided
//     identity ([Yield], [Request], [Cat]) and associative up to observable
//     behavior.
//   - Traversal: [RunEffect] executes a [Closed] stream; [Next] steps a
//     [Source] one element at a time; the [Fold] family reduces strictly
//     with an eager accumulator.
//   - Exchange: [Tee], [Generalize], [ZipWith] convert between directional
//     shapes by threading one slot of pending state across the boundary.
//
// # Termination
//
// Cancellation is structural: a stage that finishes stops the composed
// pipeline from that point outward, and the abandoned side is never pulled
// again. [ZipWith] finishes with the first exhausted side's result; the
// early-stopping queries ([Head], [Find], [Any], ...) pull no further than
// the value that determines their answer.
//
// # Effects and failures
//
// Side effects live in [Do] actions and run exactly once, in traversal
// order. Boundary failures travel through a stream's terminal result type
// as ordinary error values (see [ReadLines], [WriteLines], [FoldE]);
// sum-typed outcomes use [kont.Either] from [code.hybscloud.com/kont].
// A writer whose reading peer has gone away is treated as a clean stop,
// not an error.
//
// # Integration
//
//   - Stepping: [Next] yields one element and the resumable rest, making a
//     [Source] easy to drive from an external loop.
//   - Linking: [Link] hands values between two pipelines over a bounded
//     lock-free SPSC ring via [code.hybscloud.com/lfq], waiting for
//     readiness with adaptive backoff via [code.hybscloud.com/iox].
//
// # Example
//
//	src := duct.Each([]int{1, 2, 3, 4, 5})
//	even := duct.Filter[int, duct.Unit](func(n int) bool { return n%2 == 0 })
//	sum := duct.Fold(duct.Connect(src, even), 0,
//		func(acc, n int) int { return acc + n },
//		func(acc int) int { return acc })
//	// sum == 6
package duct
