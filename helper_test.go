// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct_test

import (
	"code.hybscloud.com/duct"
)

// withResult relabels a unit-result source so it can connect to a sink
// with terminal type R.
func withResult[B, R any](p duct.Source[B, duct.Unit], r R) duct.Source[B, R] {
	return duct.Map(p, func(duct.Unit) R { return r })
}

// countingSource emits xs in order, incrementing *pulled just before each
// emit. Used to prove that early-stopping consumers never over-consume.
func countingSource(xs []int, pulled *int) duct.Source[int, duct.Unit] {
	var loop func(i int) duct.Source[int, duct.Unit]
	loop = func(i int) duct.Source[int, duct.Unit] {
		return duct.Do(func() duct.Source[int, duct.Unit] {
			if i == len(xs) {
				return duct.Pure[duct.None, duct.Unit, duct.Unit, int](duct.Unit{})
			}
			*pulled++
			return duct.Then(duct.Yield[duct.None, duct.Unit](xs[i]), duct.Do(func() duct.Source[int, duct.Unit] {
				return loop(i + 1)
			}))
		})
	}
	return loop(0)
}

// takeSink accepts n values and finishes with them in order.
func takeSink[T any](n int) duct.Sink[T, []T] {
	var loop func(acc []T) duct.Sink[T, []T]
	loop = func(acc []T) duct.Sink[T, []T] {
		if len(acc) == n {
			return duct.Pure[duct.Unit, T, duct.Unit, duct.None](acc)
		}
		return duct.Bind(duct.Await[T, duct.Unit, duct.None](), func(v T) duct.Sink[T, []T] {
			return duct.Do(func() duct.Sink[T, []T] {
				return loop(append(acc, v))
			})
		})
	}
	return loop(nil)
}

// recordingSink appends every accepted value to *rec and never finishes
// on its own; termination comes structurally from upstream.
func recordingSink[T any](rec *[]T) duct.Sink[T, duct.Unit] {
	var loop func() duct.Sink[T, duct.Unit]
	loop = func() duct.Sink[T, duct.Unit] {
		return duct.Bind(duct.Await[T, duct.Unit, duct.None](), func(v T) duct.Sink[T, duct.Unit] {
			return duct.Do(func() duct.Sink[T, duct.Unit] {
				*rec = append(*rec, v)
				return loop()
			})
		})
	}
	return loop()
}

// sameInts compares two int slices treating nil and empty as equal.
func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
