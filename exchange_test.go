// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/duct"
	"code.hybscloud.com/kont"
)

// recordForever is [recordingSink] with a free terminal type, for wiring
// downstream of stages that finish on their own.
func recordForever[T, R any](rec *[]T) duct.Sink[T, R] {
	var loop func() duct.Sink[T, R]
	loop = func() duct.Sink[T, R] {
		return duct.Bind(duct.Await[T, duct.Unit, duct.None](), func(v T) duct.Sink[T, R] {
			return duct.Do(func() duct.Sink[T, R] {
				*rec = append(*rec, v)
				return loop()
			})
		})
	}
	return loop()
}

func TestTeeObservesAndForwards(t *testing.T) {
	// The inner sink finishes after two values; the pipe flushes the
	// second value downstream before finishing with the sink's result.
	var pulled int
	var forwarded []int
	src := withResult(countingSource([]int{1, 2, 3}, &pulled), []int(nil))
	got := duct.RunEffect(duct.Connect(
		duct.Connect(src, duct.Tee(takeSink[int](2))),
		recordForever[int, []int](&forwarded),
	))
	if !sameInts(got, []int{1, 2}) {
		t.Fatalf("tee result %v, want [1 2]", got)
	}
	if !sameInts(forwarded, []int{1, 2}) {
		t.Fatalf("forwarded %v, want [1 2]", forwarded)
	}
	if pulled != 2 {
		t.Fatalf("source pulled %d values, want 2", pulled)
	}
}

func TestTeeDownstreamStopsFirst(t *testing.T) {
	// Downstream finishes before the inner sink: every value the pipe
	// re-emitted was observed by the sink first, exactly once, in order.
	var observed []int
	src := withResult(duct.Each([]int{1, 2, 3, 4}), []int(nil))
	got := duct.RunEffect(duct.Connect(
		duct.Connect(src, duct.Tee(recordForever[int, []int](&observed))),
		takeSink[int](2),
	))
	if !sameInts(got, []int{1, 2}) {
		t.Fatalf("downstream got %v, want [1 2]", got)
	}
	if !sameInts(observed, []int{1, 2}) {
		t.Fatalf("sink observed %v, want [1 2]", observed)
	}
}

func TestTeeUpstreamExhausted(t *testing.T) {
	// Upstream runs dry while the sink still awaits: the upstream terminal
	// wins and every emitted value was both observed and forwarded.
	var observed, forwarded []int
	src := withResult(duct.Each([]int{5, 6}), "eof")
	got := duct.RunEffect(duct.Connect(
		duct.Connect(src, duct.Tee(recordForever[int, string](&observed))),
		recordForever[int, string](&forwarded),
	))
	if got != "eof" {
		t.Fatalf("terminal %q, want %q", got, "eof")
	}
	if !sameInts(observed, []int{5, 6}) || !sameInts(forwarded, []int{5, 6}) {
		t.Fatalf("observed %v forwarded %v, want both [5 6]", observed, forwarded)
	}
}

// observeExchange drives a bidirectional int relay with deterministic
// handlers: requests reaching upstream are answered with address*10 and
// logged; emits reaching downstream are acknowledged with value+1 and
// logged. Returns the two logs after the relay finishes.
func observeExchange(g duct.Step[int, int, int, int, duct.Unit]) (ups, dns []int) {
	up := func(x int) duct.Step[duct.None, duct.Unit, int, int, int] {
		return duct.Do(func() duct.Step[duct.None, duct.Unit, int, int, int] {
			ups = append(ups, x)
			return duct.Pure[duct.None, duct.Unit, int, int](x * 10)
		})
	}
	dn := func(b int) duct.Step[duct.None, duct.Unit, duct.Unit, duct.None, int] {
		return duct.Do(func() duct.Step[duct.None, duct.Unit, duct.Unit, duct.None, int] {
			dns = append(dns, b)
			return duct.Pure[duct.None, duct.Unit, duct.Unit, duct.None](b + 1)
		})
	}
	duct.RunEffect(duct.ForEach(duct.Feed(up, g), dn))
	return ups, dns
}

func TestGeneralizeThreadsAddresses(t *testing.T) {
	// Seeded with 7: first request carries 7; each downstream ack (+1)
	// becomes the next request's address.
	ups, dns := observeExchange(duct.Generalize(duct.Take[int](2), 7))
	if !sameInts(ups, []int{7, 71}) {
		t.Fatalf("upstream saw addresses %v, want [7 71]", ups)
	}
	if !sameInts(dns, []int{70, 710}) {
		t.Fatalf("downstream saw values %v, want [70 710]", dns)
	}
}

func TestTeeTrapsEmittingSink(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on a sink that emits")
		}
		msg, ok := r.(string)
		if !ok || msg != "duct: sink emitted a value" {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	// A sink's downstream is closed; a stage that emits anyway is trapped
	// during the traversal, after its legal await has been served.
	rogue := duct.Bind(duct.Await[int, duct.Unit, duct.None](), func(int) duct.Sink[int, duct.Unit] {
		return duct.Respond[duct.Unit, int, duct.Unit, duct.None](duct.None{})
	})
	var forwarded []int
	duct.RunEffect(duct.Connect(
		duct.Connect(duct.Each([]int{1, 2}), duct.Tee(rogue)),
		recordForever[int, duct.Unit](&forwarded),
	))
}

// driveRounds observes a bidirectional int relay for a fixed number of
// rounds: a downstream driver requests with seed, then with each received
// value plus one; upstream answers every address with address*10 and logs
// it. Returns the upstream address log and the driver's value log.
func driveRounds(mk func(int) duct.Step[int, int, int, int, duct.Unit], seed, rounds int) (ups, dns []int) {
	var driver func(k, addr int) duct.Step[int, int, duct.Unit, duct.None, duct.Unit]
	driver = func(k, addr int) duct.Step[int, int, duct.Unit, duct.None, duct.Unit] {
		if k == 0 {
			return duct.Pure[int, int, duct.Unit, duct.None](duct.Unit{})
		}
		return duct.Bind(duct.Request[int, int, duct.Unit, duct.None](addr), func(v int) duct.Step[int, int, duct.Unit, duct.None, duct.Unit] {
			return duct.Do(func() duct.Step[int, int, duct.Unit, duct.None, duct.Unit] {
				dns = append(dns, v)
				return driver(k-1, v+1)
			})
		})
	}
	up := func(x int) duct.Step[duct.None, duct.Unit, duct.Unit, duct.None, int] {
		return duct.Do(func() duct.Step[duct.None, duct.Unit, duct.Unit, duct.None, int] {
			ups = append(ups, x)
			return duct.Pure[duct.None, duct.Unit, duct.Unit, duct.None](x * 10)
		})
	}
	duct.RunEffect(duct.Feed(up, duct.PullBy(mk, driver(rounds, seed))))
	return ups, dns
}

func TestGeneralizeIdentity(t *testing.T) {
	// The generalized forwarder must be indistinguishable from the
	// hand-written bidirectional relay: request the current address, pass
	// the reply downstream, repeat with the acknowledgement.
	var relay func(x int) duct.Step[int, int, int, int, duct.Unit]
	relay = func(x int) duct.Step[int, int, int, int, duct.Unit] {
		return duct.Bind(duct.Request[int, int, int, int](x), func(a int) duct.Step[int, int, int, int, duct.Unit] {
			return duct.Bind(duct.Respond[int, int, int, int](a), func(xq int) duct.Step[int, int, int, int, duct.Unit] {
				return duct.Do(func() duct.Step[int, int, int, int, duct.Unit] {
					return relay(xq)
				})
			})
		})
	}

	upsA, dnsA := driveRounds(func(x int) duct.Step[int, int, int, int, duct.Unit] {
		return duct.Generalize(duct.Cat[int, duct.Unit](), x)
	}, 7, 3)
	upsB, dnsB := driveRounds(relay, 7, 3)

	if !sameInts(upsA, []int{7, 71, 711}) || !sameInts(dnsA, []int{70, 710, 7110}) {
		t.Fatalf("generalized identity saw ups %v dns %v", upsA, dnsA)
	}
	if !reflect.DeepEqual(upsA, upsB) || !reflect.DeepEqual(dnsA, dnsB) {
		t.Fatalf("relays diverge: generalized (%v, %v) vs explicit (%v, %v)", upsA, dnsA, upsB, dnsB)
	}
}

func TestGeneralizeComposition(t *testing.T) {
	// Generalizing a connected pair behaves exactly like composing the
	// generalized halves, including the addresses threaded through.
	mk1 := func() duct.Pipe[int, int, duct.Unit] {
		return duct.MapEach[int, int, duct.Unit](func(n int) int { return n + 3 })
	}
	mk2 := func() duct.Pipe[int, int, duct.Unit] { return duct.Take[int](3) }

	upsA, dnsA := observeExchange(duct.Generalize(duct.Connect(mk1(), mk2()), 7))
	upsB, dnsB := observeExchange(duct.PullBy(func(x int) duct.Step[int, int, int, int, duct.Unit] {
		return duct.Generalize(mk1(), x)
	}, duct.Generalize(mk2(), 7)))

	if !reflect.DeepEqual(upsA, upsB) {
		t.Fatalf("upstream logs differ: %v vs %v", upsA, upsB)
	}
	if !reflect.DeepEqual(dnsA, dnsB) {
		t.Fatalf("downstream logs differ: %v vs %v", dnsA, dnsB)
	}
}

func TestZipWithShorterRightStops(t *testing.T) {
	var pulledL, pulledR int
	p := countingSource([]int{1, 2, 3}, &pulledL)
	q := countingSource([]int{10, 20}, &pulledR)
	sums, r := duct.FoldR(duct.ZipWith(func(a, b int) int { return a + b }, p, q),
		[]int(nil),
		func(acc []int, c int) []int { return append(acc, c) },
		func(acc []int) []int { return acc })
	if !sameInts(sums, []int{11, 22}) {
		t.Fatalf("zipped %v, want [11 22]", sums)
	}
	if _, fin := r.GetRight(); !fin {
		t.Fatalf("terminal %v, want Right", r)
	}
	if pulledL != 3 || pulledR != 2 {
		t.Fatalf("pulled left %d right %d, want 3 and 2", pulledL, pulledR)
	}
}

func TestZipWithEmptyLeftSkipsRight(t *testing.T) {
	var pulledR int
	p := duct.Each([]int(nil))
	q := countingSource([]int{10, 20}, &pulledR)
	got, r := duct.FoldR(duct.ZipWith(func(a, b int) int { return a + b }, p, q),
		0, func(n, _ int) int { return n + 1 }, func(n int) int { return n })
	if got != 0 {
		t.Fatalf("zip of empty left emitted %d values", got)
	}
	if _, fin := r.GetLeft(); !fin {
		t.Fatalf("terminal %v, want Left", r)
	}
	if pulledR != 0 {
		t.Fatalf("right side pulled %d values, want 0", pulledR)
	}
}

func TestZipPairs(t *testing.T) {
	pairs := duct.Collect(duct.Zip(duct.Each([]int{1, 2}), duct.Each([]string{"a", "b", "c"})))
	want := []kont.Pair[int, string]{{Fst: 1, Snd: "a"}, {Fst: 2, Snd: "b"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("Zip got %v, want %v", pairs, want)
	}
}
