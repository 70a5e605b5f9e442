// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Link is a bounded hand-off between two pipelines, typically one per
// goroutine: the producing pipeline drains into [Link.Sink], the consuming
// pipeline reads from [Link.Source]. Transport is a single-producer
// single-consumer lock-free ring from lfq; readiness waiting uses
// iox.Backoff, without goroutines or channels of its own.
//
// Queue operations run inside each side's own traversal, so every pipeline
// keeps its single thread of control; the Link is the edge between two of
// them.
type Link[T any] struct {
	q      lfq.SPSC[T]
	slot   T
	closed atomix.Uint32
	serial Serial
}

// NewLink creates a link with the given ring capacity.
// The ring and close mark live in one allocation with the Link itself.
func NewLink[T any](capacity int) *Link[T] {
	l := &Link[T]{serial: nextSerial()}
	l.q.Init(capacity)
	return l
}

// Serial returns the serial number assigned to this link.
func (l *Link[T]) Serial() Serial {
	return l.serial
}

// Close marks the producing side as finished. After the consumer drains the
// ring, [Link.Source] finishes. Close does not block.
func (l *Link[T]) Close() {
	l.closed.Add(1)
}

// Sink accepts values and enqueues each into the ring, waiting out a full
// ring with adaptive backoff. The producing pipeline should call
// [Link.Close] once its traversal returns.
func (l *Link[T]) Sink() Sink[T, Unit] {
	var loop func() Sink[T, Unit]
	loop = func() Sink[T, Unit] {
		return Bind(Await[T, Unit, None](), func(v T) Sink[T, Unit] {
			return Do(func() Sink[T, Unit] {
				l.slot = v
				var bo iox.Backoff
				for l.q.Enqueue(&l.slot) != nil {
					bo.Wait()
				}
				return loop()
			})
		})
	}
	return loop()
}

// Source emits values dequeued from the ring, backing off while it is
// empty, and finishes once the link is closed and drained. After observing
// the close mark it re-checks the ring once, so a value enqueued just
// before Close is never lost.
func (l *Link[T]) Source() Source[T, Unit] {
	var loop func() Source[T, Unit]
	loop = func() Source[T, Unit] {
		return Do(func() Source[T, Unit] {
			var bo iox.Backoff
			drained := false
			for {
				v, err := l.q.Dequeue()
				if err == nil {
					return Then(Yield[None, Unit](v), Do(loop))
				}
				if drained {
					return Pure[None, Unit, Unit, T](Unit{})
				}
				if l.closed.Load() != 0 {
					drained = true
					continue
				}
				bo.Wait()
			}
		})
	}
	return Do(loop)
}
