// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duct

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"syscall"
)

// Line-oriented handle adapters and textual conversion stages.
//
// Failure policy: scan and write errors travel through the stream's terminal
// result, stopping the pipeline structurally. The single exception is a
// writer whose reader has gone away (EPIPE), which is a normal request to
// stop producing output, not an error. Parse failures drop the offending
// value and continue. Nothing else is swallowed.

// ReadLines emits successive lines of r without their terminators.
// It finishes with nil at end of input, or with the read error otherwise.
func ReadLines(r io.Reader) Source[string, error] {
	sc := bufio.NewScanner(r)
	var loop func() Source[string, error]
	loop = func() Source[string, error] {
		if !sc.Scan() {
			return Pure[None, Unit, Unit, string](sc.Err())
		}
		return Then(Yield[None, Unit](sc.Text()), Do(loop))
	}
	return Do(loop)
}

// WriteLines writes each accepted value to w, one per line.
// A write failing with [syscall.EPIPE] means the reading peer has gone
// away: the sink finishes cleanly with nil. Any other write error finishes
// the sink with that error.
func WriteLines(w io.Writer) Sink[string, error] {
	var loop func() Sink[string, error]
	loop = func() Sink[string, error] {
		return Bind(Await[string, Unit, None](), func(line string) Sink[string, error] {
			return Do(func() Sink[string, error] {
				if _, err := io.WriteString(w, line+"\n"); err != nil {
					if errors.Is(err, syscall.EPIPE) {
						return Pure[Unit, string, Unit, None, error](nil)
					}
					return Pure[Unit, string, Unit, None](err)
				}
				return loop()
			})
		})
	}
	return loop()
}

// ParseWith converts each incoming value with parse, silently dropping
// values that fail to parse.
func ParseWith[T, R any](parse func(string) (T, error)) Pipe[string, T, R] {
	var loop func() Pipe[string, T, R]
	loop = func() Pipe[string, T, R] {
		return Bind(Await[string, Unit, T](), func(s string) Pipe[string, T, R] {
			v, err := parse(s)
			if err != nil {
				return Do(loop)
			}
			return Then(Yield[Unit, string](v), Do(loop))
		})
	}
	return loop()
}

// FormatWith converts each incoming value with format. Formatting is total:
// there is no failure path.
func FormatWith[T, R any](format func(T) string) Pipe[T, string, R] {
	return MapEach[T, string, R](format)
}

// ParseInt parses each incoming value as a base-10 int64, dropping values
// with any unconsumed trailing input.
func ParseInt[R any]() Pipe[string, int64, R] {
	return ParseWith[int64, R](func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// FormatInt formats each incoming int64 in base 10.
func FormatInt[R any]() Pipe[int64, string, R] {
	return FormatWith[int64, R](func(v int64) string {
		return strconv.FormatInt(v, 10)
	})
}
