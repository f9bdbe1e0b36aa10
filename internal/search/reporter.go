//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/avhar/corvid/internal/types"
)

// Reporter receives UCI-formatted progress during a search. Tests
// substitute a recording Reporter to assert on emitted lines; the
// engine's uci package wires the default StdoutReporter.
type Reporter interface {
	SendInfo(depth int, score Value, nodes uint64, elapsed time.Duration)
	SendBestMove(m Move)
}

// StdoutReporter writes info/bestmove lines to standard output
// through a message.Printer, the way FrankyGo's uci.go formats all of
// its protocol output rather than bare fmt.Printf.
type StdoutReporter struct {
	out *message.Printer
}

// NewStdoutReporter returns a Reporter that writes to stdout.
func NewStdoutReporter() *StdoutReporter {
	return &StdoutReporter{out: message.NewPrinter(language.English)}
}

// SendInfo prints "info depth D score cp S nodes N time T".
func (r *StdoutReporter) SendInfo(depth int, score Value, nodes uint64, elapsed time.Duration) {
	r.out.Printf("info depth %d score cp %d nodes %d time %d\n", depth, int(score), nodes, elapsed.Milliseconds())
}

// SendBestMove prints "bestmove <uci>", or the null move when none
// was found (mate/stalemate at the root).
func (r *StdoutReporter) SendBestMove(m Move) {
	if m == MoveNone {
		r.out.Print("bestmove 0000\n")
		return
	}
	r.out.Printf("bestmove %s\n", m.StringUci())
}
