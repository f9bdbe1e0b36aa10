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

	. "github.com/avhar/corvid/internal/types"
)

// Result is the outcome of the last fully completed iterative
// deepening iteration - or, if a search is aborted before its first
// iteration finishes, the first legal root move with a zero value and
// depth. BestMove is MoveNone only when the root has no legal move.
type Result struct {
	BestMove   Move
	BestValue  Value
	Depth      int
	Nodes      uint64
	SearchTime time.Duration
}

func (r Result) String() string {
	return out.Sprintf("bestmove %s score cp %d depth %d nodes %d time %d",
		r.BestMove.StringUci(), r.BestValue, r.Depth, r.Nodes, r.SearchTime.Milliseconds())
}
