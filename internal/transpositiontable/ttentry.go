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

package transpositiontable

import (
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

// TtEntrySize is the size in bytes of one TtEntry, used to compute how
// many slots fit into a given byte budget.
const TtEntrySize = 24 // 8 (key) + 2 (move) + 4 (score) + 1 (depth) + 1 (bound) + 1 (age), rounded to alignment

// TtEntry is one slot of the transposition table: a cached search
// result keyed by the position's Zobrist hash, the fields spec §4.E
// names (full key, depth, score, bound kind, optional best move, age).
type TtEntry struct {
	Key   position.Key
	Move  Move
	Score Value
	Depth uint8
	Bound Bound
	Age   uint8
}

func (e *TtEntry) isEmpty() bool {
	return e.Bound == BoundNone
}
