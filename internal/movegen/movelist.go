/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"strings"

	. "github.com/avhar/corvid/internal/types"
)

// MaxMoves bounds a chess position's legal moves; no reachable
// position exceeds roughly 218, so 256 leaves headroom.
const MaxMoves = 256

// MoveList is a fixed-capacity array of moves with a length counter,
// so move generation never allocates on the search hot path.
type MoveList struct {
	moves [MaxMoves]Move
	len   int
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int { return ml.len }

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() { ml.len = 0 }

// At returns the move at index i.
func (ml *MoveList) At(i int) Move { return ml.moves[i] }

// Push appends m to the list. Callers never exceed MaxMoves in
// practice (see package constant); a position that somehow did would
// silently drop the overflow rather than panic or allocate.
func (ml *MoveList) Push(m Move) {
	if ml.len >= MaxMoves {
		return
	}
	ml.moves[ml.len] = m
	ml.len++
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.len; i++ {
		if ml.moves[i].Equals(m) {
			return true
		}
	}
	return false
}

// String renders the list as algebraic moves, space separated.
func (ml *MoveList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ml.moves[i].String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// StringUci renders the list as UCI move tokens, space separated.
func (ml *MoveList) StringUci() string {
	var sb strings.Builder
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ml.moves[i].StringUci())
	}
	return sb.String()
}
