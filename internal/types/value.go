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

package types

import "math"

// Value is a centipawn evaluation score, signed from White's view.
type Value int32

// Bounds and sentinels used throughout search and evaluation.
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueNA   Value = math.MinInt32 + 1

	// ValueInfinite is the widest possible alpha-beta window bound -
	// the int32 maximum, whose negation (MinInt32+1) still fits.
	ValueInfinite Value = math.MaxInt32

	// ValueMate is the score of a position where the side to move has
	// just been mated. Search reports mate scores as ValueMate minus
	// the number of plies to the mate so shorter mates sort higher.
	ValueMate   Value = math.MaxInt32 - 50
	ValueMaxPly Value = 1024

	// ValueMateThreshold bounds the window in which a score is
	// considered a forced mate rather than a material evaluation.
	ValueMateThreshold Value = ValueMate - ValueMaxPly
)

// IsMateValue reports whether v falls in the mate-score window.
func (v Value) IsMateValue() bool {
	return v >= ValueMateThreshold || v <= -ValueMateThreshold
}

// MatedIn returns the score for being mated in ply plies.
func MatedIn(ply int) Value {
	return Value(-int(ValueMate) + ply)
}

// MateIn returns the score for delivering mate in ply plies.
func MateIn(ply int) Value {
	return Value(int(ValueMate) - ply)
}
