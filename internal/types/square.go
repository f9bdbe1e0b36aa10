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

import "github.com/avhar/corvid/internal/util"

// Square is a board index, 0-63, laid out as rank*8+file so SqA1==0
// and SqH8==63. SqNone is the 64th value used as a sentinel.
type Square int8

// Square values, a1 through h8, plus the SqNone sentinel.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = SqNone
)

// IsValid checks sq is in range [SqA1, SqH8].
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf composes a square from a file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)<<3 + uint8(f))
}

// Bb returns the single-bit bitboard for this square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// To steps one square in the given direction. The result is only
// valid (IsValid()) when the step did not wrap off the board; callers
// that need to know must check IsValid() or SquareDistance themselves,
// same as the teacher's slidingAttack loop does.
func (sq Square) To(d Direction) Square {
	t := Square(int8(sq) + int8(d))
	if t < SqA1 || t > SqH8 {
		return SqNone
	}
	return t
}

// SquareDistance returns the Chebyshev distance between two squares,
// i.e. the number of king moves to get from one to the other.
func SquareDistance(sq1, sq2 Square) int {
	return squareDistance[sq1][sq2]
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(sq1, sq2 Square) int {
	return util.Abs(int(sq1.FileOf()) - int(sq2.FileOf()))
}

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(sq1, sq2 Square) int {
	return util.Abs(int(sq1.RankOf()) - int(sq2.RankOf()))
}

// String returns the algebraic name of the square, e.g. "e4", or "-"
// for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
