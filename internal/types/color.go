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

// Color represents the player color, White or Black.
type Color uint8

// Color values. White is always the side that moves first.
const (
	White      Color = iota
	Black      Color = iota
	ColorNone  Color = iota
	ColorLength      = ColorNone
)

// IsValid checks if c is a valid color (White or Black).
func (c Color) IsValid() bool {
	return c < ColorNone
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// Direction returns +1 for White and -1 for Black, used to
// orient pawn pushes and attack steps without branching.
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// MoveDirection returns the direction a pawn of this color pushes in.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnRank returns the rank pawns of this color start on.
func (c Color) PawnRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank pawns of this color promote on.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PawnDoublePushRank returns the rank reached by a double pawn push.
func (c Color) PawnDoublePushRank() Rank {
	if c == White {
		return Rank4
	}
	return Rank5
}

// String returns "w" or "b", matching the FEN/UCI side-to-move token.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}
