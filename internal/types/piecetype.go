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

// PieceType is one of the six piece kinds, color independent.
// The encoding is stable as it indexes bitboards, PSQTs and
// Zobrist tables directly - never reorder these constants.
type PieceType uint8

// PieceType values.
const (
	PtNone    PieceType = iota
	King      PieceType = iota
	Pawn      PieceType = iota
	Knight    PieceType = iota
	Bishop    PieceType = iota
	Rook      PieceType = iota
	Queen     PieceType = iota
	PtLength            = 7
)

// IsValid checks if pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt >= King && pt <= Queen
}

const pieceTypeChars = "-KPNBRQ"

// Char returns the uppercase algebraic letter for the piece type,
// or "-" if pt is PtNone.
func (pt PieceType) Char() string {
	if pt > Queen {
		return "-"
	}
	return string(pieceTypeChars[pt])
}

// String returns a lower case name for the piece type.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "king"
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	default:
		return "none"
	}
}

// Value returns the material weight of pt in centipawns, the same
// table Piece.ValueOf indexes by color-qualified piece.
func (pt PieceType) Value() Value {
	return pieceTypeValue[pt]
}

// PieceTypeFromChar parses an uppercase algebraic piece letter.
// Returns PtNone if unrecognised.
func PieceTypeFromChar(c string) PieceType {
	switch c {
	case "K":
		return King
	case "P":
		return Pawn
	case "N":
		return Knight
	case "B":
		return Bishop
	case "R":
		return Rook
	case "Q":
		return Queen
	default:
		return PtNone
	}
}
