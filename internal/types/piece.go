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

// Piece is a (PieceType, Color) pair encoded as a small dense integer
// so it can index the mailbox and piece-square tables directly.
type Piece uint8

// Piece values. Encoding is White pieces 1-6, Black pieces 9-14 (i.e.
// PieceType | color<<3) so MakePiece/ColorOf/TypeOf are branch free.
const (
	PieceNone Piece = 0

	WhiteKing Piece = Piece(King)
	WhitePawn Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook Piece = Piece(Rook)
	WhiteQueen Piece = Piece(Queen)

	BlackKing Piece = Piece(King) + 8
	BlackPawn Piece = Piece(Pawn) + 8
	BlackKnight Piece = Piece(Knight) + 8
	BlackBishop Piece = Piece(Bishop) + 8
	BlackRook Piece = Piece(Rook) + 8
	BlackQueen Piece = Piece(Queen) + 8

	PieceLength = 16
)

// Material weights in centipawns as specified by the evaluator (§4.D):
// Pawn 100, Knight 300, Bishop 330, Rook 500, Queen 900, King 0.
var pieceTypeValue = [PtLength]Value{
	PtNone: 0,
	King:   0,
	Pawn:   100,
	Knight: 300,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
}

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if c == Black {
		return Piece(pt) + 8
	}
	return Piece(pt)
}

// TypeOf returns the PieceType part of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ColorOf returns the Color part of the piece.
func (p Piece) ColorOf() Color {
	if p >= 8 {
		return Black
	}
	return White
}

// IsValid checks p encodes one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// ValueOf returns the material value of the piece in centipawns.
func (p Piece) ValueOf() Value {
	return pieceTypeValue[p.TypeOf()]
}

// Char returns the piece's algebraic letter: uppercase for White,
// lowercase for Black. Returns "-" for PieceNone.
func (p Piece) Char() string {
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return strings_ToLower(c)
	}
	return c
}

func strings_ToLower(s string) string {
	if len(s) == 0 {
		return s
	}
	b := s[0]
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return string(b)
}

// String returns the piece's algebraic letter.
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar parses a single-letter algebraic piece token, upper
// case for White, lower for Black. Returns PieceNone for anything
// else (including empty or multi-character strings).
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	switch s {
	case "K":
		return WhiteKing
	case "P":
		return WhitePawn
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "R":
		return WhiteRook
	case "Q":
		return WhiteQueen
	case "k":
		return BlackKing
	case "p":
		return BlackPawn
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "r":
		return BlackRook
	case "q":
		return BlackQueen
	default:
		return PieceNone
	}
}
