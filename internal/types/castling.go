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

// CastlingRights is a four-bit set tracking which of the four castling
// moves are still available. Bits never come back once cleared.
type CastlingRights uint8

// Castling right bits, in FEN "KQkq" order.
const (
	CastlingWhiteOO  CastlingRights = 1 << iota // White kingside (O-O)
	CastlingWhiteOOO                            // White queenside (O-O-O)
	CastlingBlackOO                             // Black kingside
	CastlingBlackOOO                            // Black queenside

	CastlingNone CastlingRights = 0
	CastlingAny  CastlingRights = CastlingWhiteOO | CastlingWhiteOOO | CastlingBlackOO | CastlingBlackOOO
)

// Has reports whether all bits in mask are set.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// Remove clears the given bits and returns the result.
func (cr CastlingRights) Remove(mask CastlingRights) CastlingRights {
	return cr &^ mask
}

// String renders the right set in FEN order, "-" if none remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// castlingRightsFromChar maps a single FEN castling letter to its bit.
func castlingRightsFromChar(c byte) CastlingRights {
	switch c {
	case 'K':
		return CastlingWhiteOO
	case 'Q':
		return CastlingWhiteOOO
	case 'k':
		return CastlingBlackOO
	case 'q':
		return CastlingBlackOOO
	default:
		return CastlingNone
	}
}

// CastlingRightsFromFen parses the FEN castling field ("KQkq", "Kq",
// "-", ...) into a CastlingRights set. Unrecognised letters are
// ignored rather than rejected, so a malformed field yields a partial
// or empty set instead of an error.
func CastlingRightsFromFen(field string) CastlingRights {
	var cr CastlingRights
	for i := 0; i < len(field); i++ {
		cr |= castlingRightsFromChar(field[i])
	}
	return cr
}

// RightsLostByMove returns the union of rights forfeited by a piece
// moving from `from` to `to` - covers both the mover losing its own
// castling rights (king or rook stepping off its home square) and a
// rook being captured on its home square. Grounded on GetCastlingRights,
// the per-square table precomputed alongside the other bitboard masks.
func RightsLostByMove(from, to Square) CastlingRights {
	return GetCastlingRights(from) | GetCastlingRights(to)
}

// KingCastleRookSquares returns where the rook starts and where it
// lands for each of the four castling moves, keyed by the king's
// destination square (the move's "to"); any other square gives
// SqNone, SqNone.
func KingCastleRookSquares(kingTo Square) (rookFrom, rookTo Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		return SqNone, SqNone
	}
}
