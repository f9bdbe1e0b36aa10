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

// Move is a move encoded in 16 bits: bits 0-5 from-square, bits 6-11
// to-square, bit 12 the promotion flag. When the promotion flag is
// set, bits 13-15 hold the promotion piece type code. When it is
// clear, bits 13/14/15 are single-bit markers for en-passant,
// castle-kingside and castle-queenside respectively.
type Move uint16

const (
	moveFromShift = 0
	moveFromMask  = 0x3F

	moveToShift = 6
	moveToMask  = 0x3F << moveToShift

	movePromotionFlag = 1 << 12

	movePromoTypeShift = 13
	movePromoTypeMask  = 0x7 << movePromoTypeShift

	moveEnPassantFlag     = 1 << 13
	moveCastleKingsideFlag = 1 << 14
	moveCastleQueensideFlag = 1 << 15
)

// MoveNone is the zero value, never a legal move (from==to==a1).
const MoveNone Move = 0

// MoveType distinguishes the kind of special move a Move encodes.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	CastleKingside
	CastleQueenside
)

// CreateMove encodes an ordinary (non-special) move.
func CreateMove(from, to Square) Move {
	return Move(uint16(from)<<moveFromShift | uint16(to)<<moveToShift)
}

// CreatePromotionMove encodes a promotion to the given piece type
// (Knight, Bishop, Rook or Queen).
func CreatePromotionMove(from, to Square, promo PieceType) Move {
	return Move(uint16(from) | uint16(to)<<moveToShift | movePromotionFlag | uint16(promo)<<movePromoTypeShift)
}

// CreateEnPassantMove encodes an en-passant capture.
func CreateEnPassantMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<moveToShift | moveEnPassantFlag)
}

// CreateCastlingMove encodes a castling move; kingside selects O-O,
// else O-O-O.
func CreateCastlingMove(from, to Square, kingside bool) Move {
	m := Move(uint16(from) | uint16(to)<<moveToShift)
	if kingside {
		m |= moveCastleKingsideFlag
	} else {
		m |= moveCastleQueensideFlag
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// IsPromotion reports whether the promotion flag is set.
func (m Move) IsPromotion() bool {
	return m&movePromotionFlag != 0
}

// PromotionType returns the promoted-to piece type; only meaningful
// when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return PieceType((m & movePromoTypeMask) >> movePromoTypeShift)
}

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return !m.IsPromotion() && m&moveEnPassantFlag != 0
}

// IsCastleKingside reports whether this move castles kingside.
func (m Move) IsCastleKingside() bool {
	return !m.IsPromotion() && m&moveCastleKingsideFlag != 0
}

// IsCastleQueenside reports whether this move castles queenside.
func (m Move) IsCastleQueenside() bool {
	return !m.IsPromotion() && m&moveCastleQueensideFlag != 0
}

// IsCastle reports whether this move castles either side.
func (m Move) IsCastle() bool {
	return m.IsCastleKingside() || m.IsCastleQueenside()
}

// MoveType classifies the move.
func (m Move) MoveType() MoveType {
	switch {
	case m.IsPromotion():
		return Promotion
	case m.IsEnPassant():
		return EnPassant
	case m.IsCastleKingside():
		return CastleKingside
	case m.IsCastleQueenside():
		return CastleQueenside
	default:
		return Normal
	}
}

// IsValid reports whether from and to are both on-board squares and
// distinct - a cheap sanity check, not a legality check.
func (m Move) IsValid() bool {
	return m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// Equals compares the semantically significant bits: from, to, and,
// only when either side is a promotion, the promotion piece type.
// Derived markers (en-passant/castle side) are ignored so a bare
// from/to move from a UCI client matches a generated special move.
func (m Move) Equals(other Move) bool {
	if m.From() != other.From() || m.To() != other.To() {
		return false
	}
	if m.IsPromotion() || other.IsPromotion() {
		return m.IsPromotion() == other.IsPromotion() && m.PromotionType() == other.PromotionType()
	}
	return true
}

var promoChars = [PtLength]string{Knight: "n", Bishop: "b", Rook: "r", Queen: "q"}

// StringUci renders the move in UCI long algebraic form, e.g. "e2e4"
// or "e7e8q".
func (m Move) StringUci() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoChars[m.PromotionType()]
	}
	return s
}

// String is an alias for StringUci.
func (m Move) String() string {
	return m.StringUci()
}
