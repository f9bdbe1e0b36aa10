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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, bit i set means square i is a
// member. This is the core data structure for piece sets, occupancy,
// and precomputed attack/mask tables.
type Bitboard uint64

// Bitboard constants.
const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	CenterSquares Bitboard = (FileD_Bb | FileE_Bb) & (Rank4_Bb | Rank5_Bb)
)

var fileBb [8]Bitboard
var rankBb [8]Bitboard

// pseudoAttacks[pt][sq] holds the attack bitboard for a non-sliding
// piece type (King, Knight) on an empty board, and for Bishop/Rook/
// Queen the attack set on an empty board. Move generation reads only
// the King and Knight entries; sliders go through the magic tables.
var pseudoAttacks [PtLength][SqLength]Bitboard
var pawnAttacks [ColorLength][SqLength]Bitboard

var rays [OrientationLength][SqLength]Bitboard
var intermediateBb [SqLength][SqLength]Bitboard
var squareDistance [SqLength][SqLength]int
var passedPawnMask [ColorLength][SqLength]Bitboard
var castleMask [SqLength]CastlingRights

var rookTable []Bitboard
var bishopTable []Bitboard
var rookMagics [SqLength]Magic
var bishopMagics [SqLength]Magic

// PushSquare sets the bit for sq.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// PopSquare clears the bit for sq.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone
// if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone
// if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		b.PopSquare(sq)
	}
	return sq
}

// String renders the bitboard as an 8x8 grid.
func (b Bitboard) String() string {
	return b.StringBoard()
}

// StringBoard renders the bitboard as an 8x8 grid, rank 8 on top,
// matching how FEN boards are usually printed for debugging.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			sq := SquareOf(File(f), Rank(r))
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// CenterDistance returns the Chebyshev distance of sq from the
// nearest of the four center squares, used by king-safety/PSQT style
// heuristics.
func CenterDistance(sq Square) int {
	best := 8
	for c := CenterSquares; c != 0; {
		csq := c.PopLsb()
		if d := SquareDistance(sq, csq); d < best {
			best = d
		}
	}
	return best
}

// Ray returns the full ray bitboard from an empty board in the given
// orientation starting at sq, not including sq itself.
func Ray(o Orientation, sq Square) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2 if
// they lie on a common rank, file, or diagonal; otherwise BbZero.
// Used for castling-path occupancy checks and pin detection.
func Intermediate(sq1, sq2 Square) Bitboard {
	return intermediateBb[sq1][sq2]
}

// PassedPawnMask returns the file+adjacent-file span in front of sq
// for a pawn of color c, used to test for passed pawns.
func PassedPawnMask(c Color, sq Square) Bitboard {
	return passedPawnMask[c][sq]
}

// GetCastlingRights returns the castling right(s) forfeited when a
// piece leaves (or is captured on) sq.
func GetCastlingRights(sq Square) CastlingRights {
	return castleMask[sq]
}

// GetPseudoAttacks returns the attack set for a non-sliding piece
// type (King or Knight) on an empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetAttacksBb returns the attack bitboard for a piece type on sq
// given the current board occupancy. Sliding pieces (Bishop, Rook,
// Queen) consult the magic bitboard tables; King and Knight use the
// precomputed pseudo-attack tables.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		return GetAttacksBb(Bishop, sq, occupied) | GetAttacksBb(Rook, sq, occupied)
	default:
		return pseudoAttacks[pt][sq]
	}
}

// ShiftBitboard shifts every bit of b one square in direction d,
// clearing bits that would otherwise wrap around the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH_Bb) << 1
	case West:
		return (b &^ FileA_Bb) >> 1
	case Northeast:
		return (b &^ FileH_Bb) << 9
	case Northwest:
		return (b &^ FileA_Bb) << 7
	case Southeast:
		return (b &^ FileH_Bb) >> 7
	case Southwest:
		return (b &^ FileA_Bb) >> 9
	default:
		return b
	}
}

func rankFileBbPreCompute() {
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileA_Bb << uint(f)
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = Rank1_Bb << (8 * uint(r))
	}
}

func squareDistancePreCompute() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			fd := FileDistance(s1, s2)
			rd := RankDistance(s1, s2)
			if fd > rd {
				squareDistance[s1][s2] = fd
			} else {
				squareDistance[s1][s2] = rd
			}
		}
	}
}

func pseudoAttacksPreCompute() {
	knightDeltas := [8]Direction{
		North + North + East, North + North + West,
		South + South + East, South + South + West,
		East + East + North, East + East + South,
		West + West + North, West + West + South,
	}
	kingDeltas := [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

	for sq := SqA1; sq <= SqH8; sq++ {
		var king, knight Bitboard
		for _, d := range kingDeltas {
			t := sq.To(d)
			if t.IsValid() && SquareDistance(sq, t) == 1 {
				king.PushSquare(t)
			}
		}
		for _, d := range knightDeltas {
			t := sq.To(d)
			if t.IsValid() && SquareDistance(sq, t) <= 2 {
				knight.PushSquare(t)
			}
		}
		pseudoAttacks[King][sq] = king
		pseudoAttacks[Knight][sq] = knight
	}
}

func pawnAttacksPreCompute() {
	whiteDeltas := [2]Direction{Northeast, Northwest}
	blackDeltas := [2]Direction{Southeast, Southwest}
	for sq := SqA1; sq <= SqH8; sq++ {
		var w, b Bitboard
		for _, d := range whiteDeltas {
			t := sq.To(d)
			if t.IsValid() && SquareDistance(sq, t) == 1 {
				w.PushSquare(t)
			}
		}
		for _, d := range blackDeltas {
			t := sq.To(d)
			if t.IsValid() && SquareDistance(sq, t) == 1 {
				b.PushSquare(t)
			}
		}
		pawnAttacks[White][sq] = w
		pawnAttacks[Black][sq] = b
	}
}

func raysPreCompute() {
	for o := N; o < OrientationLength; o++ {
		d := o.Direction()
		for sq := SqA1; sq <= SqH8; sq++ {
			var r Bitboard
			s := sq
			for {
				t := s.To(d)
				if !t.IsValid() || SquareDistance(s, t) != 1 {
					break
				}
				r.PushSquare(t)
				s = t
			}
			rays[o][sq] = r
		}
	}
}

func intermediatePreCompute() {
	dirs := [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for _, d := range dirs {
			var between Bitboard
			s := sq1
			for {
				t := s.To(d)
				if !t.IsValid() || SquareDistance(s, t) != 1 {
					break
				}
				intermediateBb[sq1][t] = between
				between.PushSquare(t)
				s = t
			}
		}
	}
}

func maskPassedPawnsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := sq.FileOf()
		var files Bitboard
		files |= f.Bb()
		if f > FileA {
			files |= (f - 1).Bb()
		}
		if f < FileH {
			files |= (f + 1).Bb()
		}

		var ahead Bitboard
		for r := int(sq.RankOf()) + 1; r <= int(Rank8); r++ {
			ahead |= rankBb[r]
		}
		passedPawnMask[White][sq] = files & ahead

		ahead = BbZero
		for r := int(sq.RankOf()) - 1; r >= int(Rank1); r-- {
			ahead |= rankBb[r]
		}
		passedPawnMask[Black][sq] = files & ahead
	}
}

func castleMasksPreCompute() {
	castleMask[SqE1] = CastlingWhiteOO | CastlingWhiteOOO
	castleMask[SqA1] = CastlingWhiteOOO
	castleMask[SqH1] = CastlingWhiteOO
	castleMask[SqE8] = CastlingBlackOO | CastlingBlackOOO
	castleMask[SqA8] = CastlingBlackOOO
	castleMask[SqH8] = CastlingBlackOO
}

func initMagicBitboards() {
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)

	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Bishop][sq] = GetAttacksBb(Bishop, sq, BbZero)
		pseudoAttacks[Rook][sq] = GetAttacksBb(Rook, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

func initBb() {
	rankFileBbPreCompute()
	squareDistancePreCompute()
	pseudoAttacksPreCompute()
	pawnAttacksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	maskPassedPawnsPreCompute()
	castleMasksPreCompute()
	initMagicBitboards()
}

func init() {
	initBb()
}
