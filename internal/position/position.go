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

// Package position represents a chess board and its position: bitboards
// plus a mailbox for piece lookup, a history stack for undoing moves,
// and an incrementally maintained Zobrist key.
//
// Create a new instance with NewPosition() to get the standard chess
// start position, or NewPositionFen() to parse an arbitrary FEN string.
package position

import (
	"github.com/avhar/corvid/internal/assert"
	. "github.com/avhar/corvid/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// historyEntry is the state MakeMove must snapshot so UnmakeMove can
// restore it exactly; everything else is recoverable from the move
// itself plus the mutated bitboards.
type historyEntry struct {
	move           Move
	movedPiece     Piece
	capturedPiece  Piece
	castlingRights CastlingRights
	epSquare       Square
	halfmoveClock  int
	zobrist        Key
}

// Position is the mutable board state: bitboards, mailbox, and the
// side-to-move/castling/en-passant/halfmove-clock/Zobrist metadata
// needed to make and unmake moves.
type Position struct {
	pieces    [ColorLength][PtLength]Bitboard
	occupancy [ColorLength]Bitboard
	mailbox   [SqLength]Piece

	sideToMove     Color
	castlingRights CastlingRights
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int
	zobrist        Key

	// history grows with append and is truncated on unmake, giving
	// amortised O(1) push/pop off a single contiguous buffer.
	history []historyEntry
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen parses a FEN string into a Position.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{epSquare: SqNone}
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// ZobristKey returns the current position hash.
func (p *Position) ZobristKey() Key { return p.zobrist }

// PieceOn returns the piece on sq, or PieceNone if empty.
func (p *Position) PieceOn(sq Square) Piece { return p.mailbox[sq] }

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }

// OccupiedBb returns the bitboard of all of color c's pieces.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupancy[c] }

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard { return p.occupancy[White] | p.occupancy[Black] }

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EpSquare returns the en-passant target square, or SqNone.
func (p *Position) EpSquare() Square { return p.epSquare }

// HalfmoveClock returns the number of plies since the last pawn move
// or capture.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current full-move counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.pieces[c][King].Lsb() }

// HistoryLen returns the number of entries on the history stack.
func (p *Position) HistoryLen() int { return len(p.history) }

// LastMove returns the most recently made move, or MoveNone if the
// history stack is empty.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return MoveNone
	}
	return p.history[len(p.history)-1].move
}

// IsRepetition reports whether the current Zobrist key has occurred at
// least n times, the current position counted as the first, so n-1
// matches among reachable earlier positions in the history stack are
// needed. The scan walks backwards ply by ply (the side-to-move key
// folded into each Zobrist hash means a mismatched side never compares
// equal, so no explicit parity stepping is needed) and stops one
// snapshot past the last position whose halfmove clock was zero - the
// boundary snapshot itself is still compared, matching the reference
// repetition-table behaviour of stopping one entry past the start of
// the current reversible run rather than exactly at it.
func (p *Position) IsRepetition(n int) bool {
	count := 1
	pastBoundary := false
	for i := len(p.history) - 1; i >= 0; i-- {
		entry := p.history[i]
		if entry.zobrist == p.zobrist {
			count++
			if count >= n {
				return true
			}
		}
		if pastBoundary {
			break
		}
		if entry.halfmoveClock == 0 {
			pastBoundary = true
		}
	}
	return false
}

func (p *Position) putPiece(pc Piece, sq Square) {
	p.mailbox[sq] = pc
	c, t := pc.ColorOf(), pc.TypeOf()
	p.pieces[c][t].PushSquare(sq)
	p.occupancy[c].PushSquare(sq)
	p.zobrist ^= pieceKey(pc, sq)
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.mailbox[sq]
	if pc == PieceNone {
		return PieceNone
	}
	c, t := pc.ColorOf(), pc.TypeOf()
	p.mailbox[sq] = PieceNone
	p.pieces[c][t].PopSquare(sq)
	p.occupancy[c].PopSquare(sq)
	p.zobrist ^= pieceKey(pc, sq)
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

// placePiece/unplacePiece mutate bitboards and mailbox without
// touching the Zobrist key, since UnmakeMove restores the key wholesale
// from the history snapshot rather than re-deriving it incrementally.
func (p *Position) placePiece(pc Piece, sq Square) {
	if pc == PieceNone {
		return
	}
	c, t := pc.ColorOf(), pc.TypeOf()
	p.mailbox[sq] = pc
	p.pieces[c][t].PushSquare(sq)
	p.occupancy[c].PushSquare(sq)
}

func (p *Position) unplacePiece(sq Square) {
	pc := p.mailbox[sq]
	if pc == PieceNone {
		return
	}
	c, t := pc.ColorOf(), pc.TypeOf()
	p.mailbox[sq] = PieceNone
	p.pieces[c][t].PopSquare(sq)
	p.occupancy[c].PopSquare(sq)
}

// IsAttacked reports whether sq is attacked by any piece of color by,
// given the current board occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()

	if GetPawnAttacks(by.Flip(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.pieces[by][King] != 0 {
		return true
	}
	bishopsQueens := p.pieces[by][Bishop] | p.pieces[by][Queen]
	if GetAttacksBb(Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieces[by][Rook] | p.pieces[by][Queen]
	if GetAttacksBb(Rook, sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// GivesCheck reports whether making m would leave the opponent's king
// attacked.
func (p *Position) GivesCheck(m Move) bool {
	p.MakeMove(m)
	check := p.InCheck()
	p.UnmakeMove()
	return check
}

// epCaptureSquare returns the square of the pawn captured by an
// en-passant move landing on to, played by the side currently on move.
func (p *Position) epCaptureSquare(to Square) Square {
	if p.sideToMove == White {
		return to.To(South)
	}
	return to.To(North)
}

// MakeMove applies m to the position: it snapshots the irrecoverable
// state, removes any captured piece, relocates the moving piece (and
// the rook on castling moves, and promotes on promotion moves),
// updates castling rights and the en-passant square, flips the side to
// move, and incrementally maintains the Zobrist key at each step so
// MakeMove followed by UnmakeMove is the identity.
func (p *Position) MakeMove(m Move) {
	from, to := m.From(), m.To()
	movedPiece := p.mailbox[from]

	if assert.DEBUG {
		assert.Assert(movedPiece != PieceNone, "MakeMove: no piece on %s for move %s", from.String(), m.StringUci())
		assert.Assert(movedPiece.ColorOf() == p.sideToMove, "MakeMove: piece on %s does not belong to side to move", from.String())
		assert.Assert(p.mailbox[to] == PieceNone || p.mailbox[to].TypeOf() != King, "MakeMove: target %s holds a king", to.String())
	}

	entry := historyEntry{
		move:           m,
		movedPiece:     movedPiece,
		castlingRights: p.castlingRights,
		epSquare:       p.epSquare,
		halfmoveClock:  p.halfmoveClock,
		zobrist:        p.zobrist,
	}

	if p.epSquare != SqNone {
		p.zobrist ^= epKey(p.epSquare)
	}
	p.zobrist ^= castlingKey(p.castlingRights)

	isPawnMove := movedPiece.TypeOf() == Pawn
	isCapture := m.IsEnPassant() || p.mailbox[to] != PieceNone

	if m.IsEnPassant() {
		capSq := p.epCaptureSquare(to)
		entry.capturedPiece = p.removePiece(capSq)
	} else if p.mailbox[to] != PieceNone {
		entry.capturedPiece = p.removePiece(to)
	}

	p.movePiece(from, to)

	if m.IsPromotion() {
		p.removePiece(to)
		p.putPiece(MakePiece(movedPiece.ColorOf(), m.PromotionType()), to)
	}

	if m.IsCastle() {
		rookFrom, rookTo := KingCastleRookSquares(to)
		p.movePiece(rookFrom, rookTo)
	}

	if isPawnMove || isCapture {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.castlingRights = p.castlingRights.Remove(RightsLostByMove(from, to))

	p.epSquare = SqNone
	if isPawnMove && SquareDistance(from, to) == 2 {
		if movedPiece.ColorOf() == White {
			p.epSquare = from.To(North)
		} else {
			p.epSquare = from.To(South)
		}
	}

	p.zobrist ^= castlingKey(p.castlingRights)
	if p.epSquare != SqNone {
		p.zobrist ^= epKey(p.epSquare)
	}

	if p.sideToMove == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.zobrist ^= sideToMoveKey

	p.history = append(p.history, entry)
}

// UnmakeMove reverts the most recent MakeMove call, restoring the
// board to exactly the state it had beforehand.
func (p *Position) UnmakeMove() {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 0, "UnmakeMove: history stack empty")
	}

	n := len(p.history) - 1
	entry := p.history[n]
	p.history = p.history[:n]

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullmoveNumber--
	}

	m := entry.move
	from, to := m.From(), m.To()

	if m.IsCastle() {
		rookFrom, rookTo := KingCastleRookSquares(to)
		rook := p.mailbox[rookTo]
		p.unplacePiece(rookTo)
		p.placePiece(rook, rookFrom)
	}

	if m.IsPromotion() {
		p.unplacePiece(to)
		p.placePiece(entry.movedPiece, from)
	} else {
		moved := p.mailbox[to]
		p.unplacePiece(to)
		p.placePiece(moved, from)
	}

	if m.IsEnPassant() {
		capSq := p.epCaptureSquare(to)
		p.placePiece(entry.capturedPiece, capSq)
	} else if entry.capturedPiece != PieceNone {
		p.placePiece(entry.capturedPiece, to)
	}

	p.castlingRights = entry.castlingRights
	p.epSquare = entry.epSquare
	p.halfmoveClock = entry.halfmoveClock
	p.zobrist = entry.zobrist
}
