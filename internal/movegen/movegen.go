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

// Package movegen generates pseudo-legal and legal moves for a
// position using bitboards: pawn pushes/captures/en-passant/
// promotions, precomputed knight/king attack tables, magic-bitboard
// sliding attacks for bishops/rooks/queens, and castling.
package movegen

import (
	"github.com/op/go-logging"

	myLogging "github.com/avhar/corvid/internal/logging"
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

var log *logging.Logger

// Mode selects which subset of pseudo-legal moves to generate.
type Mode int

// Generation modes. GenAll is the union of captures and non-captures.
const (
	GenCaptures Mode = 1 << iota
	GenQuiet
	GenAll = GenCaptures | GenQuiet
)

// Generator produces moves for a position. It is stateless across
// calls - callers own the MoveList they pass in, so a single Generator
// can be reused across an entire search without per-node allocation.
type Generator struct{}

// NewGenerator returns a ready-to-use move generator.
func NewGenerator() *Generator {
	if log == nil {
		log = myLogging.GetLog("movegen")
	}
	return &Generator{}
}

// GeneratePseudoLegal appends every pseudo-legal move matching mode to
// ml. Pseudo-legal moves respect piece movement rules and own-piece
// occupancy but do not check whether the mover's king ends up safe.
func (g *Generator) GeneratePseudoLegal(p *position.Position, mode Mode, ml *MoveList) {
	g.generatePawnMoves(p, mode, ml)
	g.generateKnightMoves(p, mode, ml)
	g.generateSliderMoves(p, Bishop, mode, ml)
	g.generateSliderMoves(p, Rook, mode, ml)
	g.generateSliderMoves(p, Queen, mode, ml)
	g.generateKingMoves(p, mode, ml)
	if mode&GenQuiet != 0 {
		g.generateCastling(p, ml)
	}
}

// GenerateLegal appends every legal move matching mode to ml, filtering
// the pseudo-legal set by playing each move and testing whether the
// mover's own king is left in check.
func (g *Generator) GenerateLegal(p *position.Position, mode Mode, ml *MoveList) {
	var pseudo MoveList
	g.GeneratePseudoLegal(p, mode, &pseudo)
	mover := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.MakeMove(m)
		if !p.IsAttacked(p.KingSquare(mover), mover.Flip()) {
			ml.Push(m)
		}
		p.UnmakeMove()
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without keeping the full list around - used to distinguish
// checkmate/stalemate from a position with moves left.
func (g *Generator) HasLegalMove(p *position.Position) bool {
	var pseudo MoveList
	g.GeneratePseudoLegal(p, GenAll, &pseudo)
	mover := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.MakeMove(m)
		safe := !p.IsAttacked(p.KingSquare(mover), mover.Flip())
		p.UnmakeMove()
		if safe {
			return true
		}
	}
	return false
}

// IsInCheck reports whether the side to move's king is attacked.
func IsInCheck(p *position.Position) bool {
	return p.InCheck()
}

func (g *Generator) pushPromotions(ml *MoveList, from, to Square) {
	ml.Push(CreatePromotionMove(from, to, Queen))
	ml.Push(CreatePromotionMove(from, to, Knight))
	ml.Push(CreatePromotionMove(from, to, Rook))
	ml.Push(CreatePromotionMove(from, to, Bishop))
}

func (g *Generator) generatePawnMoves(p *position.Position, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	occAll := p.OccupiedAll()
	oppPieces := p.OccupiedBb(them)
	push := us.MoveDirection()
	promRank := us.PromotionRank().Bb()

	if mode&GenCaptures != 0 {
		for _, dir := range []Direction{West, East} {
			captureDir := push + dir
			targets := ShiftBitboard(myPawns, captureDir) & oppPieces
			promTargets := targets & promRank
			plain := targets &^ promRank

			t := promTargets
			for t != 0 {
				to := t.PopLsb()
				from := to.To(-captureDir)
				g.pushPromotions(ml, from, to)
			}
			t = plain
			for t != 0 {
				to := t.PopLsb()
				from := to.To(-captureDir)
				ml.Push(CreateMove(from, to))
			}
		}

		if ep := p.EpSquare(); ep != SqNone {
			for _, dir := range []Direction{West, East} {
				from := ep.To(-(push + dir))
				if from != SqNone && myPawns.Has(from) {
					ml.Push(CreateEnPassantMove(from, ep))
				}
			}
		}
	}

	if mode&GenQuiet != 0 {
		singlePush := ShiftBitboard(myPawns, push) &^ occAll
		doublePush := ShiftBitboard(singlePush&us.PawnDoublePushRank().Bb(), push) &^ occAll

		promPush := singlePush & promRank
		plainPush := singlePush &^ promRank

		t := promPush
		for t != 0 {
			to := t.PopLsb()
			from := to.To(-push)
			g.pushPromotions(ml, from, to)
		}
		t = plainPush
		for t != 0 {
			to := t.PopLsb()
			from := to.To(-push)
			ml.Push(CreateMove(from, to))
		}
		t = doublePush
		for t != 0 {
			to := t.PopLsb()
			from := to.To(-push).To(-push)
			ml.Push(CreateMove(from, to))
		}
	}
}

func (g *Generator) generateKnightMoves(p *position.Position, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	g.generatePseudoAttackMoves(p, p.PiecesBb(us, Knight), Knight, mode, ml)
}

func (g *Generator) generateKingMoves(p *position.Position, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	g.generatePseudoAttackMoves(p, p.PiecesBb(us, King), King, mode, ml)
}

func (g *Generator) generatePseudoAttackMoves(p *position.Position, pieces Bitboard, pt PieceType, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	own := p.OccupiedBb(us)
	opp := p.OccupiedBb(us.Flip())

	for pieces != 0 {
		from := pieces.PopLsb()
		attacks := GetPseudoAttacks(pt, from) &^ own

		if mode&GenCaptures != 0 {
			captures := attacks & opp
			for captures != 0 {
				ml.Push(CreateMove(from, captures.PopLsb()))
			}
		}
		if mode&GenQuiet != 0 {
			quiet := attacks &^ opp
			for quiet != 0 {
				ml.Push(CreateMove(from, quiet.PopLsb()))
			}
		}
	}
}

func (g *Generator) generateSliderMoves(p *position.Position, pt PieceType, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	pieces := p.PiecesBb(us, pt)
	own := p.OccupiedBb(us)
	opp := p.OccupiedBb(us.Flip())
	occAll := p.OccupiedAll()

	for pieces != 0 {
		from := pieces.PopLsb()
		attacks := GetAttacksBb(pt, from, occAll) &^ own

		if mode&GenCaptures != 0 {
			captures := attacks & opp
			for captures != 0 {
				ml.Push(CreateMove(from, captures.PopLsb()))
			}
		}
		if mode&GenQuiet != 0 {
			quiet := attacks &^ opp
			for quiet != 0 {
				ml.Push(CreateMove(from, quiet.PopLsb()))
			}
		}
	}
}

// generateCastling emits a castling move only when its right is still
// held, the squares between king and rook are empty, and every square
// the king crosses (start, pass-through, destination) is unattacked.
func (g *Generator) generateCastling(p *position.Position, ml *MoveList) {
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occ := p.OccupiedAll()
	us := p.SideToMove()
	them := us.Flip()

	tryCastle := func(right CastlingRights, kingFrom, rookFrom, kingTo, kingPass Square) {
		if !cr.Has(right) {
			return
		}
		if Intermediate(kingFrom, rookFrom)&occ != 0 {
			return
		}
		if p.IsAttacked(kingFrom, them) || p.IsAttacked(kingPass, them) || p.IsAttacked(kingTo, them) {
			return
		}
		ml.Push(CreateCastlingMove(kingFrom, kingTo, kingTo == SqG1 || kingTo == SqG8))
	}

	if us == White {
		tryCastle(CastlingWhiteOO, SqE1, SqH1, SqG1, SqF1)
		tryCastle(CastlingWhiteOOO, SqE1, SqA1, SqC1, SqD1)
	} else {
		tryCastle(CastlingBlackOO, SqE8, SqH8, SqG8, SqF8)
		tryCastle(CastlingBlackOOO, SqE8, SqA8, SqC8, SqD8)
	}
}
