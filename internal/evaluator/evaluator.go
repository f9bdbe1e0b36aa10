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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
// Evaluation is pure: it never mutates the position and never reads
// the history stack, only the current bitboards.
package evaluator

import (
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

// startMaterial is the total material weight, both sides, kings
// excluded, present in the starting position - the denominator of the
// endgame-weight ratio.
const startMaterial = 2 * (8*100 + 2*300 + 2*330 + 2*500 + 900)

// Evaluator scores positions by material plus tapered piece-square
// value. It carries no per-position state, so a single instance is
// safe to share across search threads.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the position's score in centipawns, positive when
// the side to move stands better.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	material, positional, totalMaterial := e.materialAndPositional(p)

	endgameWeight := float64(startMaterial-totalMaterial) / float64(startMaterial)
	if endgameWeight < 0 {
		endgameWeight = 0
	} else if endgameWeight > 1 {
		endgameWeight = 1
	}

	score := material + positional.ValueFromScore(1-endgameWeight)

	if p.SideToMove() == Black {
		score = -score
	}
	return score
}

// materialAndPositional walks every piece once, accumulating White-
// minus-Black material and positional (mg/eg) sums, plus the total
// non-king material on the board used for the endgame-weight ratio.
func (e *Evaluator) materialAndPositional(p *position.Position) (Value, Score, Value) {
	var material Value
	var positional Score
	var totalMaterial Value

	for pt := Pawn; pt <= Queen; pt++ {
		weight := pt.Value()

		white := p.PiecesBb(White, pt)
		for white != 0 {
			sq := white.PopLsb()
			material += weight
			totalMaterial += weight
			positional.Add(Score{MidGameValue: int(psqtMg(White, pt, sq)), EndGameValue: int(psqtEg(White, pt, sq))})
		}

		black := p.PiecesBb(Black, pt)
		for black != 0 {
			sq := black.PopLsb()
			material -= weight
			totalMaterial += weight
			positional.Sub(Score{MidGameValue: int(psqtMg(Black, pt, sq)), EndGameValue: int(psqtEg(Black, pt, sq))})
		}
	}

	whiteKing := p.KingSquare(White)
	blackKing := p.KingSquare(Black)
	positional.Add(Score{MidGameValue: int(psqtMg(White, King, whiteKing)), EndGameValue: int(psqtEg(White, King, whiteKing))})
	positional.Sub(Score{MidGameValue: int(psqtMg(Black, King, blackKing)), EndGameValue: int(psqtEg(Black, King, blackKing))})

	return material, positional, totalMaterial
}
