//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import (
	"math"
	"sort"

	"github.com/avhar/corvid/internal/movegen"
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

// ttMoveScore is the score assigned to the transposition-table move,
// guaranteeing it sorts before any generated move.
const ttMoveScore = int64(math.MaxInt32)

type scoredMove struct {
	move  Move
	score int64
}

// moveScore implements MVV-LVA ordering: the TT move outranks
// everything, captures score 10*weight(captured)-weight(mover),
// promotions add the promoted piece's weight on top, everything else
// scores zero.
func moveScore(p *position.Position, m, ttMove Move) int64 {
	if ttMove != MoveNone && m.Equals(ttMove) {
		return ttMoveScore
	}

	var score int64
	mover := p.PieceOn(m.From()).TypeOf()
	switch {
	case m.IsEnPassant():
		score = 10*int64(Pawn.Value()) - int64(mover.Value())
	default:
		if captured := p.PieceOn(m.To()); captured != PieceNone {
			score = 10*int64(captured.TypeOf().Value()) - int64(mover.Value())
		}
	}
	if m.IsPromotion() {
		score += int64(m.PromotionType().Value())
	}
	return score
}

// orderMoves copies ml into a slice sorted descending by moveScore.
// The sort is stable, so moves of equal score (typically quiets) keep
// the order move generation produced them in.
func orderMoves(p *position.Position, ml *movegen.MoveList, ttMove Move) []Move {
	n := ml.Len()
	scored := make([]scoredMove, n)
	for i := 0; i < n; i++ {
		m := ml.At(i)
		scored[i] = scoredMove{move: m, score: moveScore(p, m, ttMove)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	ordered := make([]Move, n)
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}
