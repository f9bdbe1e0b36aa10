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
	"github.com/avhar/corvid/internal/config"
	"github.com/avhar/corvid/internal/movegen"
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

// negamax is the recursive alpha-beta search below the root, called
// with window [alpha, beta] and remaining depth. The returned bool
// reports whether the call was aborted by the stop flag or think-time
// deadline; on abort the Value is meaningless and the caller discards
// it along with the whole iteration in progress.
func (s *Search) negamax(p *position.Position, alpha, beta Value, depth int) (Value, bool) {
	s.stats.Nodes++

	if s.stopRequested() {
		return 0, true
	}

	key := p.ZobristKey()
	ttMove := MoveNone

	if s.tt != nil {
		if e := s.tt.Probe(key); e != nil {
			s.stats.TTHits++
			ttMove = e.Move
			if int(e.Depth) >= depth {
				switch e.Bound {
				case BoundExact:
					return e.Score, false
				case BoundLower:
					if e.Score > alpha {
						alpha = e.Score
					}
				case BoundUpper:
					if e.Score < beta {
						beta = e.Score
					}
				}
				if alpha >= beta {
					s.stats.TTCuts++
					return e.Score, false
				}
			}
		}
	}

	var ml movegen.MoveList
	s.gen.GenerateLegal(p, movegen.GenAll, &ml)

	if ml.Len() == 0 {
		if movegen.IsInCheck(p) {
			return MatedIn(depth), false
		}
		return ValueDraw, false
	}

	if depth == 0 {
		if !config.Settings.Search.UseQuiescence {
			return s.eval.Evaluate(p), false
		}
		return s.quiescence(p, alpha, beta)
	}

	origAlpha := alpha
	bestValue := -ValueInfinite
	bestMove := MoveNone

	for _, m := range orderMoves(p, &ml, ttMove) {
		p.MakeMove(m)

		var score Value
		if p.IsRepetition(3) || p.HalfmoveClock() >= 100 {
			score = ValueDraw
		} else {
			v, aborted := s.negamax(p, -beta, -alpha, depth-1)
			if aborted {
				p.UnmakeMove()
				return 0, true
			}
			score = -v
		}
		p.UnmakeMove()

		if score > bestValue {
			bestValue = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.stats.FailHigh++
			s.store(key, depth, beta, BoundLower, bestMove)
			return beta, false
		}
	}

	bound := BoundExact
	if bestValue <= origAlpha {
		s.stats.FailLow++
		bound = BoundUpper
	}
	s.store(key, depth, bestValue, bound, bestMove)

	return bestValue, false
}

// quiescence extends search along capturing lines past depth zero to
// avoid the horizon effect (§4.G). It has no TT lookup of its own -
// only the leaf nodes of negamax hand off to it.
func (s *Search) quiescence(p *position.Position, alpha, beta Value) (Value, bool) {
	s.stats.Nodes++

	if s.stopRequested() {
		return 0, true
	}

	standPat := s.eval.Evaluate(p)
	if standPat >= beta {
		return standPat, false
	}
	if standPat > alpha {
		alpha = standPat
	}

	var ml movegen.MoveList
	s.gen.GenerateLegal(p, movegen.GenCaptures, &ml)

	for _, m := range orderMoves(p, &ml, MoveNone) {
		p.MakeMove(m)
		v, aborted := s.quiescence(p, -beta, -alpha)
		p.UnmakeMove()
		if aborted {
			return 0, true
		}

		score := -v
		if score >= beta {
			return score, false
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha, false
}

// store writes a node's result into the transposition table, a no-op
// when running without one.
func (s *Search) store(key position.Key, depth int, score Value, bound Bound, move Move) {
	if s.tt == nil {
		return
	}
	s.tt.Put(key, uint8(depth), score, bound, move)
}
