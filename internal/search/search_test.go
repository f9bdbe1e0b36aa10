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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avhar/corvid/internal/movegen"
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

// recordingReporter captures info/bestmove lines instead of printing
// them, so tests can assert on what a search reported.
type recordingReporter struct {
	depths    []int
	scores    []Value
	bestMove  Move
	gotResult bool
}

func (r *recordingReporter) SendInfo(depth int, score Value, nodes uint64, elapsed time.Duration) {
	r.depths = append(r.depths, depth)
	r.scores = append(r.scores, score)
}

func (r *recordingReporter) SendBestMove(m Move) {
	r.bestMove = m
	r.gotResult = true
}

func TestSearchFromStartposReturnsLegalMove(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	require.NoError(t, err)

	rep := &recordingReporter{}
	s := NewSearch()
	s.SetReporter(rep)

	s.StartSearch(*p, Limits{ThinkTime: 100 * time.Millisecond})
	s.WaitWhileSearching()

	require.True(t, rep.gotResult)
	assert.NotEqual(t, MoveNone, rep.bestMove)

	legal := legalMovesFrom(t, p)
	assert.Contains(t, legal, rep.bestMove.StringUci())
}

func TestSearchFindsMateInOne(t *testing.T) {
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	rep := &recordingReporter{}
	s := NewSearch()
	s.SetReporter(rep)

	s.StartSearch(*p, Limits{Depth: 3})
	s.WaitWhileSearching()

	require.True(t, rep.gotResult)
	assert.Equal(t, "a1a8", rep.bestMove.StringUci())
	assert.True(t, s.LastResult().BestValue.IsMateValue())
}

func TestIterativeDeepeningDetectsStalemate(t *testing.T) {
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	result := s.iterativeDeepening(p, 1)

	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, ValueDraw, result.BestValue)
	assert.EqualValues(t, 1, s.stats.Stalemates)
}

func TestIterativeDeepeningDetectsCheckmate(t *testing.T) {
	p, err := position.NewPositionFen("6k1/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	result := s.iterativeDeepening(p, 1)

	assert.Equal(t, MoveNone, result.BestMove)
	assert.True(t, result.BestValue.IsMateValue())
	assert.EqualValues(t, 1, s.stats.Checkmates)
}

func TestIterativeDeepeningStopsOnThreefoldRepetition(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
			m := findLegalMove(t, p, uci)
			p.MakeMove(m)
		}
	}

	s := NewSearch()
	result := s.iterativeDeepening(p, 1)
	assert.Equal(t, ValueDraw, result.BestValue)
}

func legalMovesFrom(t *testing.T, p *position.Position) []string {
	t.Helper()
	gen := movegen.NewGenerator()
	var ml movegen.MoveList
	gen.GenerateLegal(p, movegen.GenAll, &ml)
	out := make([]string, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		out[i] = ml.At(i).StringUci()
	}
	return out
}

func findLegalMove(t *testing.T, p *position.Position, uci string) Move {
	t.Helper()
	gen := movegen.NewGenerator()
	var ml movegen.MoveList
	gen.GenerateLegal(p, movegen.GenAll, &ml)
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).StringUci() == uci {
			return ml.At(i)
		}
	}
	require.FailNow(t, "move not found: "+uci)
	return MoveNone
}
