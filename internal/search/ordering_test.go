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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avhar/corvid/internal/movegen"
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)

	gen := movegen.NewGenerator()
	var ml movegen.MoveList
	gen.GenerateLegal(p, movegen.GenAll, &ml)
	require.Greater(t, ml.Len(), 1)

	ttMove := ml.At(ml.Len() - 1)
	ordered := orderMoves(p, &ml, ttMove)
	assert.True(t, ordered[0].Equals(ttMove))
}

func TestOrderMovesRanksCapturesAboveQuiets(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	gen := movegen.NewGenerator()
	var ml movegen.MoveList
	gen.GenerateLegal(p, movegen.GenAll, &ml)

	ordered := orderMoves(p, &ml, MoveNone)
	require.NotEmpty(t, ordered)

	capture := ordered[0]
	assert.NotEqual(t, PieceNone, p.PieceOn(capture.To()))
}

func TestMoveScorePromotionAddsBonus(t *testing.T) {
	p, err := position.NewPositionFen("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	gen := movegen.NewGenerator()
	var ml movegen.MoveList
	gen.GenerateLegal(p, movegen.GenAll, &ml)

	var queenPromo, knightPromo Move
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !m.IsPromotion() {
			continue
		}
		switch m.PromotionType() {
		case Queen:
			queenPromo = m
		case Knight:
			knightPromo = m
		}
	}
	require.NotEqual(t, MoveNone, queenPromo)
	require.NotEqual(t, MoveNone, knightPromo)

	assert.Greater(t, moveScore(p, queenPromo, MoveNone), moveScore(p, knightPromo, MoveNone))
}
