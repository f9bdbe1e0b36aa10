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

package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/avhar/corvid/internal/types"
)

func TestUciCommandAnswersUciok(t *testing.T) {
	u := NewUciHandler()
	out := u.Command("uci")
	assert.Contains(t, out, "id name Corvid")
	assert.Contains(t, out, "uciok")
	assert.Contains(t, out, "option name Hash")
}

func TestIsReadyCommand(t *testing.T) {
	u := NewUciHandler()
	assert.Equal(t, "readyok\n", u.Command("isready"))
}

func TestPositionStartposThenMoves(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos moves e2e4 e7e5")
	require.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", u.position.Fen())
}

func TestPositionFenCommand(t *testing.T) {
	u := NewUciHandler()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	u.Command("position fen " + fen)
	assert.Equal(t, fen, u.position.Fen())
}

func TestPositionPanicsOnIllegalMove(t *testing.T) {
	u := NewUciHandler()
	assert.Panics(t, func() {
		u.Command("position startpos moves e2e5")
	})
}

func TestGoMovetimeStartsAndFinishesSearch(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	u.Command("go movetime 50")
	u.search.WaitWhileSearching()
	assert.NotEqual(t, MoveNone, u.search.LastResult().BestMove)
}

func TestSetOptionResizesHash(t *testing.T) {
	u := NewUciHandler()
	u.Command("setoption name Hash value 1")
	assert.Equal(t, "1", uciOptions["Hash"].CurrentValue)
}

func TestSetOptionUnknownIsIgnored(t *testing.T) {
	u := NewUciHandler()
	assert.Equal(t, "", u.Command("setoption name NoSuchOption value 1"))
}
