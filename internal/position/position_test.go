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

package position

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/avhar/corvid/internal/types"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EpSquare())
	assert.Equal(t, WhiteRook, p.PieceOn(SqA1))
	assert.Equal(t, WhiteKing, p.PieceOn(SqE1))
	assert.Equal(t, BlackKing, p.PieceOn(SqE8))
	assert.Equal(t, PieceNone, p.PieceOn(SqE4))
	assert.Equal(t, StartFen, p.Fen())
}

func TestNewPositionFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestNewPositionFenInvalid(t *testing.T) {
	_, err := NewPositionFen("not a fen")
	assert.Error(t, err)
	var fenErr *FenParseError
	assert.ErrorAs(t, err, &fenErr)
}

func TestMakeUnmakeRoundTripSimple(t *testing.T) {
	p := NewPosition()
	before := p.Fen()
	beforeKey := p.ZobristKey()

	m := CreateMove(SqE2, SqE4)
	p.MakeMove(m)
	assert.NotEqual(t, before, p.Fen())
	assert.Equal(t, Black, p.SideToMove())

	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, beforeKey, p.ZobristKey())
	assert.Equal(t, 0, p.HistoryLen())
}

func TestMakeMoveSetsEpSquare(t *testing.T) {
	p := NewPosition()
	p.MakeMove(CreateMove(SqE2, SqE4))
	assert.Equal(t, SqE3, p.EpSquare())
	p.MakeMove(CreateMove(SqB8, SqC6))
	assert.Equal(t, SqNone, p.EpSquare())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)

	before := p.Fen()
	m := CreateEnPassantMove(SqE5, SqD6)
	p.MakeMove(m)

	assert.Equal(t, PieceNone, p.PieceOn(SqD5))
	assert.Equal(t, WhitePawn, p.PieceOn(SqD6))
	assert.Equal(t, PieceNone, p.PieceOn(SqE5))

	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestCastlingKingside(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	before := p.Fen()
	p.MakeMove(CreateCastlingMove(SqE1, SqG1, true))

	assert.Equal(t, WhiteKing, p.PieceOn(SqG1))
	assert.Equal(t, WhiteRook, p.PieceOn(SqF1))
	assert.Equal(t, PieceNone, p.PieceOn(SqE1))
	assert.Equal(t, PieceNone, p.PieceOn(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, p.CastlingRights().Has(CastlingBlackOO))

	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestCastlingRightsLostByRookCapture(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.Fen()

	p.MakeMove(CreateMove(SqG1, SqH8))
	assert.False(t, p.CastlingRights().Has(CastlingBlackOO))

	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestPromotionCaptureRoundTrip(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1P6/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.Fen()

	p.MakeMove(CreatePromotionMove(SqB7, SqA8, Queen))
	assert.Equal(t, WhiteQueen, p.PieceOn(SqA8))
	assert.Equal(t, PieceNone, p.PieceOn(SqB7))
	assert.False(t, p.CastlingRights().Has(CastlingBlackOOO))

	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestHalfmoveClockIncrementsOnQuietMoveAndResetsOnCapture(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/4n3/8/4K2R w K - 12 1")
	assert.NoError(t, err)

	p.MakeMove(CreateMove(SqH1, SqH3))
	assert.Equal(t, 13, p.HalfmoveClock())

	p.MakeMove(CreateMove(SqE3, SqH3))
	assert.Equal(t, 0, p.HalfmoveClock())
}

func TestIsAttackedKnight(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/3n4/8/8/4K3 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsAttacked(SqC2, Black))
	assert.False(t, p.IsAttacked(SqC2, White))
}

func TestInCheck(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.InCheck())
}

func TestIsRepetition(t *testing.T) {
	p := NewPosition()
	moves := []Move{
		CreateMove(SqG1, SqF3), CreateMove(SqG8, SqF6),
		CreateMove(SqF3, SqG1), CreateMove(SqF6, SqG8),
		CreateMove(SqG1, SqF3), CreateMove(SqG8, SqF6),
		CreateMove(SqF3, SqG1), CreateMove(SqF6, SqG8),
	}
	for _, m := range moves {
		p.MakeMove(m)
	}
	assert.True(t, p.IsRepetition(3))
}
