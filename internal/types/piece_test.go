package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	assert.Equal(t, WhiteKnight, MakePiece(White, Knight))
	assert.Equal(t, BlackQueen, MakePiece(Black, Queen))
}

func TestPieceTypeOfColorOf(t *testing.T) {
	assert.Equal(t, Knight, WhiteKnight.TypeOf())
	assert.Equal(t, White, WhiteKnight.ColorOf())
	assert.Equal(t, Queen, BlackQueen.TypeOf())
	assert.Equal(t, Black, BlackQueen.ColorOf())
}

func TestPieceValueOf(t *testing.T) {
	assert.Equal(t, Value(100), WhitePawn.ValueOf())
	assert.Equal(t, Value(300), WhiteKnight.ValueOf())
	assert.Equal(t, Value(330), WhiteBishop.ValueOf())
	assert.Equal(t, Value(500), WhiteRook.ValueOf())
	assert.Equal(t, Value(900), WhiteQueen.ValueOf())
	assert.Equal(t, Value(0), WhiteKing.ValueOf())
	assert.Equal(t, WhiteKnight.ValueOf(), BlackKnight.ValueOf())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, WhiteKing, PieceFromChar("K"))
	assert.Equal(t, BlackPawn, PieceFromChar("p"))
	assert.Equal(t, PieceNone, PieceFromChar("-"))
	assert.Equal(t, PieceNone, PieceFromChar(""))
	assert.Equal(t, PieceNone, PieceFromChar("xx"))
}

func TestPieceChar(t *testing.T) {
	assert.Equal(t, "K", WhiteKing.Char())
	assert.Equal(t, "q", BlackQueen.Char())
}
