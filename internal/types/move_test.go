package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.MoveType())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestCreatePromotionMove(t *testing.T) {
	m := CreatePromotionMove(SqE7, SqE8, Queen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.StringUci())
}

func TestCreateEnPassantMove(t *testing.T) {
	m := CreateEnPassantMove(SqE5, SqD6)
	assert.True(t, m.IsEnPassant())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, EnPassant, m.MoveType())
}

func TestCreateCastlingMove(t *testing.T) {
	ks := CreateCastlingMove(SqE1, SqG1, true)
	assert.True(t, ks.IsCastleKingside())
	assert.Equal(t, CastleKingside, ks.MoveType())

	qs := CreateCastlingMove(SqE1, SqC1, false)
	assert.True(t, qs.IsCastleQueenside())
	assert.Equal(t, CastleQueenside, qs.MoveType())
}

func TestMoveEquals(t *testing.T) {
	a := CreateCastlingMove(SqE1, SqG1, true)
	b := CreateMove(SqE1, SqG1)
	assert.True(t, a.Equals(b))

	p1 := CreatePromotionMove(SqE7, SqE8, Queen)
	p2 := CreatePromotionMove(SqE7, SqE8, Rook)
	assert.False(t, p1.Equals(p2))

	assert.False(t, a.Equals(CreateMove(SqE1, SqF1)))
}
