package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPop(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardPopCountLsbMsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	assert.Equal(t, 2, b.PopCount())
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqB2)
	b.PushSquare(SqG7)
	first := b.PopLsb()
	assert.Equal(t, SqB2, first)
	assert.Equal(t, 1, b.PopCount())
	second := b.PopLsb()
	assert.Equal(t, SqG7, second)
	assert.Equal(t, 0, b.PopCount())
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestFileRankBb(t *testing.T) {
	assert.Equal(t, FileA_Bb, FileA.Bb())
	assert.Equal(t, Rank4_Bb, Rank4.Bb())
	assert.True(t, FileA.Bb().Has(SqA1))
	assert.True(t, FileA.Bb().Has(SqA8))
	assert.False(t, FileA.Bb().Has(SqB1))
}

func TestGetPseudoAttacksKnight(t *testing.T) {
	att := GetPseudoAttacks(Knight, SqE4)
	assert.Equal(t, 8, att.PopCount())
	assert.True(t, att.Has(SqD2))
	assert.True(t, att.Has(SqC3))
	assert.True(t, att.Has(SqG5))
}

func TestGetPseudoAttacksKingCorner(t *testing.T) {
	att := GetPseudoAttacks(King, SqA1)
	assert.Equal(t, 3, att.PopCount())
	assert.True(t, att.Has(SqA2))
	assert.True(t, att.Has(SqB1))
	assert.True(t, att.Has(SqB2))
}

func TestGetPawnAttacks(t *testing.T) {
	att := GetPawnAttacks(White, SqE4)
	assert.True(t, att.Has(SqD5))
	assert.True(t, att.Has(SqF5))
	assert.Equal(t, 2, att.PopCount())

	att = GetPawnAttacks(Black, SqE4)
	assert.True(t, att.Has(SqD3))
	assert.True(t, att.Has(SqF3))
}

func TestGetAttacksBbRookEmptyBoard(t *testing.T) {
	att := GetAttacksBb(Rook, SqA1, BbZero)
	assert.Equal(t, 14, att.PopCount())
	assert.True(t, att.Has(SqA8))
	assert.True(t, att.Has(SqH1))
}

func TestGetAttacksBbRookBlocked(t *testing.T) {
	occupied := SqA4.Bb() | SqD1.Bb()
	att := GetAttacksBb(Rook, SqA1, occupied)
	assert.True(t, att.Has(SqA2))
	assert.True(t, att.Has(SqA3))
	assert.True(t, att.Has(SqA4))
	assert.False(t, att.Has(SqA5))
	assert.True(t, att.Has(SqB1))
	assert.True(t, att.Has(SqC1))
	assert.True(t, att.Has(SqD1))
	assert.False(t, att.Has(SqE1))
}

func TestGetAttacksBbBishop(t *testing.T) {
	att := GetAttacksBb(Bishop, SqD4, BbZero)
	assert.True(t, att.Has(SqA1))
	assert.True(t, att.Has(SqG7))
	assert.False(t, att.Has(SqD5))
}

func TestGetAttacksBbQueenIsUnionOfRookAndBishop(t *testing.T) {
	occ := SqD6.Bb()
	q := GetAttacksBb(Queen, SqD4, occ)
	r := GetAttacksBb(Rook, SqD4, occ)
	b := GetAttacksBb(Bishop, SqD4, occ)
	assert.Equal(t, r|b, q)
}

func TestIntermediate(t *testing.T) {
	between := Intermediate(SqA1, SqA4)
	assert.True(t, between.Has(SqA2))
	assert.True(t, between.Has(SqA3))
	assert.False(t, between.Has(SqA4))
	assert.False(t, between.Has(SqA1))
}

func TestIntermediateDiagonal(t *testing.T) {
	between := Intermediate(SqA1, SqD4)
	assert.True(t, between.Has(SqB2))
	assert.True(t, between.Has(SqC3))
	assert.Equal(t, 2, between.PopCount())
}

func TestRay(t *testing.T) {
	r := Ray(N, SqE4)
	assert.True(t, r.Has(SqE5))
	assert.True(t, r.Has(SqE8))
	assert.False(t, r.Has(SqE3))
}
