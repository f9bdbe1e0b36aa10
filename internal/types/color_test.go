package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
}

func TestColorPawnRanks(t *testing.T) {
	assert.Equal(t, Rank2, White.PawnRank())
	assert.Equal(t, Rank7, Black.PawnRank())
	assert.Equal(t, Rank8, White.PromotionRank())
	assert.Equal(t, Rank1, Black.PromotionRank())
	assert.Equal(t, Rank4, White.PawnDoublePushRank())
	assert.Equal(t, Rank5, Black.PawnDoublePushRank())
}
