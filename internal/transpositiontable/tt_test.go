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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

func TestNewTtTableSizing(t *testing.T) {
	tt := NewTtTable(1)
	assert.Greater(t, len(tt.data), 0)
	assert.LessOrEqual(t, uint64(len(tt.data))*TtEntrySize, uint64(1*1024*1024))
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	tt := NewTtTable(0)
	tt.Put(position.Key(12345), 4, 100, BoundExact, MoveNone)
	assert.Nil(t, tt.Probe(position.Key(12345)))
	assert.EqualValues(t, 0, tt.Len())
}

func TestPutThenProbeExactHit(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(0xDEADBEEF)
	tt.Put(key, 6, 150, BoundExact, MoveNone)

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, key, e.Key)
	assert.EqualValues(t, 150, e.Score)
	assert.Equal(t, BoundExact, e.Bound)
	assert.EqualValues(t, 6, e.Depth)
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(position.Key(999)))
}

func TestSameAgeShallowerEntryDoesNotReplaceDeeper(t *testing.T) {
	tt := NewTtTable(1)
	deepKey := position.Key(1)
	shallowKey := deepKey + uint64(len(tt.data)) // collides into the same slot

	tt.Put(deepKey, 10, 200, BoundExact, MoveNone)
	tt.Put(shallowKey, 3, 50, BoundExact, MoveNone)

	e := tt.Probe(deepKey)
	assert.NotNil(t, e, "deeper entry from the current age must survive a shallower collision")
	assert.EqualValues(t, 200, e.Score)
}

func TestIncrementAgeAllowsReplacementRegardlessOfDepth(t *testing.T) {
	tt := NewTtTable(1)
	deepKey := position.Key(1)
	shallowKey := deepKey + uint64(len(tt.data))

	tt.Put(deepKey, 10, 200, BoundExact, MoveNone)
	tt.IncrementAge()
	tt.Put(shallowKey, 3, 50, BoundExact, MoveNone)

	e := tt.Probe(shallowKey)
	assert.NotNil(t, e, "an aged entry must be replaceable even by a shallower search")
	assert.EqualValues(t, 50, e.Score)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(position.Key(7), 1, 1, BoundExact, MoveNone)
	assert.EqualValues(t, 1, tt.Len())
	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(position.Key(7)))
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	// Hashfull is in permille, so at least one slot in a thousand must
	// be occupied before it leaves 0.
	for k := 1; k <= len(tt.data)/1000+1; k++ {
		tt.Put(position.Key(k), 1, 1, BoundExact, MoveNone)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
