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

// Package transpositiontable implements a direct-mapped transposition
// table for search: a hash table from Zobrist key to cached search
// result, used for move ordering and alpha-beta cutoffs. TtTable is
// not safe for concurrent use; Resize and Clear in particular must
// not run concurrently with search.
package transpositiontable

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/avhar/corvid/internal/logging"
	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB is the largest table size Resize accepts.
const MaxSizeInMB = 65_536

// TtTable is a direct-mapped array of TtEntry slots, sized to fit a
// requested byte budget. Unlike a power-of-2 bitmask table, the slot
// count need not be a power of 2: indexing is key mod N (§4.E).
type TtTable struct {
	log             *logging.Logger
	data            []TtEntry
	numberOfEntries uint64
	age             uint8
	Stats           TtStats
}

// TtStats holds running counters on table usage, reported via String.
type TtStats struct {
	puts       uint64
	collisions uint64
	overwrites uint64
	updates    uint64
	probes     uint64
	hits       uint64
	misses     uint64
}

// NewTtTable creates a table sized to hold as many entries as fit in
// sizeInMByte megabytes.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog("tt")}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table for a new size budget, discarding all
// entries. Must not be called concurrently with Probe/Put.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	n := uint64(sizeInMByte) * 1024 * 1024 / TtEntrySize
	tt.data = make([]TtEntry, n)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT size %d MB, %d entries of %d bytes (requested %d MB)",
		sizeInMByte, n, TtEntrySize, sizeInMByte))
}

// slot maps a Zobrist key to its table index: slot = key mod N.
func (tt *TtTable) slot(key position.Key) uint64 {
	if len(tt.data) == 0 {
		return 0
	}
	return uint64(key) % uint64(len(tt.data))
}

// Probe returns the entry for key, or nil if the table is empty or
// the slot holds a different position (no chaining - a collision is
// indistinguishable from a miss at lookup time).
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	if len(tt.data) == 0 {
		return nil
	}
	tt.Stats.probes++
	e := &tt.data[tt.slot(key)]
	if !e.isEmpty() && e.Key == key {
		tt.Stats.hits++
		return e
	}
	tt.Stats.misses++
	return nil
}

// Put stores a search result for key, depth, score, bound and best
// move. The slot is kept rather than overwritten only when it holds
// another key's entry from the current search age with a depth
// strictly greater than the new one - every other case (empty slot,
// older-age entry, same-age entry no deeper than the new one, or a
// same-key refresh) overwrites.
func (tt *TtTable) Put(key position.Key, depth uint8, score Value, bound Bound, move Move) {
	if len(tt.data) == 0 {
		return
	}
	tt.Stats.puts++

	e := &tt.data[tt.slot(key)]

	if e.isEmpty() {
		tt.numberOfEntries++
	} else if e.Key != key {
		tt.Stats.collisions++
		if e.Age == tt.age && e.Depth > depth {
			return
		}
		tt.Stats.overwrites++
	} else {
		tt.Stats.updates++
	}

	e.Key = key
	e.Move = move
	e.Score = score
	e.Depth = depth
	e.Bound = bound
	e.Age = tt.age
}

// Clear empties every slot without changing the table's capacity.
func (tt *TtTable) Clear() {
	for i := range tt.data {
		tt.data[i] = TtEntry{}
	}
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// IncrementAge marks the start of a new iterative-deepening root
// iteration: entries stamped with an older age become eligible for
// replacement regardless of depth. Call once per root iteration.
func (tt *TtTable) IncrementAge() {
	tt.age++
}

// Hashfull reports how full the table is in permille, as UCI expects.
func (tt *TtTable) Hashfull() int {
	if len(tt.data) == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / uint64(len(tt.data)))
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// String summarizes size and usage statistics.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: %d entries (%d%% full), puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		len(tt.data), tt.Hashfull()/10, tt.Stats.puts, tt.Stats.updates, tt.Stats.collisions, tt.Stats.overwrites,
		tt.Stats.probes, tt.Stats.hits, tt.Stats.misses)
}
