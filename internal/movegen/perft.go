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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avhar/corvid/internal/position"
	. "github.com/avhar/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes reachable from a position at a fixed
// depth, the standard correctness harness for a move generator: every
// divergence from the known-correct count pinpoints a generation bug.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnPassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	stopFlag         bool
}

// NewPerft returns an empty, ready-to-run Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests an in-progress Run (typically called from another
// goroutine) to abandon the remaining search and return zero.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// Run computes perft(depth) from fen, printing a Stockfish-style
// summary, and returns the total leaf node count.
func (perft *Perft) Run(fen string, depth int) uint64 {
	perft.stopFlag = false
	perft.reset()
	if depth < 1 {
		depth = 1
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("invalid fen: %v\n", err)
		return 0
	}
	gen := NewGenerator()

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.search(gen, p, depth)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return 0
	}

	perft.Nodes = result
	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = perft.Nodes * uint64(time.Second.Nanoseconds()) / uint64(elapsed.Nanoseconds())
	}

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", nps)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnPassantCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("-----------------------------------------\n")

	return perft.Nodes
}

func (perft *Perft) reset() {
	perft.Nodes = 0
	perft.CaptureCounter = 0
	perft.EnPassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
	perft.CheckCounter = 0
}

func (perft *Perft) search(gen *Generator, p *position.Position, depth int) uint64 {
	var ml MoveList
	gen.GenerateLegal(p, GenAll, &ml)

	if depth == 1 {
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			perft.tallyLeaf(p, m)
		}
		return uint64(ml.Len())
	}

	var total uint64
	for i := 0; i < ml.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		m := ml.At(i)
		p.MakeMove(m)
		total += perft.search(gen, p, depth-1)
		p.UnmakeMove()
	}
	return total
}

func (perft *Perft) tallyLeaf(p *position.Position, m Move) {
	if p.PieceOn(m.To()) != PieceNone || m.IsEnPassant() {
		perft.CaptureCounter++
	}
	if m.IsEnPassant() {
		perft.EnPassantCounter++
	}
	if m.IsCastle() {
		perft.CastleCounter++
	}
	if m.IsPromotion() {
		perft.PromotionCounter++
	}
	p.MakeMove(m)
	if p.InCheck() {
		perft.CheckCounter++
	}
	p.UnmakeMove()
}
