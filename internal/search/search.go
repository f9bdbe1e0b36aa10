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

// Package search drives iterative-deepening negamax alpha-beta search
// with quiescence, a transposition table and MVV-LVA move ordering.
// The search runs on its own goroutine; StartSearch/StopSearch/
// WaitWhileSearching coordinate with the caller through a weighted
// semaphore, the same pattern FrankyGo's search package uses instead
// of a hand-rolled condition variable.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avhar/corvid/internal/config"
	"github.com/avhar/corvid/internal/evaluator"
	myLogging "github.com/avhar/corvid/internal/logging"
	"github.com/avhar/corvid/internal/movegen"
	"github.com/avhar/corvid/internal/position"
	"github.com/avhar/corvid/internal/transpositiontable"
	. "github.com/avhar/corvid/internal/types"
	"github.com/avhar/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxDepth is the deepest iterative-deepening iteration the search
// will attempt.
const MaxDepth = 32

// Search holds the state of one engine instance: its transposition
// table, evaluator, move generator and the bookkeeping iterative
// deepening needs across recursive negamax calls. It is not safe for
// concurrent StartSearch calls - use IsSearching/WaitWhileSearching
// to serialize access from the UCI loop.
type Search struct {
	log *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted
	stopFlag      *util.Bool

	reporter Reporter
	tt       *transpositiontable.TtTable
	eval     *evaluator.Evaluator
	gen      *movegen.Generator

	startTime  time.Time
	thinkTime  time.Duration
	stats      Statistics
	lastResult Result
}

// NewSearch creates a Search instance with its transposition table
// sized from config.Settings.Search (whose quiescence toggle is read
// during search, at each depth-0 node), and its output going to
// stdout until SetReporter overrides it.
func NewSearch() *Search {
	s := &Search{
		log:           myLogging.GetLog("search"),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		stopFlag:      util.NewBool(false),
		reporter:      NewStdoutReporter(),
		eval:          evaluator.NewEvaluator(),
		gen:           movegen.NewGenerator(),
	}
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSize)
	}
	return s
}

// SetReporter overrides where info/bestmove lines are sent.
func (s *Search) SetReporter(r Reporter) {
	s.reporter = r
}

// ClearHash empties the transposition table. Ignored with a warning
// while a search is running.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.log.Warning("can't clear hash while searching")
		return
	}
	if s.tt != nil {
		s.tt.Clear()
	}
}

// ResizeHash rebuilds the transposition table for a new size budget in
// MiB, discarding its contents. Ignored with a warning while a search
// is running. Sizing the table down to zero effectively disables it.
func (s *Search) ResizeHash(sizeInMByte int) {
	if s.IsSearching() {
		s.log.Warning("can't resize hash while searching")
		return
	}
	if s.tt == nil {
		s.tt = transpositiontable.NewTtTable(sizeInMByte)
		return
	}
	s.tt.Resize(sizeInMByte)
}

// StartSearch begins a search on a copy of p under the given limits.
// It returns once the search goroutine has finished its setup and is
// actually running; the result is delivered to the Reporter when the
// search ends, and also retrievable via LastResult.
func (s *Search) StartSearch(p position.Position, l Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	go s.run(&p, l)
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests the running search abort as soon as possible
// and blocks until it has.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has stopped.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// LastResult returns the result of the most recently finished search.
func (s *Search) LastResult() Result {
	return s.lastResult
}

// Statistics returns a pointer to the statistics of the last (or
// still running) search.
func (s *Search) Statistics() *Statistics {
	return &s.stats
}

// run is launched by StartSearch on its own goroutine. It owns p for
// the duration of the search - the caller must not touch it again
// until StopSearch/WaitWhileSearching returns.
func (s *Search) run(p *position.Position, l Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.stopFlag.Store(false)
	s.thinkTime = l.ThinkTime
	s.stats = Statistics{}

	maxDepth := MaxDepth
	if l.Depth > 0 && l.Depth < MaxDepth {
		maxDepth = l.Depth
	}

	s.log.Info(out.Sprintf("searching %s, think time %s, max depth %d", p.String(), s.thinkTime, maxDepth))

	// signal StartSearch that setup is done and p is now owned here
	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(p, maxDepth)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.stats.Nodes

	s.log.Info(out.Sprintf("search finished: %s", result.String()))
	s.lastResult = result
	s.reporter.SendBestMove(result.BestMove)
}

// iterativeDeepening drives depths 1..maxDepth (§4.G). Each depth
// becomes the new best result unless its root search was aborted, in
// which case the previous depth's result is kept.
func (s *Search) iterativeDeepening(p *position.Position, maxDepth int) Result {
	if p.IsRepetition(3) || p.HalfmoveClock() >= 100 {
		return Result{BestValue: ValueDraw}
	}

	var rootMoves movegen.MoveList
	s.gen.GenerateLegal(p, movegen.GenAll, &rootMoves)

	if rootMoves.Len() == 0 {
		if movegen.IsInCheck(p) {
			s.stats.Checkmates++
			return Result{BestValue: MatedIn(0)}
		}
		s.stats.Stalemates++
		return Result{BestValue: ValueDraw}
	}

	best := Result{BestMove: rootMoves.At(0)}
	ttMove := MoveNone

	for depth := 1; depth <= maxDepth; depth++ {
		// a new iteration invalidates the replacement guarantee of
		// entries from the previous one (§4.E: once per root
		// iteration of iterative deepening, not once per command).
		if s.tt != nil {
			s.tt.IncrementAge()
		}

		value, bestMove, aborted := s.rootSearch(p, &rootMoves, depth, ttMove)
		if aborted {
			break
		}

		best = Result{BestMove: bestMove, BestValue: value, Depth: depth}
		ttMove = bestMove

		s.reporter.SendInfo(depth, value, s.stats.Nodes, time.Since(s.startTime))

		if value.IsMateValue() || s.stopRequested() {
			break
		}
	}

	return best
}

// rootSearch searches every root move at full window and returns the
// best value and move found, plus whether the iteration was aborted
// by the stop flag or the think-time deadline (in which case the
// caller discards value/move and keeps the previous iteration).
func (s *Search) rootSearch(p *position.Position, rootMoves *movegen.MoveList, depth int, ttMove Move) (Value, Move, bool) {
	ordered := orderMoves(p, rootMoves, ttMove)

	alpha, beta := -ValueInfinite, ValueInfinite
	bestValue := -ValueInfinite
	bestMove := ordered[0]

	for _, m := range ordered {
		p.MakeMove(m)
		s.stats.Nodes++

		var score Value
		if p.IsRepetition(3) || p.HalfmoveClock() >= 100 {
			score = ValueDraw
		} else {
			v, aborted := s.negamax(p, -beta, -alpha, depth-1)
			if aborted {
				p.UnmakeMove()
				return 0, MoveNone, true
			}
			score = -v
		}
		p.UnmakeMove()

		if s.stopRequested() {
			return 0, MoveNone, true
		}

		if score > bestValue {
			bestValue = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return bestValue, bestMove, false
}

// stopRequested reports whether the search must abort: an explicit
// stop, or the think-time deadline elapsing. Crossing the deadline
// latches the stop flag so subsequent checks short-circuit.
func (s *Search) stopRequested() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.thinkTime > 0 && time.Since(s.startTime) >= s.thinkTime {
		s.stopFlag.Store(true)
		return true
	}
	return false
}
