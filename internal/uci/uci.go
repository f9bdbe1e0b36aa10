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

// Package uci drives the engine over the UCI text protocol: it reads
// whitespace-tokenised commands from an input stream, maintains the
// current position, and dispatches to the search package, printing
// its progress and result back out.
package uci

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/avhar/corvid/internal/logging"
	"github.com/avhar/corvid/internal/movegen"
	"github.com/avhar/corvid/internal/position"
	"github.com/avhar/corvid/internal/search"
	. "github.com/avhar/corvid/internal/types"
	"github.com/avhar/corvid/internal/util"
	"github.com/avhar/corvid/internal/version"
)

var log *logging.Logger

// UciHandler owns the engine's side of a UCI session: the current
// position, the search instance, and the input/output streams.
// Create one with NewUciHandler.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	gen      *movegen.Generator
	search   *search.Search
	position *position.Position
	perft    *movegen.Perft
}

// NewUciHandler wires a handler reading stdin and writing stdout. Swap
// InIo/OutIo before calling Loop to redirect either stream (tests do
// this to drive the handler without a real terminal).
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog("uci")
	}
	u := &UciHandler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		gen:      movegen.NewGenerator(),
		search:   search.NewSearch(),
		position: position.NewPosition(),
		perft:    movegen.NewPerft(),
	}
	u.search.SetReporter(&handlerReporter{u: u})
	return u
}

// Loop reads and dispatches commands until "quit" or EOF.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns whatever
// it wrote to its output stream, for tests and debugging.
func (u *UciHandler) Command(cmd string) string {
	saved := u.OutIo
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.handleCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handleCommand dispatches one line, returning true for "quit".
func (u *UciHandler) handleCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.position = position.NewPosition()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.search.StopSearch()
		u.perft.Stop()
	case "perft":
		u.perftCommand(tokens)
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name " + version.Name())
	u.send("id author " + version.Author())
	for _, o := range *uciOptions.GetOptions() {
		u.send(o)
	}
	u.send("uciok")
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		log.Warningf("malformed setoption command: %v", tokens)
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = tokens[i+1]
	}
	o, ok := uciOptions[name.String()]
	if !ok {
		log.Warningf("no such option: %s", name.String())
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(u, o)
}

// positionCommand rebuilds u.position from "startpos"/"fen ..." and
// replays any trailing "moves". A move not found in the legal list for
// its position is fatal (§6): the process panics rather than
// continuing on an inconsistent position.
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		log.Warningf("malformed position command: %v", tokens)
		return
	}

	fen := position.StartFen
	i := 1
	switch tokens[1] {
	case "startpos":
		i = 2
	case "fen":
		i = 2
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
	default:
		log.Warningf("malformed position command: %v", tokens)
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Warningf("invalid fen %q: %v", fen, err)
		return
	}
	u.position = p

	if i < len(tokens) && tokens[i] == "moves" {
		for i++; i < len(tokens); i++ {
			m := u.moveFromUci(tokens[i])
			if m == MoveNone {
				panic("move in position command was not found")
			}
			u.position.MakeMove(m)
		}
	}
}

// moveFromUci matches a long-algebraic move string against the
// current position's legal moves, returning MoveNone if none matches.
func (u *UciHandler) moveFromUci(uciMove string) Move {
	var ml movegen.MoveList
	u.gen.GenerateLegal(u.position, movegen.GenAll, &ml)
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).StringUci() == uciMove {
			return ml.At(i)
		}
	}
	return MoveNone
}

// goCommand parses search limits and starts a search on the current
// position. Supports the spec's wtime/btime/winc/binc formula plus the
// supplemented movetime/depth overrides.
func (u *UciHandler) goCommand(tokens []string) {
	limits, ok := u.parseLimits(tokens)
	if !ok {
		return
	}
	u.search.StartSearch(*u.position, limits)
}

func (u *UciHandler) parseLimits(tokens []string) (search.Limits, bool) {
	var wtime, btime, winc, binc time.Duration
	var moveTime time.Duration
	var depth int
	haveTimeControl := false

	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		readMs := func() (time.Duration, bool) {
			i++
			if i >= len(tokens) {
				return 0, false
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return 0, false
			}
			return time.Duration(ms) * time.Millisecond, true
		}

		switch tok {
		case "wtime":
			v, ok := readMs()
			if !ok {
				return search.Limits{}, false
			}
			wtime = v
			haveTimeControl = true
		case "btime":
			v, ok := readMs()
			if !ok {
				return search.Limits{}, false
			}
			btime = v
			haveTimeControl = true
		case "winc":
			v, ok := readMs()
			if !ok {
				return search.Limits{}, false
			}
			winc = v
		case "binc":
			v, ok := readMs()
			if !ok {
				return search.Limits{}, false
			}
			binc = v
		case "movetime":
			v, ok := readMs()
			if !ok {
				return search.Limits{}, false
			}
			moveTime = v
		case "depth":
			i++
			if i >= len(tokens) {
				return search.Limits{}, false
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				return search.Limits{}, false
			}
			depth = d
		default:
			log.Warningf("ignoring unsupported go subcommand: %s", tok)
		}
		i++
	}

	if moveTime > 0 {
		return search.Limits{ThinkTime: moveTime, Depth: depth}, true
	}
	if depth > 0 && !haveTimeControl {
		return search.Limits{Depth: depth}, true
	}

	// §6: think_time = side_time/20 + side_inc/2, defaults time=20ms inc=0.
	sideTime, sideInc := 20*time.Millisecond, time.Duration(0)
	if u.position.SideToMove() == White {
		if wtime > 0 {
			sideTime = wtime
		}
		sideInc = winc
	} else {
		if btime > 0 {
			sideTime = btime
		}
		sideInc = binc
	}
	thinkTime := sideTime/20 + sideInc/2
	return search.Limits{ThinkTime: thinkTime, Depth: depth}, true
}

func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil {
			log.Warningf("invalid perft depth %q", tokens[1])
			return
		}
		depth = d
	}
	go u.perft.Run(u.position.Fen(), depth)
}

// send writes one protocol line to the output stream.
func (u *UciHandler) send(s string) {
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}

// handlerReporter adapts search.Reporter to UciHandler.send, so info
// and bestmove lines flow through the same output stream as every
// other protocol response (and through Command's captured buffer in
// tests).
type handlerReporter struct {
	u *UciHandler
}

func (r *handlerReporter) SendInfo(depth int, score Value, nodes uint64, elapsed time.Duration) {
	r.u.send(sprintInfo(depth, score, nodes, elapsed))
}

func (r *handlerReporter) SendBestMove(m Move) {
	if m == MoveNone {
		r.u.send("bestmove 0000")
		return
	}
	r.u.send("bestmove " + m.StringUci())
}

func sprintInfo(depth int, score Value, nodes uint64, elapsed time.Duration) string {
	return "info depth " + strconv.Itoa(depth) +
		" score cp " + strconv.Itoa(int(score)) +
		" nodes " + strconv.FormatUint(nodes, 10) +
		" nps " + strconv.FormatUint(util.Nps(nodes, elapsed), 10) +
		" time " + strconv.FormatInt(elapsed.Milliseconds(), 10)
}
