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
	"fmt"
	"strconv"
	"strings"

	. "github.com/avhar/corvid/internal/types"
)

// FenParseError reports a malformed FEN string, naming the field that
// failed and why.
type FenParseError struct {
	Fen    string
	Reason string
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("invalid fen %q: %s", e.Fen, e.Reason)
}

// setupFromFen resets p to the position described by fen, a
// six-field Forsyth-Edwards string: piece placement, side to move,
// castling rights, en-passant target, halfmove clock, fullmove number.
func (p *Position) setupFromFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return &FenParseError{Fen: fen, Reason: "expected at least 4 space-separated fields"}
	}

	p.pieces = [ColorLength][PtLength]Bitboard{}
	p.occupancy = [ColorLength]Bitboard{}
	p.mailbox = [SqLength]Piece{}
	p.zobrist = 0
	p.history = nil

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return &FenParseError{Fen: fen, Reason: "piece placement must have 8 ranks"}
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				f += File(c - '0')
			default:
				pc := PieceFromChar(string(c))
				if pc == PieceNone {
					return &FenParseError{Fen: fen, Reason: fmt.Sprintf("unknown piece character %q", c)}
				}
				if f > FileH {
					return &FenParseError{Fen: fen, Reason: "rank overflows 8 files"}
				}
				p.putPiece(pc, SquareOf(f, r))
				f++
			}
		}
		if f != FileH+1 {
			return &FenParseError{Fen: fen, Reason: fmt.Sprintf("rank %d does not sum to 8 files", 8-i)}
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return &FenParseError{Fen: fen, Reason: "side to move must be 'w' or 'b'"}
	}

	p.castlingRights = CastlingRightsFromFen(fields[2])

	p.epSquare = SqNone
	if fields[3] != "-" {
		sq := squareFromAlgebraic(fields[3])
		if sq == SqNone {
			return &FenParseError{Fen: fen, Reason: fmt.Sprintf("invalid en-passant square %q", fields[3])}
		}
		p.epSquare = sq
	}

	p.halfmoveClock = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}

	p.fullmoveNumber = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmoveNumber = n
		}
	}

	if p.sideToMove == Black {
		p.zobrist ^= sideToMoveKey
	}
	p.zobrist ^= castlingKey(p.castlingRights)
	if p.epSquare != SqNone {
		p.zobrist ^= epKey(p.epSquare)
	}

	return nil
}

// squareFromAlgebraic parses a two-character square label such as
// "e4"; it returns SqNone on any malformed input.
func squareFromAlgebraic(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if f > FileH || r > Rank8 {
		return SqNone
	}
	return SquareOf(f, r)
}

// Fen renders the position as a Forsyth-Edwards string.
func (p *Position) Fen() string {
	var sb strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.mailbox[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}

// String renders the position's FEN.
func (p *Position) String() string {
	return p.Fen()
}
