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
	"math/rand"

	. "github.com/avhar/corvid/internal/types"
)

// Key is a Zobrist position hash.
type Key uint64

// zobristSeed is fixed so keys are deterministic across runs/platforms,
// as required by the external interface contract (§6 of the engine
// spec: "seed is constant so keys are deterministic across runs").
const zobristSeed = 1070372

var (
	pieceSquareKeys [ColorLength][PtLength][SqLength]Key
	castlingKeys    [16]Key
	epFileKeys      [8]Key
	sideToMoveKey   Key
)

func initZobrist() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := White; c < ColorLength; c++ {
		for pt := King; pt <= Queen; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				pieceSquareKeys[c][pt][sq] = Key(rng.Uint64())
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = Key(rng.Uint64())
	}
	for i := range epFileKeys {
		epFileKeys[i] = Key(rng.Uint64())
	}
	sideToMoveKey = Key(rng.Uint64())
}

func init() {
	initZobrist()
}

func pieceKey(p Piece, sq Square) Key {
	return pieceSquareKeys[p.ColorOf()][p.TypeOf()][sq]
}

func castlingKey(cr CastlingRights) Key {
	return castlingKeys[cr]
}

func epKey(sq Square) Key {
	if sq == SqNone {
		return 0
	}
	return epFileKeys[sq.FileOf()]
}
