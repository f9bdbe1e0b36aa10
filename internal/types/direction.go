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

package types

// Direction is a single king-step offset on the 8x8 board, expressed
// as the delta added to a Square's int value when the step stays on
// the board. Diagonal/orthogonal rays and magic-bitboard attack
// generation are both built from these eight directions.
type Direction int8

// The eight ray directions, North being towards rank 8.
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -8
	West      Direction = -1
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// Orientation indexes the eight precomputed ray tables. It mirrors
// Direction one-to-one but as a small dense array index.
type Orientation uint8

const (
	N Orientation = iota
	E
	S
	W
	NE
	SE
	SW
	NW
	OrientationLength
)

var orientationDirection = [OrientationLength]Direction{
	N: North, E: East, S: South, W: West,
	NE: Northeast, SE: Southeast, SW: Southwest, NW: Northwest,
}

// Direction returns the Direction this orientation steps in.
func (o Orientation) Direction() Direction {
	return orientationDirection[o]
}

// rookDirections and bishopDirections group the four orthogonal and four diagonal
// directions, used by magic.go to build rook/bishop attack tables.
var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
