/*
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

// Color identifies the side to move or the owner of a piece. Black is 0
// and White is 1; the opposite color is always 1-c.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return 1 - c
}

// IsValid reports whether c is Black or White.
func (c Color) IsValid() bool {
	return c <= White
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

var pawnMoveDirection = [2]Direction{South, North} // indexed by Color

// MoveDirection returns the direction a pawn of this color advances.
func (c Color) MoveDirection() Direction {
	return pawnMoveDirection[c]
}

var promotionRank = [2]Rank{Rank1, Rank8} // indexed by Color

// PromotionRank returns the rank on which this color's pawns promote.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

var doublePushRank = [2]Rank{Rank7, Rank2} // indexed by Color, the start rank eligible for a two-square push

// DoublePushRank returns the rank from which this color may push a pawn two squares.
func (c Color) DoublePushRank() Rank {
	return doublePushRank[c]
}
