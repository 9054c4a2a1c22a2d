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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i set means square i is a member.
type Bitboard uint64

// BbZero is the empty set.
const BbZero Bitboard = 0

// BbFull is the full board.
const BbFull Bitboard = ^Bitboard(0)

var (
	FileABb = fileMask(FileA)
	FileHBb = fileMask(FileH)
	Rank1Bb = rankMask(Rank1)
	Rank8Bb = rankMask(Rank8)
)

func fileMask(f File) Bitboard {
	var b Bitboard
	for r := Rank1; r.IsValid(); r++ {
		b.PushSquare(MakeSquare(f, r))
	}
	return b
}

func rankMask(r Rank) Bitboard {
	var b Bitboard
	for f := FileA; f.IsValid(); f++ {
		b.PushSquare(MakeSquare(f, r))
	}
	return b
}

// SquareBb returns the singleton bitboard for sq.
func SquareBb(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// PushSquare sets the bit for sq.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= SquareBb(sq)
}

// PopSquare clears the bit for sq.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= SquareBb(sq)
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBb(sq) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the lowest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the lowest-indexed set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// Subsets enumerates every subset of mask, including the empty set and
// mask itself, using the Carry-Rippler trick. The result has exactly
// 2^popcount(mask) entries.
func Subsets(mask Bitboard) []Bitboard {
	out := make([]Bitboard, 0, 1<<uint(mask.PopCount()))
	var b Bitboard
	for {
		out = append(out, b)
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
	return out
}

// FillBetween returns the contiguous mask of indices between i and j
// inclusive of both endpoints, regardless of which argument is larger.
func FillBetween(i, j Square) Bitboard {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	high := (Bitboard(1) << (uint(hi) + 1)) - 1
	low := (Bitboard(1) << uint(lo)) - 1
	return high ^ low
}

// shift moves every set bit one step in direction d, clearing bits that
// would wrap around the east/west edge of the board.
func (b Bitboard) shift(d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) >> 7
	case Northwest:
		return (b &^ FileABb) >> 9
	case Southeast:
		return (b &^ FileHBb) << 9
	case Southwest:
		return (b &^ FileABb) << 7
	default:
		return 0
	}
}

// ShiftNorth returns b shifted one square toward rank 8.
func (b Bitboard) ShiftNorth() Bitboard { return b.shift(North) }

// ShiftSouth returns b shifted one square toward rank 1.
func (b Bitboard) ShiftSouth() Bitboard { return b.shift(South) }

// ShiftEast returns b shifted one square toward file h, clearing file-h wraps.
func (b Bitboard) ShiftEast() Bitboard { return b.shift(East) }

// ShiftWest returns b shifted one square toward file a, clearing file-a wraps.
func (b Bitboard) ShiftWest() Bitboard { return b.shift(West) }

// String renders the bitboard as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.Has(Square(row*8 + col)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
