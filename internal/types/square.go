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

// Package types holds the small value types shared by every other package:
// squares, files, ranks, directions, colors, pieces and moves.
package types

import (
	"fmt"
	"strings"
)

// Square is a board index 0..63. Square 0 is a8, square 63 is h1: row 0 is
// rank 8, row 7 is rank 1, and index = row*8 + col.
type Square uint8

// SqNone is returned whenever a derived square falls off the board.
const (
	SqA8    Square = 0
	SqH1    Square = 63
	SqNone  Square = 64
	SqLength       = 64
)

// IsValid reports whether sq addresses one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

func (sq Square) row() int { return int(sq) / 8 }
func (sq Square) col() int { return int(sq) % 8 }

// FileOf returns the file (a..h) of the square.
func (sq Square) FileOf() File {
	return File(sq.col())
}

// RankOf returns the rank (1..8) of the square. Row 0 is rank 8, so the
// rank index is the mirror of the row index.
func (sq Square) RankOf() Rank {
	return Rank(7 - sq.row())
}

// MakeSquare builds the square addressed by the given file and rank.
func MakeSquare(f File, r Rank) Square {
	row := 7 - int(r)
	return Square(row*8 + int(f))
}

// SquareFromString parses an algebraic coordinate such as "e4" into a
// square. Returns SqNone if s is not exactly two valid characters.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := strings.IndexByte("abcdefgh", s[0])
	r := strings.IndexByte("12345678", s[1])
	if f < 0 || r < 0 {
		return SqNone
	}
	return MakeSquare(File(f), Rank(r))
}

// String renders the square in algebraic notation, or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To steps one square in the given direction, returning SqNone if the
// step would leave the board (including wrap-around on the east/west
// edges).
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	row, col := sq.row(), sq.col()
	switch d {
	case North:
		row--
	case South:
		row++
	case East:
		col++
	case West:
		col--
	case Northeast:
		row--
		col++
	case Northwest:
		row--
		col--
	case Southeast:
		row++
		col++
	case Southwest:
		row++
		col--
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return SqNone
	}
	return Square(row*8 + col)
}
