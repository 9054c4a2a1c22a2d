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

// Package position implements the dual bitboard/mailbox board
// representation and the fully-legal move generator built on top of it.
package position

import (
	"strings"

	"github.com/tkellan/chessmagic/internal/types"
)

// Flags is the packed status byte: bit 0 black queen-side castle, bit 1
// black king-side castle, bit 2 white queen-side castle, bit 3 white
// king-side castle, bit 4 side to move (1 = White), bits 5-7 reserved.
type Flags uint8

const (
	BlackQueenSide Flags = 1 << 0
	BlackKingSide  Flags = 1 << 1
	WhiteQueenSide Flags = 1 << 2
	WhiteKingSide  Flags = 1 << 3
	sideToMoveBit  Flags = 1 << 4

	allCastling = BlackQueenSide | BlackKingSide | WhiteQueenSide | WhiteKingSide
)

// Has reports whether every bit of rhs is set in f.
func (f Flags) Has(rhs Flags) bool {
	return f&rhs == rhs
}

// Remove clears the given bits.
func (f Flags) Remove(rhs Flags) Flags {
	return f &^ rhs
}

// Add sets the given bits.
func (f Flags) Add(rhs Flags) Flags {
	return f | rhs
}

// SideToMove reports whose turn it is.
func (f Flags) SideToMove() types.Color {
	if f.Has(sideToMoveBit) {
		return types.White
	}
	return types.Black
}

// WithSideToMove returns f with the side-to-move bit set for c.
func WithSideToMove(f Flags, c types.Color) Flags {
	if c == types.White {
		return f.Add(sideToMoveBit)
	}
	return f.Remove(sideToMoveBit)
}

// kingSideRight and queenSideRight return the castling bit belonging to c.
func kingSideRight(c types.Color) Flags {
	if c == types.White {
		return WhiteKingSide
	}
	return BlackKingSide
}

func queenSideRight(c types.Color) Flags {
	if c == types.White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// CastlingString renders the castling subset of f in FEN order (KQkq),
// or "-" if no rights remain.
func (f Flags) CastlingString() string {
	if f&allCastling == 0 {
		return "-"
	}
	var sb strings.Builder
	if f.Has(WhiteKingSide) {
		sb.WriteByte('K')
	}
	if f.Has(WhiteQueenSide) {
		sb.WriteByte('Q')
	}
	if f.Has(BlackKingSide) {
		sb.WriteByte('k')
	}
	if f.Has(BlackQueenSide) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// ParseCastling parses a FEN castling field into flag bits (side-to-move
// bit untouched).
func ParseCastling(s string) (Flags, bool) {
	var f Flags
	if s == "-" {
		return f, true
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			f |= WhiteKingSide
		case 'Q':
			f |= WhiteQueenSide
		case 'k':
			f |= BlackKingSide
		case 'q':
			f |= BlackQueenSide
		default:
			return 0, false
		}
	}
	return f, true
}
