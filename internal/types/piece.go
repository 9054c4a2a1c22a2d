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

// PieceType enumerates the six kinds of piece plus the empty marker.
//
//	Empty  = 0
//	Pawn   = 1
//	Knight = 2
//	Bishop = 3
//	Rook   = 4
//	Queen  = 5
//	King   = 6
type PieceType uint8

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength
)

// IsValid reports whether pt is one of the six piece kinds (Empty excluded).
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt < PieceTypeLength
}

// IsSliding reports whether pt attacks along rays (Bishop, Rook, Queen).
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeChar = "-PNBRQK"

// Char returns the single upper-case FEN letter for the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeChar[pt])
}

func (pt PieceType) String() string {
	switch pt {
	case Empty:
		return "Empty"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "?"
	}
}

// Piece packs a color and a piece type into a single mailbox byte:
// color_id<<3 | piece_id. An empty square is stored as 0.
type Piece uint8

// PieceNone marks an empty mailbox entry.
const PieceNone Piece = 0

// MakePiece packs a color and piece type into a mailbox byte.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// ColorOf unpacks the color from a mailbox byte.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf unpacks the piece type from a mailbox byte.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0x7)
}

// IsEmpty reports whether the mailbox byte represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.TypeOf() == Empty
}

// Char renders the piece the way FEN piece-placement fields do: upper
// case for White, lower case for Black, "-" for empty.
func (p Piece) Char() string {
	if p.IsEmpty() {
		return "-"
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return string(c[0] + ('a' - 'A'))
	}
	return c
}

// PieceFromChar parses a single FEN piece-placement letter into a Piece.
// Returns PieceNone, false on an unrecognised letter.
func PieceFromChar(ch byte) (Piece, bool) {
	var c Color
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	} else {
		c = White
	}
	idx := indexByte(pieceTypeChar, ch)
	if idx <= 0 {
		return PieceNone, false
	}
	return MakePiece(c, PieceType(idx)), true
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
