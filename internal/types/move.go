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

// Move is a plain value triple (start, end, promotion). It is trivially
// copyable and carries no side-effect metadata; the metadata a make-move
// needs is recomputed fresh on every application as a MoveFlags word.
type Move struct {
	Start     Square
	End       Square
	Promotion PieceType // Empty for a non-promoting move
}

// NewMove builds a non-promoting move.
func NewMove(start, end Square) Move {
	return Move{Start: start, End: end, Promotion: Empty}
}

// NewPromotion builds a promoting move.
func NewPromotion(start, end Square, promotion PieceType) Move {
	return Move{Start: start, End: end, Promotion: promotion}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// String renders the move in UCI wire format: e2e4, e7e8q. A move with an
// invalid square, or whose start equals its end (such as the zero Move),
// renders as the null move "0000".
func (m Move) String() string {
	if !m.Start.IsValid() || !m.End.IsValid() || m.Start == m.End {
		return "0000"
	}
	s := m.Start.String() + m.End.String()
	if m.IsPromotion() {
		s += promotionLetter(m.Promotion)
	}
	return s
}

func promotionLetter(pt PieceType) string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// promotionFromLetter parses a lower-case UCI promotion letter.
func promotionFromLetter(ch byte) (PieceType, bool) {
	switch ch {
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	default:
		return Empty, false
	}
}

// MoveFromUci parses the UCI wire format (e2e4, e7e8q) into a Move. It
// performs only syntactic validation - legality is the move generator's
// job.
func MoveFromUci(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	start := SquareFromString(s[0:2])
	end := SquareFromString(s[2:4])
	if start == SqNone || end == SqNone {
		return Move{}, false
	}
	if len(s) == 5 {
		pt, ok := promotionFromLetter(s[4])
		if !ok {
			return Move{}, false
		}
		return NewPromotion(start, end, pt), true
	}
	return NewMove(start, end), true
}

// MoveFlags is a packed 16-bit description of a move's effects, derived
// fresh from the mailbox on every application: piece id (3 bits), mover
// color (1 bit), captured piece id (3 bits), castle flag (1 bit),
// en-passant flag (1 bit), promotion flag (1 bit).
type MoveFlags uint16

const (
	flagsPieceShift    = 0
	flagsColorShift    = 3
	flagsCapturedShift = 4
	flagsCastleShift   = 7
	flagsEpShift       = 8
	flagsPromoShift    = 9
)

// MakeMoveFlags packs the fields the mailbox observed while applying a move.
func MakeMoveFlags(piece PieceType, mover Color, captured PieceType, isCastle, isEnPassant, isPromotion bool) MoveFlags {
	var f MoveFlags
	f |= MoveFlags(piece) << flagsPieceShift
	f |= MoveFlags(mover) << flagsColorShift
	f |= MoveFlags(captured) << flagsCapturedShift
	if isCastle {
		f |= 1 << flagsCastleShift
	}
	if isEnPassant {
		f |= 1 << flagsEpShift
	}
	if isPromotion {
		f |= 1 << flagsPromoShift
	}
	return f
}

// PieceType is the piece that moved.
func (f MoveFlags) PieceType() PieceType { return PieceType(f >> flagsPieceShift & 0x7) }

// Mover is the color that made the move.
func (f MoveFlags) Mover() Color { return Color(f >> flagsColorShift & 0x1) }

// Captured is the piece type captured, or Empty if none.
func (f MoveFlags) Captured() PieceType { return PieceType(f >> flagsCapturedShift & 0x7) }

// IsCapture reports whether the move captured a piece (en-passant included).
func (f MoveFlags) IsCapture() bool { return f.Captured() != Empty }

// IsCastle reports whether the move was a castle.
func (f MoveFlags) IsCastle() bool { return f>>flagsCastleShift&0x1 != 0 }

// IsEnPassant reports whether the move was an en-passant capture.
func (f MoveFlags) IsEnPassant() bool { return f>>flagsEpShift&0x1 != 0 }

// IsPromotion reports whether the move promoted a pawn.
func (f MoveFlags) IsPromotion() bool { return f>>flagsPromoShift&0x1 != 0 }
