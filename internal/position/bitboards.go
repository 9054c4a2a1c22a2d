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

package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tkellan/chessmagic/internal/attacks"
	"github.com/tkellan/chessmagic/internal/types"
	"github.com/tkellan/chessmagic/internal/util"
)

// BitboardState owns the per-piece and per-color bitboards together with
// the en-passant file and the packed status byte. It is the primary
// arithmetic substrate; the mailbox exists only to make "what is
// captured?" an O(1) lookup.
type BitboardState struct {
	pieces [types.PieceTypeLength]types.Bitboard // indexed by PieceType; Empty unused
	colors [2]types.Bitboard                      // indexed by Color

	// EpFile holds the file of a pawn that just double-pushed and can be
	// captured en passant, or -1 if there is none.
	EpFile int8
	Flags  Flags
}

// Occupied returns the union of both colors' bitboards.
func (b *BitboardState) Occupied() types.Bitboard {
	return b.colors[types.White] | b.colors[types.Black]
}

// ColorBoard returns the bitboard of every piece belonging to c.
func (b *BitboardState) ColorBoard(c types.Color) types.Bitboard {
	return b.colors[c]
}

// PieceBoard returns the bitboard of every piece of kind pt (either color).
func (b *BitboardState) PieceBoard(pt types.PieceType) types.Bitboard {
	return b.pieces[pt]
}

// PiecesOf returns the bitboard of pieces of kind pt belonging to c.
func (b *BitboardState) PiecesOf(c types.Color, pt types.PieceType) types.Bitboard {
	return b.pieces[pt] & b.colors[c]
}

func (b *BitboardState) addPiece(c types.Color, pt types.PieceType, sq types.Square) {
	b.pieces[pt].PushSquare(sq)
	b.colors[c].PushSquare(sq)
}

func (b *BitboardState) removePiece(c types.Color, pt types.PieceType, sq types.Square) {
	b.pieces[pt].PopSquare(sq)
	b.colors[c].PopSquare(sq)
}

// FromFENPlacement parses the piece-placement, side-to-move, castling and
// en-passant fields (the first four FEN fields) into a fresh BitboardState.
func FromFENPlacement(placement, sideToMove, castling, epSquare string) (*BitboardState, error) {
	b := &BitboardState{EpFile: -1}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("malformed FEN: expected 8 ranks, got %d", len(ranks))
	}
	for row, rankStr := range ranks {
		col := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			if util.IsDigit(ch) {
				if ch == '0' || ch > '8' {
					return nil, fmt.Errorf("malformed FEN: invalid empty-square count %q", ch)
				}
				col += int(ch - '0')
				continue
			}
			piece, ok := types.PieceFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("malformed FEN: invalid piece character %q", ch)
			}
			if col > 7 {
				return nil, fmt.Errorf("malformed FEN: rank %d overflows", row+1)
			}
			sq := types.Square(row*8 + col)
			b.addPiece(piece.ColorOf(), piece.TypeOf(), sq)
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("malformed FEN: rank %d has %d files, want 8", row+1, col)
		}
	}

	switch sideToMove {
	case "w":
		b.Flags = WithSideToMove(b.Flags, types.White)
	case "b":
		b.Flags = WithSideToMove(b.Flags, types.Black)
	default:
		return nil, fmt.Errorf("malformed FEN: invalid side to move %q", sideToMove)
	}

	castle, ok := ParseCastling(castling)
	if !ok {
		return nil, fmt.Errorf("malformed FEN: invalid castling rights %q", castling)
	}
	b.Flags |= castle

	if epSquare != "-" {
		sq := types.SquareFromString(epSquare)
		if sq == types.SqNone {
			return nil, fmt.Errorf("malformed FEN: invalid en-passant square %q", epSquare)
		}
		b.EpFile = int8(sq.FileOf())
	}

	return b, nil
}

// PlacementToFEN reconstructs the piece-placement field.
func (b *BitboardState) PlacementToFEN(mb *Mailbox) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			sq := types.Square(row*8 + col)
			p := mb.At(sq)
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// EpSquareString renders the en-passant target square for FEN output.
// The rank is derived from the side to move: a black double push (file
// bit set while it is now White's turn) leaves its target on rank 6;
// a white double push leaves its target on rank 3.
func (b *BitboardState) EpSquareString() string {
	if b.EpFile < 0 {
		return "-"
	}
	rank := types.Rank6
	if b.Flags.SideToMove() == types.Black {
		rank = types.Rank3
	}
	return types.MakeSquare(types.File(b.EpFile), rank).String()
}

// ToFEN reconstructs the four leading FEN fields.
func (b *BitboardState) ToFEN(mb *Mailbox) string {
	return fmt.Sprintf("%s %s %s %s",
		b.PlacementToFEN(mb), b.Flags.SideToMove(), b.Flags.CastlingString(), b.EpSquareString())
}

// GenerateAttacks returns the union of attack squares for every piece of
// kind pt belonging to c, given the current occupancy.
func (b *BitboardState) GenerateAttacks(c types.Color, pt types.PieceType) types.Bitboard {
	occ := b.Occupied()
	var union types.Bitboard
	pieces := b.PiecesOf(c, pt)
	if pt == types.Pawn {
		for pieces != 0 {
			sq := pieces.PopLsb()
			union |= attacks.PawnAttacks(c, sq)
		}
		return union
	}
	for pieces != 0 {
		sq := pieces.PopLsb()
		union |= attacks.Attacks(pt, sq, occ)
	}
	return union
}

// GenerateAllAttacks aggregates the attack union over every piece kind c owns.
func (b *BitboardState) GenerateAllAttacks(c types.Color) types.Bitboard {
	return b.GenerateAllAttacksOn(c, b.Occupied())
}

// GenerateAllAttacksOn is GenerateAllAttacks but against an explicit
// occupancy, used to "see through" the defending king when testing
// whether a king move would still leave it in a slider's line of fire.
func (b *BitboardState) GenerateAllAttacksOn(c types.Color, occ types.Bitboard) types.Bitboard {
	var union types.Bitboard
	pawns := b.PiecesOf(c, types.Pawn)
	for pawns != 0 {
		union |= attacks.PawnAttacks(c, pawns.PopLsb())
	}
	for _, pt := range [4]types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen} {
		pieces := b.PiecesOf(c, pt)
		for pieces != 0 {
			union |= attacks.Attacks(pt, pieces.PopLsb(), occ)
		}
	}
	union |= attacks.Attacks(types.King, b.KingSquare(c), occ)
	return union
}

// IsInCheck reports whether c's king sits on an attacked square.
func (b *BitboardState) IsInCheck(c types.Color, opponentAttacks types.Bitboard) bool {
	return b.PiecesOf(c, types.King)&opponentAttacks != 0
}

// KingSquare returns the (sole) king square for c.
func (b *BitboardState) KingSquare(c types.Color) types.Square {
	return b.PiecesOf(c, types.King).Lsb()
}

// ApplyMove mutates the bitboards to reflect flags, which the mailbox
// computed for the same move a moment earlier. Both layers consume the
// identical flags word so they can never disagree about what happened.
func (b *BitboardState) ApplyMove(mv types.Move, flags types.MoveFlags) {
	mover := flags.Mover()
	pt := flags.PieceType()

	if flags.IsEnPassant() {
		capturedSq := epCapturedSquare(mv.End, mover)
		b.removePiece(mover.Flip(), types.Pawn, capturedSq)
		b.removePiece(mover, types.Pawn, mv.Start)
		b.addPiece(mover, types.Pawn, mv.End)
	} else if flags.IsCapture() {
		b.removePiece(mover.Flip(), flags.Captured(), mv.End)
		b.removePiece(mover, pt, mv.Start)
		b.addPiece(mover, pt, mv.End)
	} else {
		b.removePiece(mover, pt, mv.Start)
		b.addPiece(mover, pt, mv.End)
	}

	if flags.IsPromotion() {
		b.removePiece(mover, types.Pawn, mv.End)
		b.addPiece(mover, mv.Promotion, mv.End)
	}

	if flags.IsCastle() {
		rookFrom, rookTo := castleRookSquares(mv.End, mover)
		b.removePiece(mover, types.Rook, rookFrom)
		b.addPiece(mover, types.Rook, rookTo)
	}

	b.updateEnPassant(mv, flags)
	b.updateCastlingRights(mv, flags)
	b.Flags = WithSideToMove(b.Flags, mover.Flip())
}

func (b *BitboardState) updateEnPassant(mv types.Move, flags types.MoveFlags) {
	b.EpFile = -1
	if flags.PieceType() != types.Pawn {
		return
	}
	startRow, endRow := int(mv.Start)/8, int(mv.End)/8
	if absInt(startRow-endRow) != 2 {
		return
	}
	mover := flags.Mover()
	file := mv.End.FileOf()
	// the pawn must actually be capturable: an opposing pawn sits
	// adjacent on the landing rank.
	var adjacent types.Bitboard
	if file > types.FileA {
		adjacent.PushSquare(types.Square(int(mv.End) - 1))
	}
	if file < types.FileH {
		adjacent.PushSquare(types.Square(int(mv.End) + 1))
	}
	if adjacent&b.PiecesOf(mover.Flip(), types.Pawn) != 0 {
		b.EpFile = int8(file)
	}
}

func (b *BitboardState) updateCastlingRights(mv types.Move, flags types.MoveFlags) {
	mover := flags.Mover()
	if flags.PieceType() == types.King {
		b.Flags = b.Flags.Remove(kingSideRight(mover) | queenSideRight(mover))
	}
	clearRookRight := func(sq types.Square) {
		for _, c := range [2]types.Color{types.White, types.Black} {
			homeRank := types.Rank1
			if c == types.Black {
				homeRank = types.Rank8
			}
			if sq == types.MakeSquare(types.FileH, homeRank) {
				b.Flags = b.Flags.Remove(kingSideRight(c))
			}
			if sq == types.MakeSquare(types.FileA, homeRank) {
				b.Flags = b.Flags.Remove(queenSideRight(c))
			}
		}
	}
	clearRookRight(mv.Start)
	clearRookRight(mv.End)
}

func absInt(v int) int {
	return util.Abs(v)
}

// epCapturedSquare returns the square of the pawn displaced by an
// en-passant capture landing on dest, made by mover.
func epCapturedSquare(dest types.Square, mover types.Color) types.Square {
	if mover == types.White {
		return dest.To(types.South)
	}
	return dest.To(types.North)
}

// castleRookSquares returns the rook's home and destination square for
// the castle whose king lands on kingDest.
func castleRookSquares(kingDest types.Square, mover types.Color) (from, to types.Square) {
	homeRank := types.Rank1
	if mover == types.Black {
		homeRank = types.Rank8
	}
	if kingDest.FileOf() == types.FileG {
		return types.MakeSquare(types.FileH, homeRank), types.MakeSquare(types.FileF, homeRank)
	}
	return types.MakeSquare(types.FileA, homeRank), types.MakeSquare(types.FileD, homeRank)
}
