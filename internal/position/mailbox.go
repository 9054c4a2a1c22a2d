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
	"strings"

	"github.com/tkellan/chessmagic/internal/types"
	"github.com/tkellan/chessmagic/internal/util"
)

// Mailbox is a 64-entry array resolving "what is on this square?" in
// O(1). It never consults the bitboards; it is the authoritative oracle
// for captures and is consulted first on every move application, with
// the bitboard layer replaying the same decision from the flags word it
// produces.
type Mailbox struct {
	squares [64]types.Piece
}

// At returns the piece occupying sq (PieceNone if empty).
func (mb *Mailbox) At(sq types.Square) types.Piece {
	return mb.squares[sq]
}

// FromPlacement fills the mailbox from a FEN piece-placement field,
// mirroring the same parse the bitboard layer performs.
func FromPlacement(placement string) (*Mailbox, error) {
	mb := &Mailbox{}
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
			mb.squares[row*8+col] = piece
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("malformed FEN: rank %d has %d files, want 8", row+1, col)
		}
	}
	return mb, nil
}

// MovePiece mutates the mailbox for mv and returns the 16-bit flags word
// describing what happened, to be handed unchanged to the bitboard
// layer.
func (mb *Mailbox) MovePiece(mv types.Move) types.MoveFlags {
	moving := mb.squares[mv.Start]
	mover := moving.ColorOf()
	pt := moving.TypeOf()

	isCastle := pt == types.King && absSq(mv.Start, mv.End) == 2
	if isCastle {
		rookFrom, rookTo := castleRookSquares(mv.End, mover)
		mb.squares[mv.End] = moving
		mb.squares[mv.Start] = types.PieceNone
		mb.squares[rookTo] = mb.squares[rookFrom]
		mb.squares[rookFrom] = types.PieceNone
		return types.MakeMoveFlags(pt, mover, types.Empty, true, false, false)
	}

	isEnPassant := pt == types.Pawn && mv.Start.FileOf() != mv.End.FileOf() && mb.squares[mv.End].IsEmpty()
	if isEnPassant {
		capturedSq := epCapturedSquare(mv.End, mover)
		mb.squares[mv.End] = moving
		mb.squares[mv.Start] = types.PieceNone
		mb.squares[capturedSq] = types.PieceNone
		return types.MakeMoveFlags(pt, mover, types.Pawn, false, true, false)
	}

	captured := mb.squares[mv.End]
	isPromotion := pt == types.Pawn && mv.End.RankOf() == mover.PromotionRank()
	if isPromotion {
		mb.squares[mv.End] = types.MakePiece(mover, mv.Promotion)
	} else {
		mb.squares[mv.End] = moving
	}
	mb.squares[mv.Start] = types.PieceNone

	return types.MakeMoveFlags(pt, mover, captured.TypeOf(), false, false, isPromotion)
}

func absSq(a, b types.Square) int {
	return util.Abs(int(a) - int(b))
}
