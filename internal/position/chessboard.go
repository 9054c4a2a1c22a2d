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

	"github.com/tkellan/chessmagic/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Chessboard composes the bitboard state and the mailbox and keeps them
// consistent across every move application. It is the unit that FEN
// parsing, move generation and perft all operate on, and it is cheap to
// clone: one small struct plus a 64-byte array.
type Chessboard struct {
	Bb        BitboardState
	Mb        Mailbox
	Halfmove  int
	Fullmove  int
}

// FromFEN builds a Chessboard from a complete six-field FEN string.
func FromFEN(fen string) (*Chessboard, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("malformed FEN: expected 6 fields, got %d", len(fields))
	}
	placement, stm, castle, ep, halfmove, fullmove := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	bb, err := FromFENPlacement(placement, stm, castle, ep)
	if err != nil {
		return nil, err
	}
	mb, err := FromPlacement(placement)
	if err != nil {
		return nil, err
	}
	hm, err := strconv.Atoi(halfmove)
	if err != nil {
		return nil, fmt.Errorf("malformed FEN: invalid halfmove clock %q", halfmove)
	}
	fm, err := strconv.Atoi(fullmove)
	if err != nil {
		return nil, fmt.Errorf("malformed FEN: invalid fullmove number %q", fullmove)
	}
	return &Chessboard{Bb: *bb, Mb: *mb, Halfmove: hm, Fullmove: fm}, nil
}

// NewStartPosition builds a Chessboard at the standard starting position.
func NewStartPosition() *Chessboard {
	cb, err := FromFEN(StartFEN)
	if err != nil {
		panic("invariant violation: start FEN failed to parse: " + err.Error())
	}
	return cb
}

// FromFENWithMoves builds a Chessboard from a base FEN and then applies
// each UCI move in order.
func FromFENWithMoves(fen string, moves []string) (*Chessboard, error) {
	cb, err := FromFEN(fen)
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		mv, ok := types.MoveFromUci(m)
		if !ok {
			return nil, fmt.Errorf("malformed move: %q", m)
		}
		cb.MakeMoveUnchecked(mv)
	}
	return cb, nil
}

// ToFEN reconstructs the full six-field FEN string.
func (cb *Chessboard) ToFEN() string {
	return fmt.Sprintf("%s %d %d", cb.Bb.ToFEN(&cb.Mb), cb.Halfmove, cb.Fullmove)
}

// Clone produces an independent deep copy; safe to mutate without
// affecting cb. Cheap: one small struct plus a 64-byte array, no
// pointers or slices to chase.
func (cb *Chessboard) Clone() *Chessboard {
	clone := *cb
	return &clone
}

// SideToMove returns whose turn it is.
func (cb *Chessboard) SideToMove() types.Color {
	return cb.Bb.Flags.SideToMove()
}

// MakeMoveUnchecked applies mv to both the mailbox and the bitboards and
// advances the game state. It does not validate legality - the caller
// (the legal move generator, or a UCI "position ... moves" replay) is
// responsible for only ever passing moves that are actually legal or
// that came from a generator that only emits legal moves.
func (cb *Chessboard) MakeMoveUnchecked(mv types.Move) {
	flags := cb.Mb.MovePiece(mv)
	cb.Bb.ApplyMove(mv, flags)

	if flags.PieceType() == types.Pawn || flags.IsCapture() {
		cb.Halfmove = 0
	} else {
		cb.Halfmove++
	}
	if flags.Mover() == types.Black {
		cb.Fullmove++
	}
}
