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

package engine

import (
	"sync"

	"github.com/tkellan/chessmagic/internal/movegen"
	"github.com/tkellan/chessmagic/internal/position"
	"github.com/tkellan/chessmagic/internal/types"
)

// pieceValue gives a static material value per piece type, centipawns.
var pieceValue = [types.PieceTypeLength]int{
	types.Empty:  0,
	types.Pawn:   100,
	types.Knight: 320,
	types.Bishop: 330,
	types.Rook:   500,
	types.Queen:  900,
	types.King:   20000,
}

// MaterialEngine is a reference ChessEngine: it picks the legal move
// that maximizes its own material after one ply; a move that delivers
// checkmate outranks any material gain, and among equal scores the first
// move generated wins. It exists to give the protocol adapter something
// to drive for "go" without depending on a real search.
type MaterialEngine struct {
	mu  sync.Mutex
	pos *position.Chessboard
}

// NewMaterialEngine builds a MaterialEngine sitting on the start position.
func NewMaterialEngine() *MaterialEngine {
	return &MaterialEngine{pos: position.NewStartPosition()}
}

// Position implements ChessEngine.
func (e *MaterialEngine) Position(fen string, moves []string) error {
	cb, err := position.FromFENWithMoves(fen, moves)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.pos = cb
	e.mu.Unlock()
	return nil
}

// CurrentBestMove implements ChessEngine.
func (e *MaterialEngine) CurrentBestMove() (types.Move, int, bool) {
	e.mu.Lock()
	cb := e.pos
	e.mu.Unlock()

	legal := movegen.LegalMoves(cb)
	if len(legal) == 0 {
		return types.Move{}, 0, false
	}

	us := cb.SideToMove()
	best := legal[0]
	bestScore := materialBalance(cb, legal[0], us)
	for _, m := range legal[1:] {
		score := materialBalance(cb, m, us)
		if score > bestScore {
			bestScore, best = score, m
		}
	}
	return best, bestScore, true
}

// materialBalance evaluates the material balance, from us's perspective,
// one ply after playing m.
func materialBalance(cb *position.Chessboard, m types.Move, us types.Color) int {
	child := cb.Clone()
	child.MakeMoveUnchecked(m)

	balance := 0
	for pt := types.Pawn; pt < types.PieceTypeLength; pt++ {
		balance += pieceValue[pt] * child.Bb.PiecesOf(us, pt).PopCount()
		balance -= pieceValue[pt] * child.Bb.PiecesOf(us.Flip(), pt).PopCount()
	}
	if movegen.IsCheckmate(child) {
		balance += 100000
	}
	return balance
}
