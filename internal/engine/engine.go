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

// Package engine defines the capability the protocol adapter drives to
// answer "go": any search implementation - random, material-counting,
// neural-network-driven - can satisfy it. The adapter never reaches past
// this interface into a concrete search.
package engine

import "github.com/tkellan/chessmagic/internal/types"

// ChessEngine is the capability a search implementation exposes to the
// protocol adapter.
type ChessEngine interface {
	// Position replaces the engine's current analysis position with the
	// given base FEN plus the moves already played from it.
	Position(fen string, moves []string) error

	// CurrentBestMove returns the best move found so far and its score,
	// or ok=false if no move has been found yet (e.g. no legal moves).
	CurrentBestMove() (move types.Move, score int, ok bool)
}
