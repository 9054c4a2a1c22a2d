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

package movegen

import (
	"golang.org/x/sync/errgroup"

	"github.com/tkellan/chessmagic/internal/config"
	"github.com/tkellan/chessmagic/internal/position"
	"github.com/tkellan/chessmagic/internal/types"
)

// Perft counts the legal leaf nodes exactly depth plies below cb. It is
// the standard correctness oracle for a move generator: a wrong count at
// some depth pinpoints a generator bug even when shallower depths agree.
func Perft(cb *position.Chessboard, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(cb)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := cb.Clone()
		child.MakeMoveUnchecked(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is one root move's subtree count from PerftDivide.
type DivideEntry struct {
	Move  types.Move
	Nodes uint64
}

// PerftDivide returns, for every legal root move, the perft count of the
// resulting subtree at depth-1. Used to localize move-generator bugs by
// comparing against a reference engine's divide output.
func PerftDivide(cb *position.Chessboard, depth int) []DivideEntry {
	moves := LegalMoves(cb)
	entries := make([]DivideEntry, len(moves))

	// Each root move owns its own Chessboard clone; the magic tables
	// are shared, read-only and safe under concurrent lookup, so the
	// subtrees can run across goroutines without any locking. A
	// buffered semaphore caps concurrency at config.Settings.Engine's
	// PerftWorkers when it is set, leaving it unbounded otherwise.
	var sem chan struct{}
	if workers := config.Settings.Engine.PerftWorkers; workers > 0 {
		sem = make(chan struct{}, workers)
	}

	var g errgroup.Group
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			child := cb.Clone()
			child.MakeMoveUnchecked(m)
			var n uint64
			if depth <= 1 {
				n = 1
			} else {
				n = Perft(child, depth-1)
			}
			entries[i] = DivideEntry{Move: m, Nodes: n}
			return nil
		})
	}
	_ = g.Wait()
	return entries
}
