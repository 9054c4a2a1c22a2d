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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkellan/chessmagic/internal/types"
)

var fenFixtures = []string{
	StartFEN,
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"8/8/8/8/8/8/8/4K2R w K - 0 1",
	"8/8/8/8/8/8/8/R3K3 w Q - 0 1",
	"4k3/8/8/8/8/8/8/4K2R w - - 0 1",
	"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

func TestFromFENRoundTrip(t *testing.T) {
	for _, fen := range fenFixtures {
		cb, err := FromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, cb.ToFEN(), "round trip mismatch for %s", fen)
	}
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not a fen at all",
		"8/8/8/8/8/8/8 w - - 0 1",       // only 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side to move
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1", // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad ep square
		"rnbqkbnr/ppppppppX/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // bad piece char
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		assert.Error(t, err, fen)
	}
}

func TestMailboxAndBitboardsStayConsistent(t *testing.T) {
	cb, err := FromFEN(StartFEN)
	require.NoError(t, err)

	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"} {
		mv, ok := types.MoveFromUci(uci)
		require.True(t, ok, uci)
		cb.MakeMoveUnchecked(mv)
		assertMailboxMatchesBitboards(t, cb)
	}
}

func assertMailboxMatchesBitboards(t *testing.T, cb *Chessboard) {
	t.Helper()
	for sq := types.Square(0); sq < 64; sq++ {
		p := cb.Mb.At(sq)
		if p.IsEmpty() {
			assert.False(t, cb.Bb.Occupied().Has(sq), "mailbox empty but bitboard occupied at %s", sq)
			continue
		}
		assert.True(t, cb.Bb.PiecesOf(p.ColorOf(), p.TypeOf()).Has(sq), "bitboard missing mailbox piece at %s", sq)
	}
}

func TestCastlingMoveUpdatesRookAndRights(t *testing.T) {
	cb, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	mv := types.NewMove(types.SquareFromString("e1"), types.SquareFromString("g1"))
	cb.MakeMoveUnchecked(mv)

	assert.True(t, cb.Mb.At(types.SquareFromString("g1")).TypeOf() == types.King)
	assert.True(t, cb.Mb.At(types.SquareFromString("f1")).TypeOf() == types.Rook)
	assert.True(t, cb.Mb.At(types.SquareFromString("e1")).IsEmpty())
	assert.True(t, cb.Mb.At(types.SquareFromString("h1")).IsEmpty())
	assert.False(t, cb.Bb.Flags.Has(WhiteKingSide))
	assert.False(t, cb.Bb.Flags.Has(WhiteQueenSide))
	assertMailboxMatchesBitboards(t, cb)
}

func TestEnPassantCaptureRemovesPawnAndClearsFile(t *testing.T) {
	cb, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	require.Equal(t, int8(types.FileD), cb.Bb.EpFile)

	mv := types.NewMove(types.SquareFromString("e5"), types.SquareFromString("d6"))
	cb.MakeMoveUnchecked(mv)

	assert.True(t, cb.Mb.At(types.SquareFromString("d5")).IsEmpty(), "captured pawn should be gone")
	assert.Equal(t, types.Pawn, cb.Mb.At(types.SquareFromString("d6")).TypeOf())
	assert.Equal(t, int8(-1), cb.Bb.EpFile)
	assertMailboxMatchesBitboards(t, cb)
}

func TestPromotionReplacesThePawn(t *testing.T) {
	cb, err := FromFEN("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	require.NoError(t, err)

	mv := types.NewPromotion(types.SquareFromString("a7"), types.SquareFromString("a8"), types.Queen)
	cb.MakeMoveUnchecked(mv)

	assert.Equal(t, types.Queen, cb.Mb.At(types.SquareFromString("a8")).TypeOf())
	assert.Equal(t, 1, cb.Bb.PiecesOf(types.White, types.Queen).PopCount())
	assert.Equal(t, 0, cb.Bb.PiecesOf(types.White, types.Pawn).PopCount())
	assertMailboxMatchesBitboards(t, cb)
}

func TestCloneIsIndependent(t *testing.T) {
	cb, err := FromFEN(StartFEN)
	require.NoError(t, err)
	clone := cb.Clone()

	mv, _ := types.MoveFromUci("e2e4")
	clone.MakeMoveUnchecked(mv)

	assert.Equal(t, StartFEN, cb.ToFEN(), "original board must not observe the clone's move")
	assert.NotEqual(t, StartFEN, clone.ToFEN())
}
