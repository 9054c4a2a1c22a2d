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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareCoordinates(t *testing.T) {
	assert.Equal(t, SqA8, MakeSquare(FileA, Rank8))
	assert.Equal(t, SqH1, MakeSquare(FileH, Rank1))
	assert.Equal(t, "a8", SqA8.String())
	assert.Equal(t, "h1", SqH1.String())
	assert.Equal(t, FileE, MakeSquare(FileE, Rank4).FileOf())
	assert.Equal(t, Rank4, MakeSquare(FileE, Rank4).RankOf())
}

func TestSquareFromStringRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "h8", "e4", "d5", "a8", "h1"} {
		sq := SquareFromString(s)
		assert.True(t, sq.IsValid())
		assert.Equal(t, s, sq.String())
	}
	assert.Equal(t, SqNone, SquareFromString("z9"))
	assert.Equal(t, SqNone, SquareFromString("e"))
}

func TestSquareToDirectionEdges(t *testing.T) {
	assert.Equal(t, SqNone, SqA8.To(West))
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqNone, SqH1.To(East))
	assert.Equal(t, SqNone, SqH1.To(South))

	e4 := SquareFromString("e4")
	assert.Equal(t, "e5", e4.To(North).String())
	assert.Equal(t, "e3", e4.To(South).String())
	assert.Equal(t, "f4", e4.To(East).String())
	assert.Equal(t, "d4", e4.To(West).String())
}

func TestColorFlipAndDirections(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, North, White.MoveDirection())
	assert.Equal(t, South, Black.MoveDirection())
	assert.Equal(t, Rank8, White.PromotionRank())
	assert.Equal(t, Rank1, Black.PromotionRank())
	assert.Equal(t, Rank2, White.DoublePushRank())
	assert.Equal(t, Rank7, Black.DoublePushRank())
}

func TestPieceCharRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		c  Color
		pt PieceType
		ch byte
	}{
		{White, Pawn, 'P'},
		{White, King, 'K'},
		{Black, Pawn, 'p'},
		{Black, Queen, 'q'},
	} {
		p := MakePiece(tc.c, tc.pt)
		assert.Equal(t, string(tc.ch), p.Char())
		parsed, ok := PieceFromChar(tc.ch)
		assert.True(t, ok)
		assert.Equal(t, tc.c, parsed.ColorOf())
		assert.Equal(t, tc.pt, parsed.TypeOf())
	}

	_, ok := PieceFromChar('x')
	assert.False(t, ok)
}

func TestMoveStringAndParse(t *testing.T) {
	m := NewMove(SquareFromString("e2"), SquareFromString("e4"))
	assert.Equal(t, "e2e4", m.String())

	promo := NewPromotion(SquareFromString("e7"), SquareFromString("e8"), Queen)
	assert.Equal(t, "e7e8q", promo.String())

	assert.Equal(t, "0000", Move{}.String())

	parsed, ok := MoveFromUci("e7e8q")
	assert.True(t, ok)
	assert.Equal(t, promo, parsed)

	_, ok = MoveFromUci("garbage")
	assert.False(t, ok)
	_, ok = MoveFromUci("e7e8x")
	assert.False(t, ok)
}

func TestMoveFlagsRoundTrip(t *testing.T) {
	f := MakeMoveFlags(Rook, White, Knight, false, false, false)
	assert.Equal(t, Rook, f.PieceType())
	assert.Equal(t, White, f.Mover())
	assert.Equal(t, Knight, f.Captured())
	assert.True(t, f.IsCapture())
	assert.False(t, f.IsCastle())
	assert.False(t, f.IsEnPassant())
	assert.False(t, f.IsPromotion())

	ep := MakeMoveFlags(Pawn, Black, Pawn, false, true, false)
	assert.True(t, ep.IsEnPassant())
	assert.True(t, ep.IsCapture())

	castle := MakeMoveFlags(King, White, Empty, true, false, false)
	assert.True(t, castle.IsCastle())
	assert.False(t, castle.IsCapture())
}

func TestBitboardSetPopAndSubsets(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqA8)
	b.PushSquare(SqH1)
	assert.True(t, b.Has(SqA8))
	assert.Equal(t, 2, b.PopCount())
	assert.Equal(t, SqA8, b.Lsb())

	b.PopSquare(SqA8)
	assert.False(t, b.Has(SqA8))
	assert.Equal(t, 1, b.PopCount())

	mask := FileABb
	subsets := Subsets(mask)
	assert.Equal(t, 1<<mask.PopCount(), len(subsets))
	seen := map[Bitboard]bool{}
	for _, s := range subsets {
		assert.Equal(t, s, s&mask)
		seen[s] = true
	}
	assert.True(t, seen[BbZero])
	assert.True(t, seen[mask])
}

func TestFillBetween(t *testing.T) {
	a1 := SquareFromString("a1")
	a4 := SquareFromString("a4")
	between := FillBetween(a1, a4)
	assert.True(t, between.Has(a1))
	assert.True(t, between.Has(a4))
	assert.True(t, between.Has(SquareFromString("a2")))
	assert.True(t, between.Has(SquareFromString("a3")))
	assert.False(t, between.Has(SquareFromString("a5")))

	assert.Equal(t, FillBetween(a1, a4), FillBetween(a4, a1))
}
