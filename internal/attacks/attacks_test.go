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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkellan/chessmagic/internal/types"
)

// TestMagicAttacksMatchNaive checks every square's magic lookup against the
// naive ray-walk reference across every subset of that square's relevant
// occupancy mask - the same enumeration the magic-table builder itself
// draws its reference values from.
func TestMagicAttacksMatchNaive(t *testing.T) {
	for sq := types.Square(0); sq < 64; sq++ {
		mask := rookMagics[sq].Mask
		for _, occ := range types.Subsets(mask) {
			want := slidingAttack(types.RookDirections, sq, occ)
			got := RookAttacks(sq, occ)
			assert.Equal(t, want, got, "rook attacks mismatch at %s over occ %d", sq, occ)
		}
	}
	for sq := types.Square(0); sq < 64; sq++ {
		mask := bishopMagics[sq].Mask
		for _, occ := range types.Subsets(mask) {
			want := slidingAttack(types.BishopDirections, sq, occ)
			got := BishopAttacks(sq, occ)
			assert.Equal(t, want, got, "bishop attacks mismatch at %s over occ %d", sq, occ)
		}
	}
}

func TestQueenAttacksIsUnion(t *testing.T) {
	sq := types.SquareFromString("d4")
	occ := types.SquareBb(types.SquareFromString("d6")) | types.SquareBb(types.SquareFromString("f4"))
	want := RookAttacks(sq, occ) | BishopAttacks(sq, occ)
	assert.Equal(t, want, QueenAttacks(sq, occ))
}

func TestKnightAndKingAttacksCornersAndCenter(t *testing.T) {
	a8Knight := KnightAttacks(types.SqA8)
	assert.Equal(t, 2, a8Knight.PopCount())
	assert.True(t, a8Knight.Has(types.SquareFromString("b6")))
	assert.True(t, a8Knight.Has(types.SquareFromString("c7")))

	d4Knight := KnightAttacks(types.SquareFromString("d4"))
	assert.Equal(t, 8, d4Knight.PopCount())

	a8King := KingAttacks(types.SqA8)
	assert.Equal(t, 3, a8King.PopCount())

	d4King := KingAttacks(types.SquareFromString("d4"))
	assert.Equal(t, 8, d4King.PopCount())
}

func TestPawnAttacksAndPushes(t *testing.T) {
	whitePawnAttacks := PawnAttacks(types.White, types.SquareFromString("e4"))
	assert.True(t, whitePawnAttacks.Has(types.SquareFromString("d5")))
	assert.True(t, whitePawnAttacks.Has(types.SquareFromString("f5")))
	assert.Equal(t, 2, whitePawnAttacks.PopCount())

	blackPawnAttacks := PawnAttacks(types.Black, types.SquareFromString("e4"))
	assert.True(t, blackPawnAttacks.Has(types.SquareFromString("d3")))
	assert.True(t, blackPawnAttacks.Has(types.SquareFromString("f3")))

	var pawns types.Bitboard
	pawns.PushSquare(types.SquareFromString("e2"))
	single := PawnSinglePush(types.White, pawns, types.BbZero)
	assert.True(t, single.Has(types.SquareFromString("e3")))

	double := PawnDoublePush(types.White, pawns, types.BbZero)
	assert.True(t, double.Has(types.SquareFromString("e4")))

	var blocker types.Bitboard
	blocker.PushSquare(types.SquareFromString("e3"))
	blockedDouble := PawnDoublePush(types.White, pawns, blocker)
	assert.Equal(t, types.BbZero, blockedDouble)
}

func TestCastleDestinations(t *testing.T) {
	dests := CastleDestinations(types.White, true, true, types.BbZero)
	assert.True(t, dests.Has(types.SquareFromString("g1")))
	assert.True(t, dests.Has(types.SquareFromString("c1")))

	var blockedF1 types.Bitboard
	blockedF1.PushSquare(types.SquareFromString("f1"))
	dests = CastleDestinations(types.White, true, false, blockedF1)
	assert.False(t, dests.Has(types.SquareFromString("g1")))

	dests = CastleDestinations(types.White, false, false, types.BbZero)
	assert.Equal(t, types.BbZero, dests)
}

func TestXrayAttacksFindsSecondLayer(t *testing.T) {
	king := types.SquareFromString("e1")
	blocker := types.SquareFromString("e2")
	pinner := types.SquareFromString("e8")

	var occ, blockers types.Bitboard
	occ.PushSquare(blocker)
	occ.PushSquare(pinner)
	blockers.PushSquare(blocker)

	xray := XrayAttacks(types.Rook, king, occ, blockers)
	assert.True(t, xray.Has(pinner), "xray should see through the one blocker to the pinner")
}
