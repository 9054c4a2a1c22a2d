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

import "github.com/tkellan/chessmagic/internal/types"

var knightSteps = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingSteps = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

func initNonSlidingAttacks() {
	for sq := types.Square(0); sq < 64; sq++ {
		row, col := int(sq)/8, int(sq)%8
		pseudoKnight[sq] = stepAttacks(row, col, knightSteps[:])
		pseudoKing[sq] = stepAttacks(row, col, kingSteps[:])
	}
	for sq := types.Square(0); sq < 64; sq++ {
		pseudoPawnAttacks[types.White][sq] = pawnAttackFrom(sq, types.White)
		pseudoPawnAttacks[types.Black][sq] = pawnAttackFrom(sq, types.Black)
	}
}

func stepAttacks(row, col int, steps [][2]int) types.Bitboard {
	var b types.Bitboard
	for _, s := range steps {
		r, c := row+s[0], col+s[1]
		if r < 0 || r > 7 || c < 0 || c > 7 {
			continue
		}
		b.PushSquare(types.Square(r*8 + c))
	}
	return b
}

func pawnAttackFrom(sq types.Square, c types.Color) types.Bitboard {
	var b types.Bitboard
	dir := c.MoveDirection()
	for _, d := range diagonalsOf(dir) {
		if t := sq.To(d); t.IsValid() {
			b.PushSquare(t)
		}
	}
	return b
}

func diagonalsOf(forward types.Direction) []types.Direction {
	if forward == types.North {
		return []types.Direction{types.Northeast, types.Northwest}
	}
	return []types.Direction{types.Southeast, types.Southwest}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq types.Square) types.Bitboard { return pseudoKnight[sq] }

// KingAttacks returns the one-step king attack set from sq (castling excluded).
func KingAttacks(sq types.Square) types.Bitboard { return pseudoKing[sq] }

// PawnAttacks returns the two diagonal capture squares for a pawn of
// color c on sq (file-safe; does not check that anything occupies them).
func PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	return pseudoPawnAttacks[c][sq]
}

// PawnSinglePush returns the single-square forward push targets for every
// pawn in pawns, given the board occupancy.
func PawnSinglePush(c types.Color, pawns, occupied types.Bitboard) types.Bitboard {
	var push types.Bitboard
	if c == types.White {
		push = pawns.ShiftNorth()
	} else {
		push = pawns.ShiftSouth()
	}
	return push &^ occupied
}

// PawnDoublePush returns the double-square push targets for pawns still
// on their starting rank, requiring both the intermediate and
// destination squares to be empty.
func PawnDoublePush(c types.Color, pawns, occupied types.Bitboard) types.Bitboard {
	startRankMask := rankMaskConst(c.DoublePushRank())
	singleTargets := PawnSinglePush(c, pawns&startRankMask, occupied)
	return PawnSinglePush(c, singleTargets, occupied)
}

func rankMaskConst(r types.Rank) types.Bitboard {
	var b types.Bitboard
	for f := types.FileA; f.IsValid(); f++ {
		b.PushSquare(types.MakeSquare(f, r))
	}
	return b
}

// CastleDestinations returns the king destination squares (g-file and/or
// c-file of the relevant back rank) for which the castling right is
// still held and the path between king and rook is empty. It does not
// check that the king is clear of attack along the way - that is the
// legal-move layer's job.
func CastleDestinations(c types.Color, canKingSide, canQueenSide bool, occupied types.Bitboard) types.Bitboard {
	var dests types.Bitboard
	rank := types.Rank8
	if c == types.White {
		rank = types.Rank1
	}
	if canKingSide {
		f1 := types.MakeSquare(types.FileF, rank)
		g1 := types.MakeSquare(types.FileG, rank)
		if !occupied.Has(f1) && !occupied.Has(g1) {
			dests.PushSquare(g1)
		}
	}
	if canQueenSide {
		b1 := types.MakeSquare(types.FileB, rank)
		c1 := types.MakeSquare(types.FileC, rank)
		d1 := types.MakeSquare(types.FileD, rank)
		if !occupied.Has(b1) && !occupied.Has(c1) && !occupied.Has(d1) {
			dests.PushSquare(c1)
		}
	}
	return dests
}
