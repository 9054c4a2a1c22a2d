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

// Package attacks precomputes the sliding-piece attack tables (magic
// bitboards) and the non-sliding pseudo-attack tables (knight, king,
// pawn) used by every move-generation query.
package attacks

import (
	"github.com/tkellan/chessmagic/internal/types"
)

// magicIndexBits is the fixed per-square index width. It is generous
// enough for every square - tight squares (corners) simply leave most
// of their table unused.
const magicIndexBits = 13
const magicTableSize = 1 << magicIndexBits
const magicShift = 64 - magicIndexBits

// Magic holds the perfect-hash table for a single square and piece kind.
type Magic struct {
	Mask    types.Bitboard
	Number  types.Bitboard
	Attacks []types.Bitboard
}

func (m *Magic) index(occupied types.Bitboard) uint64 {
	return uint64((occupied & m.Mask) * m.Number >> magicShift)
}

var rookMagics [64]Magic
var bishopMagics [64]Magic
var pseudoKnight [64]types.Bitboard
var pseudoKing [64]types.Bitboard
var pseudoPawnAttacks [2][64]types.Bitboard // indexed by Color, then square

func init() {
	initMagics(&rookMagics, types.RookDirections)
	initMagics(&bishopMagics, types.BishopDirections)
	initNonSlidingAttacks()
}

// slidingAttack walks each ray direction from sq until it falls off the
// board or hits an occupied square, accumulating every square visited
// (including the first blocker, excluding sq itself). It is the naive,
// always-correct reference used both to build the magic tables and, in
// tests, to check them.
func slidingAttack(directions [4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	var attack types.Bitboard
	for _, d := range directions {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// relevantMask is the sliding attack set on an empty board, with board
// edges stripped off in the directions perpendicular to travel (edge
// squares never add information because a ray that reaches an edge
// stops there regardless of what, if anything, occupies it).
func relevantMask(directions [4]types.Direction, sq types.Square) types.Bitboard {
	full := slidingAttack(directions, sq, types.BbZero)
	edges := (types.Rank1Bb | types.Rank8Bb) &^ rankMaskOf(sq)
	edges |= (types.FileABb | types.FileHBb) &^ fileMaskOf(sq)
	return full &^ edges
}

func rankMaskOf(sq types.Square) types.Bitboard {
	var b types.Bitboard
	for f := types.FileA; f.IsValid(); f++ {
		b.PushSquare(types.MakeSquare(f, sq.RankOf()))
	}
	return b
}

func fileMaskOf(sq types.Square) types.Bitboard {
	var b types.Bitboard
	for r := types.Rank1; r.IsValid(); r++ {
		b.PushSquare(types.MakeSquare(sq.FileOf(), r))
	}
	return b
}

// initMagics finds, for every square, a magic multiplier that hashes
// every subset of the relevant occupancy mask to a distinct slot holding
// the correct reference attack, and fills in the flat per-square table.
func initMagics(magics *[64]Magic, directions [4]types.Direction) {
	rng := newPrnG(0x2545F4914F6CDD1D)

	for sq := types.Square(0); sq < 64; sq++ {
		m := &magics[sq]
		m.Mask = relevantMask(directions, sq)
		subsets := types.Subsets(m.Mask)
		reference := make([]types.Bitboard, len(subsets))
		for i, occ := range subsets {
			reference[i] = slidingAttack(directions, sq, occ)
		}

		m.Attacks = make([]types.Bitboard, magicTableSize)
		epoch := make([]int, magicTableSize)
		attempt := 0

		for {
			attempt++
			m.Number = types.Bitboard(rng.sparseRand())
			if ((m.Number * m.Mask) >> 56).PopCount() < 6 {
				continue
			}

			collided := false
			for i, occ := range subsets {
				idx := m.index(occ)
				if epoch[idx] != attempt {
					epoch[idx] = attempt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					collided = true
					break
				}
			}
			if !collided {
				break
			}
		}
	}
}

// RookAttacks returns the rook attack set from sq given the current
// occupancy, via the magic lookup table.
func RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// BishopAttacks returns the bishop attack set from sq given the current
// occupancy, via the magic lookup table.
func BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// QueenAttacks is the union of the rook and bishop attack sets.
func QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// Attacks dispatches to the right lookup for any of the five slider/
// leaper kinds handled by the magic and pseudo-attack tables; pawns are
// handled separately by PawnAttacks because they depend on color.
func Attacks(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Rook:
		return RookAttacks(sq, occupied)
	case types.Bishop:
		return BishopAttacks(sq, occupied)
	case types.Queen:
		return QueenAttacks(sq, occupied)
	case types.Knight:
		return pseudoKnight[sq]
	case types.King:
		return pseudoKing[sq]
	default:
		return types.BbZero
	}
}

// XrayAttacks returns the attack set a slider on sq would have if the
// first blocker along each ray (among those in blockers) were
// transparent - used to reconstruct pin rays.
func XrayAttacks(pt types.PieceType, sq types.Square, occupied, blockers types.Bitboard) types.Bitboard {
	attack := Attacks(pt, sq, occupied)
	blockersOnAttack := blockers & attack
	return attack ^ Attacks(pt, sq, occupied^blockersOnAttack)
}

// prnG is the xorshift64star generator used to draw magic candidates -
// deterministic so the build is reproducible across runs.
type prnG struct{ s uint64 }

func newPrnG(seed uint64) *prnG { return &prnG{s: seed} }

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand draws a candidate with a strong density of zero bits by
// ANDing three independent draws together.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
