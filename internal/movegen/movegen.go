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

// Package movegen generates fully-legal moves for a position by masking
// pseudo-attacks with checker, pin and castling-safety constraints,
// rather than generating pseudo-legal moves and discarding illegal ones
// after the fact.
package movegen

import (
	"github.com/tkellan/chessmagic/internal/attacks"
	"github.com/tkellan/chessmagic/internal/position"
	"github.com/tkellan/chessmagic/internal/types"
)

var officerKinds = [4]types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen}

// LegalMoves returns every legal move available to the side to move.
func LegalMoves(cb *position.Chessboard) []types.Move {
	moves := make([]types.Move, 0, 48)

	us := cb.SideToMove()
	them := us.Flip()
	occ := cb.Bb.Occupied()
	ownOcc := cb.Bb.ColorBoard(us)
	oppOcc := cb.Bb.ColorBoard(them)
	king := cb.Bb.KingSquare(us)

	oppKnights := cb.Bb.PiecesOf(them, types.Knight)
	oppBishops := cb.Bb.PiecesOf(them, types.Bishop)
	oppRooks := cb.Bb.PiecesOf(them, types.Rook)
	oppQueens := cb.Bb.PiecesOf(them, types.Queen)
	oppPawns := cb.Bb.PiecesOf(them, types.Pawn)

	checkers := (attacks.KnightAttacks(king) & oppKnights) |
		(attacks.PawnAttacks(us, king) & oppPawns) |
		(attacks.BishopAttacks(king, occ) & (oppBishops | oppQueens)) |
		(attacks.RookAttacks(king, occ) & (oppRooks | oppQueens))
	numCheckers := checkers.PopCount()

	occWithoutKing := occ &^ types.SquareBb(king)
	oppAttacks := cb.Bb.GenerateAllAttacksOn(them, occWithoutKing)

	// King moves are always considered, in every check state.
	kingDests := attacks.KingAttacks(king) &^ ownOcc &^ oppAttacks
	for kingDests != 0 {
		moves = append(moves, types.NewMove(king, kingDests.PopLsb()))
	}

	if numCheckers >= 2 {
		// Double check: only the king can move.
		return moves
	}

	var targetMask types.Bitboard
	if numCheckers == 1 {
		checkerSq := checkers.Lsb()
		checkerType := cb.Mb.At(checkerSq).TypeOf()
		if checkerType.IsSliding() {
			// Interposition squares strictly between king and checker on
			// their shared line, plus the checker's own square.
			line := attacks.RookAttacks
			if !attacks.RookAttacks(king, types.BbZero).Has(checkerSq) {
				line = attacks.BishopAttacks
			}
			targetMask = line(king, types.SquareBb(checkerSq))&line(checkerSq, types.SquareBb(king)) | types.SquareBb(checkerSq)
		} else {
			targetMask = types.SquareBb(checkerSq)
		}
	} else {
		targetMask = types.BbFull

		canKingSide := cb.Bb.Flags.Has(position.WhiteKingSide)
		canQueenSide := cb.Bb.Flags.Has(position.WhiteQueenSide)
		if us == types.Black {
			canKingSide = cb.Bb.Flags.Has(position.BlackKingSide)
			canQueenSide = cb.Bb.Flags.Has(position.BlackQueenSide)
		}
		for dests := attacks.CastleDestinations(us, canKingSide, canQueenSide, occ); dests != 0; {
			dest := dests.PopLsb()
			if !castleTransitAttacked(king, dest, oppAttacks) {
				moves = append(moves, types.NewMove(king, dest))
			}
		}
	}

	pinMask := pinnedPieceMasks(cb, us, king, occ, ownOcc)

	for _, pt := range officerKinds {
		pieces := cb.Bb.PiecesOf(us, pt)
		for pieces != 0 {
			sq := pieces.PopLsb()
			allowed := targetMask &^ ownOcc
			if mask, ok := pinMask[sq]; ok {
				allowed &= mask
			}
			for dests := attacks.Attacks(pt, sq, occ) & allowed; dests != 0; {
				moves = append(moves, types.NewMove(sq, dests.PopLsb()))
			}
		}
	}

	moves = append(moves, pawnMoves(cb, us, them, occ, oppOcc, targetMask, pinMask)...)

	return moves
}

// castleTransitAttacked reports whether any square the king passes
// through (exclusive of its start, which is known safe because there is
// no checker) or lands on is attacked.
func castleTransitAttacked(king, dest types.Square, oppAttacks types.Bitboard) bool {
	step := types.East
	if dest.FileOf() < king.FileOf() {
		step = types.West
	}
	for s := king.To(step); s.IsValid(); s = s.To(step) {
		if oppAttacks.Has(s) {
			return true
		}
		if s == dest {
			break
		}
	}
	return false
}

// pinnedPieceMasks finds every own piece pinned to the king and returns
// the ray (plus the pinner's square) each one is restricted to.
func pinnedPieceMasks(cb *position.Chessboard, us types.Color, king types.Square, occ, ownOcc types.Bitboard) map[types.Square]types.Bitboard {
	them := us.Flip()
	oppBishops := cb.Bb.PiecesOf(them, types.Bishop)
	oppRooks := cb.Bb.PiecesOf(them, types.Rook)
	oppQueens := cb.Bb.PiecesOf(them, types.Queen)

	result := map[types.Square]types.Bitboard{}

	rookPinners := attacks.XrayAttacks(types.Rook, king, occ, ownOcc) & (oppRooks | oppQueens)
	bishopPinners := attacks.XrayAttacks(types.Bishop, king, occ, ownOcc) & (oppBishops | oppQueens)

	for pinners := rookPinners | bishopPinners; pinners != 0; {
		pinnerSq := pinners.PopLsb()
		line := attacks.RookAttacks
		if !attacks.RookAttacks(king, types.BbZero).Has(pinnerSq) {
			line = attacks.BishopAttacks
		}
		interior := line(king, types.SquareBb(pinnerSq)) & line(pinnerSq, types.SquareBb(king))
		ray := interior | types.SquareBb(pinnerSq)
		blockers := interior & ownOcc
		if blockers.PopCount() == 1 {
			result[blockers.Lsb()] = ray
		}
	}
	return result
}

// pawnMoves generates pushes, captures, en-passant and promotions for
// every pawn of us.
func pawnMoves(cb *position.Chessboard, us, them types.Color, occ, oppOcc types.Bitboard, targetMask types.Bitboard, pinMask map[types.Square]types.Bitboard) []types.Move {
	var moves []types.Move
	dir := us.MoveDirection()
	promotionRank := us.PromotionRank()

	pawns := cb.Bb.PiecesOf(us, types.Pawn)
	for p := pawns; p != 0; {
		from := p.PopLsb()
		allowed := types.BbFull
		if mask, ok := pinMask[from]; ok {
			allowed = mask
		}

		if one := from.To(dir); one.IsValid() && !occ.Has(one) {
			appendPawnDest(&moves, from, one, promotionRank, allowed, targetMask)
			if from.RankOf() == us.DoublePushRank() {
				if two := one.To(dir); two.IsValid() && !occ.Has(two) {
					appendPawnDest(&moves, from, two, promotionRank, allowed, targetMask)
				}
			}
		}

		for caps := attacks.PawnAttacks(us, from) & oppOcc; caps != 0; {
			to := caps.PopLsb()
			appendPawnDest(&moves, from, to, promotionRank, allowed, targetMask)
		}

		if cb.Bb.EpFile >= 0 {
			epRank := types.Rank6
			if us == types.Black {
				epRank = types.Rank3
			}
			epSq := types.MakeSquare(types.File(cb.Bb.EpFile), epRank)
			if attacks.PawnAttacks(us, from).Has(epSq) && enPassantIsLegal(cb, from, epSq) {
				moves = append(moves, types.NewMove(from, epSq))
			}
		}
	}
	return moves
}

func appendPawnDest(moves *[]types.Move, from, to types.Square, promotionRank types.Rank, allowed, targetMask types.Bitboard) {
	bit := types.SquareBb(to)
	if allowed&bit == 0 || targetMask&bit == 0 {
		return
	}
	if to.RankOf() == promotionRank {
		*moves = append(*moves,
			types.NewPromotion(from, to, types.Queen),
			types.NewPromotion(from, to, types.Rook),
			types.NewPromotion(from, to, types.Bishop),
			types.NewPromotion(from, to, types.Knight),
		)
		return
	}
	*moves = append(*moves, types.NewMove(from, to))
}

// enPassantIsLegal re-verifies an en-passant capture by actually playing
// it out and testing for check. This subsumes both ordinary pin
// reasoning and the rank-5/rank-4 double-pawn self-pin that a plain
// pinned-piece mask cannot express, since the capturing pawn and the
// captured pawn are on different files but the same rank as the king.
func enPassantIsLegal(cb *position.Chessboard, from, to types.Square) bool {
	clone := cb.Clone()
	clone.MakeMoveUnchecked(types.NewMove(from, to))
	us := cb.SideToMove()
	them := us.Flip()
	return !clone.Bb.IsInCheck(us, clone.Bb.GenerateAllAttacks(them))
}

// HasLegalMove reports whether the side to move has any legal move at all.
func HasLegalMove(cb *position.Chessboard) bool {
	return len(LegalMoves(cb)) > 0
}

// IsInCheck reports whether the side to move is currently in check.
func IsInCheck(cb *position.Chessboard) bool {
	us := cb.SideToMove()
	them := us.Flip()
	return cb.Bb.IsInCheck(us, cb.Bb.GenerateAllAttacks(them))
}

// IsCheckmate reports whether the side to move is in check with no legal
// reply.
func IsCheckmate(cb *position.Chessboard) bool {
	return IsInCheck(cb) && !HasLegalMove(cb)
}

// IsStalemate reports whether the side to move is not in check but has
// no legal move.
func IsStalemate(cb *position.Chessboard) bool {
	return !IsInCheck(cb) && !HasLegalMove(cb)
}
