// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
)

// checkInfo bundles the side-to-move-relative check and pin data the
// move generator needs. checkMask is the set of squares a non-king
// move must land in to resolve check (the checking piece's square,
// plus any squares between it and the king for a sliding checker); it
// is the universal board when the king is not in check, and is not
// consulted in double check (only king moves are legal then). pinnedD/pinnedHV are
// the diagonal/orthogonal pin rays, split because a pinned piece may
// only move along the ray pinning it.
type checkInfo struct {
	checkers  bitboard.Board
	checkMask bitboard.Board
	pinnedD   bitboard.Board
	pinnedHV  bitboard.Board
}

// computeCheckInfo derives checkInfo for the side to move from scratch.
// It backs both Board's persisted Checkers/Pinned fields (recomputed
// after every Apply) and the move generator's richer per-direction view
// (recomputed fresh per LegalMoves call, since the split by direction
// and the blocking-square mask aren't worth persisting on Board).
func computeCheckInfo(b *Board) checkInfo {
	us, them := b.SideToMove, b.SideToMove.Other()
	occ := b.Occupied()
	kingSq := b.Kings[us]

	var info checkInfo

	pawns := b.Pawns(them) & attacks.Pawn[us][kingSq]
	knights := b.Knights(them) & attacks.Knight[kingSq]
	bishops := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, occ)
	rooks := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, occ)

	checkerCount := 0

	switch {
	case pawns != bitboard.Empty:
		info.checkers |= pawns
		info.checkMask |= pawns
		checkerCount++
	case knights != bitboard.Empty:
		info.checkers |= knights
		info.checkMask |= knights
		checkerCount++
	}

	if bishops != bitboard.Empty {
		if bishops.Count() > 1 {
			// two diagonal rays hit the king simultaneously: double
			// check, no single checkMask resolves both.
			checkerCount += 2
			info.checkers |= bishops
		} else {
			bishopSq := bishops.FirstOne()
			info.checkers |= bitboard.Squares[bishopSq]
			info.checkMask |= attacks.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
			checkerCount++
		}
	}

	if checkerCount < 2 && rooks != bitboard.Empty {
		if checkerCount == 0 && rooks.Count() > 1 {
			// likewise for two orthogonal rays.
			checkerCount += 2
			info.checkers |= rooks
		} else {
			rookSq := rooks.FirstOne()
			info.checkers |= bitboard.Squares[rookSq]
			info.checkMask |= attacks.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			checkerCount++
		}
	}

	if checkerCount == 0 {
		info.checkMask = bitboard.Universe
	}

	friends := b.ColorBBs[us]
	enemies := b.ColorBBs[them]

	for rooks := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		ray := attacks.Between[kingSq][rook] | bitboard.Squares[rook]
		if (ray & friends).Count() == 1 {
			info.pinnedHV |= ray
		}
	}

	for bishops := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		ray := attacks.Between[kingSq][bishop] | bitboard.Squares[bishop]
		if (ray & friends).Count() == 1 {
			info.pinnedD |= ray
		}
	}

	return info
}

// seenSquares returns every square attacked by a piece of color by,
// used to forbid the king from moving into or through check. The
// enemy king itself is not treated as a blocker for sliding attacks,
// since it must move away rather than shielding the square behind it.
func seenSquares(b *Board, by piece.Color) bitboard.Board {
	pawns := b.Pawns(by)
	knights := b.Knights(by)
	bishops := b.Bishops(by)
	rooks := b.Rooks(by)
	queens := b.Queens(by)
	kingSq := b.Kings[by]

	blockers := b.Occupied() &^ b.King(by.Other())

	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights != bitboard.Empty {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops != bitboard.Empty {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks != bitboard.Empty {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens != bitboard.Empty {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	return seen | attacks.King[kingSq]
}
