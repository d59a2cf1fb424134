// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// genState carries the side-to-move-relative bitboards the generator
// needs; it is rebuilt fresh on every LegalMoves call rather than kept
// on Board, since it is cheap to recompute and would otherwise have to
// be invalidated on every mutation.
type genState struct {
	*Board
	checkInfo

	us, them piece.Color
	down     square.Square

	promotionRank   bitboard.Board
	enPassantRank   bitboard.Board
	doublePushRank  bitboard.Board

	friends, enemies, occupied bitboard.Board
	seenByEnemy                bitboard.Board

	// mask is the caller-supplied destination filter; target narrows it
	// further to every empty-or-enemy square that also resolves check.
	mask   bitboard.Board
	target bitboard.Board
}

func newGenState(b *Board, mask bitboard.Board) *genState {
	s := &genState{Board: b, checkInfo: computeCheckInfo(b)}

	s.us, s.them = b.SideToMove, b.SideToMove.Other()
	s.friends, s.enemies = b.ColorBBs[s.us], b.ColorBBs[s.them]
	s.occupied = s.friends | s.enemies
	s.seenByEnemy = seenSquares(b, s.them)

	if s.us == piece.White {
		s.down = 8
		s.promotionRank, s.enPassantRank, s.doublePushRank = bitboard.Rank8, bitboard.Rank5, bitboard.Rank3
	} else {
		s.down = -8
		s.promotionRank, s.enPassantRank, s.doublePushRank = bitboard.Rank1, bitboard.Rank4, bitboard.Rank6
	}

	s.mask = mask
	s.target = ^s.friends & s.checkMask & mask
	return s
}

// LegalMoves enumerates every legal move of the side to move whose
// destination square is a member of mask; pass bitboard.Universe for
// every legal move, or a narrower mask (e.g. the enemy pieces) to
// enumerate captures only.
func (b *Board) LegalMoves(mask bitboard.Board) []move.Move {
	s := newGenState(b, mask)

	moves := make([]move.Move, 0, 48)

	s.appendKingMoves(&moves, mask)
	if s.checkers.Count() >= 2 {
		return moves // double check: only the king can move
	}

	s.appendKnightMoves(&moves)
	s.appendBishopMoves(&moves)
	s.appendRookMoves(&moves)
	s.appendQueenMoves(&moves)
	s.appendPawnMoves(&moves)

	return moves
}

func (s *genState) appendKingMoves(moves *[]move.Move, mask bitboard.Board) {
	king := piece.New(piece.King, s.us)
	kingSq := s.Kings[s.us]

	targets := attacks.King[kingSq] &^ (s.friends | s.seenByEnemy) & mask
	s.serialize(moves, king, kingSq, targets)

	if s.checkers == bitboard.Empty {
		s.appendCastlingMoves(moves)
	}
}

func (s *genState) appendKnightMoves(moves *[]move.Move) {
	knight := piece.New(piece.Knight, s.us)
	for knights := s.Knights(s.us) &^ (s.pinnedD | s.pinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		s.serialize(moves, knight, from, attacks.Knight[from]&s.target)
	}
}

func (s *genState) appendBishopMoves(moves *[]move.Move) {
	s.appendDiagonalMoves(moves, piece.New(piece.Bishop, s.us), s.Bishops(s.us))
}

func (s *genState) appendRookMoves(moves *[]move.Move) {
	s.appendOrthogonalMoves(moves, piece.New(piece.Rook, s.us), s.Rooks(s.us))
}

func (s *genState) appendQueenMoves(moves *[]move.Move) {
	queen := piece.New(piece.Queen, s.us)
	queens := s.Queens(s.us)
	s.appendDiagonalMoves(moves, queen, queens)
	s.appendOrthogonalMoves(moves, queen, queens)
}

func (s *genState) appendDiagonalMoves(moves *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= s.pinnedHV

	pinned := sliders & s.pinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.serialize(moves, p, from, attacks.Bishop(from, s.occupied)&s.target&s.pinnedD)
	}

	unpinned := sliders &^ s.pinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.serialize(moves, p, from, attacks.Bishop(from, s.occupied)&s.target)
	}
}

func (s *genState) appendOrthogonalMoves(moves *[]move.Move, p piece.Piece, sliders bitboard.Board) {
	sliders &^= s.pinnedD

	pinned := sliders & s.pinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.serialize(moves, p, from, attacks.Rook(from, s.occupied)&s.target&s.pinnedHV)
	}

	unpinned := sliders &^ s.pinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.serialize(moves, p, from, attacks.Rook(from, s.occupied)&s.target)
	}
}

func (s *genState) appendPawnMoves(moves *[]move.Move) {
	down, left, right := s.down, square.Square(-1), square.Square(1)
	p := piece.New(piece.Pawn, s.us)

	pushTarget := s.checkMask & s.mask &^ s.occupied
	captureTarget := s.enemies & s.checkMask & s.mask

	pawns := s.Pawns(s.us)
	attackers := pawns &^ s.pinnedHV
	unpinnedAttackers := attackers &^ s.pinnedD
	pinnedAttackers := attackers & s.pinnedD

	attacksL := attacks.PawnsLeft(unpinnedAttackers, s.us) & captureTarget
	attacksL |= attacks.PawnsLeft(pinnedAttackers, s.us) & captureTarget & s.pinnedD

	attacksR := attacks.PawnsRight(unpinnedAttackers, s.us) & captureTarget
	attacksR |= attacks.PawnsRight(pinnedAttackers, s.us) & captureTarget & s.pinnedD

	for quiet := attacksL &^ s.promotionRank; quiet != bitboard.Empty; {
		to := quiet.Pop()
		*moves = append(*moves, move.New(to+down+right, to, p, true))
	}
	for quiet := attacksR &^ s.promotionRank; quiet != bitboard.Empty; {
		to := quiet.Pop()
		*moves = append(*moves, move.New(to+down+left, to, p, true))
	}
	for promo := attacksL & s.promotionRank; promo != bitboard.Empty; {
		to := promo.Pop()
		appendPromotions(moves, move.New(to+down+right, to, p, true), s.us)
	}
	for promo := attacksR & s.promotionRank; promo != bitboard.Empty; {
		to := promo.Pop()
		appendPromotions(moves, move.New(to+down+left, to, p, true), s.us)
	}

	pushers := pawns &^ s.pinnedD
	unpinnedPushers := pushers &^ s.pinnedHV
	pinnedPushers := pushers & s.pinnedHV

	singleUnpinned := attacks.PawnPush(unpinnedPushers, s.us)
	singlePinned := attacks.PawnPush(pinnedPushers, s.us) & s.pinnedHV
	single := (singleUnpinned | singlePinned) &^ s.occupied

	double := attacks.PawnPush(single&s.doublePushRank, s.us) & pushTarget
	single &= pushTarget

	for quiet := single &^ s.promotionRank; quiet != bitboard.Empty; {
		to := quiet.Pop()
		*moves = append(*moves, move.New(to+down, to, p, false))
	}
	for quiet := double; quiet != bitboard.Empty; {
		to := quiet.Pop()
		*moves = append(*moves, move.New(to+down+down, to, p, false))
	}
	for promo := single & s.promotionRank; promo != bitboard.Empty; {
		to := promo.Pop()
		appendPromotions(moves, move.New(to+down, to, p, false), s.us)
	}

	s.appendEnPassant(moves, p, attackers, down)
}

func (s *genState) appendEnPassant(moves *[]move.Move, p piece.Piece, attackers bitboard.Board, down square.Square) {
	ep := s.EnPassantTarget
	if ep == square.None || !s.mask.IsSet(ep) {
		return
	}

	epPawnSq := ep + down
	epMask := bitboard.Squares[ep] | bitboard.Squares[epPawnSq]
	if s.checkMask&epMask == bitboard.Empty {
		// neither the ep target nor the pawn it captures resolves check
		return
	}

	kingSq := s.Kings[s.us]
	kingOnRank := bitboard.Squares[kingSq] & s.enPassantRank
	enemyRooksQueens := (s.Rooks(s.them) | s.Queens(s.them)) & s.enPassantRank
	possibleRookPin := kingOnRank != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	for fromBB := attacks.Pawn[s.them][ep] & attackers; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if s.pinnedD.IsSet(from) && !s.pinnedD.IsSet(ep) {
			continue // pinned along a diagonal that the capture would leave
		}

		if possibleRookPin {
			withoutPawns := s.occupied &^ (bitboard.Squares[from] | bitboard.Squares[epPawnSq])
			if attacks.Rook(kingSq, withoutPawns)&enemyRooksQueens != bitboard.Empty {
				// removing both pawns discovers a horizontal pin on the king
				continue
			}
		}

		afterCapture := s.occupied&^(bitboard.Squares[from]|bitboard.Squares[epPawnSq]) | bitboard.Squares[ep]
		if attacks.Bishop(kingSq, afterCapture)&(s.Bishops(s.them)|s.Queens(s.them)) != bitboard.Empty {
			// the captured pawn was the last blocker on a diagonal to the king
			continue
		}

		*moves = append(*moves, move.New(from, ep, p, true))
	}
}

func (s *genState) appendCastlingMoves(moves *[]move.Move) {
	switch s.us {
	case piece.White:
		if s.CastleRights&castling.WhiteKingside != 0 && s.mask.IsSet(square.G1) &&
			(s.occupied|s.seenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E1, square.G1, piece.WhiteKing, false))
		}
		if s.CastleRights&castling.WhiteQueenside != 0 && s.mask.IsSet(square.C1) &&
			s.occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.seenByEnemy&bitboard.C1D1 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E1, square.C1, piece.WhiteKing, false))
		}
	case piece.Black:
		if s.CastleRights&castling.BlackKingside != 0 && s.mask.IsSet(square.G8) &&
			(s.occupied|s.seenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E8, square.G8, piece.BlackKing, false))
		}
		if s.CastleRights&castling.BlackQueenside != 0 && s.mask.IsSet(square.C8) &&
			s.occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.seenByEnemy&bitboard.C8D8 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E8, square.C8, piece.BlackKing, false))
		}
	}
}

func (s *genState) serialize(moves *[]move.Move, p piece.Piece, from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		*moves = append(*moves, move.New(from, to, p, s.enemies.IsSet(to)))
	}
}

func appendPromotions(moves *[]move.Move, m move.Move, c piece.Color) {
	for _, promo := range piece.Promotions {
		*moves = append(*moves, m.SetPromotion(piece.New(promo, c)))
	}
}
