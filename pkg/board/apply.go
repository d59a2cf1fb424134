// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// rightsLostAt holds the castling right forfeited when a king-start or
// corner-rook square for a color is vacated or captured on, indexed by
// square; every other square carries castling.None.
var rightsLostAt = func() [square.N]castling.Rights {
	var t [square.N]castling.Rights
	t[square.E1] = castling.White
	t[square.A1] = castling.WhiteQueenside
	t[square.H1] = castling.WhiteKingside
	t[square.E8] = castling.Black
	t[square.A8] = castling.BlackQueenside
	t[square.H8] = castling.BlackKingside
	return t
}()

// Apply validates m against LegalMoves and, if legal, returns the
// successor position. The receiver is never modified.
func (b *Board) Apply(m move.Move) (Board, error) {
	for _, legal := range b.LegalMoves(bitboard.Universe) {
		if legal == m {
			return b.ApplyUnchecked(m), nil
		}
	}
	return Board{}, ErrIllegalMove
}

// ApplyUnchecked returns the successor of playing m without verifying
// legality; the caller must guarantee m is a member of b.LegalMoves().
// Violating that precondition leaves the invariants in this package
// undefined.
func (b *Board) ApplyUnchecked(m move.Move) Board {
	next := *b

	source, target := m.Source(), m.Target()
	fromPiece, toPiece := m.FromPiece(), m.ToPiece()
	pieceType := fromPiece.Type()

	isDoublePush := pieceType == piece.Pawn && abs(int(target)-int(source)) == 16
	isCastle := pieceType == piece.King && abs(int(target)-int(source)) == 2
	isEnPassant := pieceType == piece.Pawn && target == b.EnPassantTarget

	next.HalfMoveClock++
	if pieceType == piece.Pawn || m.IsCapture() {
		next.HalfMoveClock = 0
	}

	if next.EnPassantTarget != square.None {
		next.Hash ^= zobrist.EnPassant[next.EnPassantTarget.File()]
	}
	next.EnPassantTarget = square.None

	captureSq := target
	switch {
	case isDoublePush:
		epTarget := source
		if next.SideToMove == piece.White {
			epTarget -= 8
		} else {
			epTarget += 8
		}
		next.EnPassantTarget = epTarget
		next.Hash ^= zobrist.EnPassant[epTarget.File()]

	case isCastle:
		rookInfo := castling.Rooks[target]
		next.ClearSquare(rookInfo.From)
		next.FillSquare(rookInfo.To, rookInfo.RookType)

	case isEnPassant:
		if next.SideToMove == piece.White {
			captureSq += 8
		} else {
			captureSq -= 8
		}
		next.ClearSquare(captureSq)

	default:
		if m.IsCapture() {
			next.ClearSquare(captureSq)
		}
	}

	next.ClearSquare(source)
	next.FillSquare(target, toPiece)

	next.Hash ^= zobrist.Castling[next.CastleRights]
	next.CastleRights &^= rightsLostAt[source] | rightsLostAt[target]
	next.Hash ^= zobrist.Castling[next.CastleRights]

	next.SideToMove = next.SideToMove.Other()
	next.Hash ^= zobrist.SideToMove
	if next.SideToMove == piece.White {
		next.FullMoveClock++
	}

	info := computeCheckInfo(&next)
	next.Checkers = info.checkers
	next.Pinned = (info.pinnedD | info.pinnedHV) & next.ColorBBs[next.SideToMove]

	return next
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
