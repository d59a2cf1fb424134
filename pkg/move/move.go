// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package move declares the packed representation of a chess move.
package move

import (
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Move represents a chess move, packed into 32 bits so move lists can
// be plain value slices with no pointer chasing in the search hot path.
//
// Format: MSB -> LSB
// [20 isCapture bool   1] \
// [19 toPiece   piece  4][15 fromPiece piece  4] \
// [11 target square.Square 6][05 source square.Square  6]
type Move uint32

// Null is the "do nothing" move, printed as "0000".
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	fPieceWidth = 4
	tPieceWidth = 4
	tacticWidth = 1

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	fPieceOffset = targetOffset + targetWidth
	tPieceOffset = fPieceOffset + fPieceWidth
	tacticOffset = tPieceOffset + tPieceWidth

	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	fPieceMask = (1 << fPieceWidth) - 1
	tPieceMask = (1 << tPieceWidth) - 1
	tacticMask = (1 << tacticWidth) - 1
)

// New builds a Move. toPiece is initialized equal to fromPiece; use
// SetPromotion to change it for a pawn promoting.
func New(source, target square.Square, fromPiece piece.Piece, isCapture bool) Move {
	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(fromPiece) << fPieceOffset
	m |= Move(fromPiece) << tPieceOffset
	if isCapture {
		m |= tacticMask << tacticOffset
	}
	return m
}

// String renders the move in long algebraic notation, e.g. "e2e4",
// "e1g1" (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		s += m.ToPiece().Type().String()
	}
	return s
}

// SetPromotion returns m with its resulting piece changed to p.
func (m Move) SetPromotion(p piece.Piece) Move {
	m &^= tPieceMask << tPieceOffset
	m |= Move(p) << tPieceOffset
	return m
}

// Source returns the square the move starts from.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the square the move ends on.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// FromPiece returns the piece being moved.
func (m Move) FromPiece() piece.Piece {
	return piece.Piece((m >> fPieceOffset) & fPieceMask)
}

// ToPiece returns the piece occupying Target after the move. Equal to
// FromPiece except for promotions.
func (m Move) ToPiece() piece.Piece {
	return piece.Piece((m >> tPieceOffset) & tPieceMask)
}

// IsCapture reports whether the move captures a piece. En passant
// captures are also marked this way even though the captured pawn is
// not on Target.
func (m Move) IsCapture() bool {
	return (m>>tacticOffset)&tacticMask != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.FromPiece() != m.ToPiece()
}

// IsEnPassant reports whether the move is an en passant capture, given
// the en passant target square of the position it is played in.
func (m Move) IsEnPassant(ep square.Square) bool {
	return ep != square.None && m.Target() == ep && m.FromPiece().Type() == piece.Pawn
}

// IsCastle reports whether the move is a king castling move.
func (m Move) IsCastle() bool {
	if m.FromPiece().Type() != piece.King {
		return false
	}
	switch m.Source() {
	case square.E1:
		return m.Target() == square.G1 || m.Target() == square.C1
	case square.E8:
		return m.Target() == square.G8 || m.Target() == square.C8
	default:
		return false
	}
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsReversible reports whether the move does not reset the fifty-move
// draw clock, i.e. is neither a capture nor a pawn move.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.FromPiece().Type() != piece.Pawn
}
