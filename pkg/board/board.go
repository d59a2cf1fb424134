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

// Package board implements a complete chess board along with legal move
// generation, move application, and the other invariants a position
// needs to maintain across a game (castling rights, en passant, the
// fifty-move clock, and an incrementally updated zobrist hash).
package board

import (
	"errors"
	"fmt"

	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/mailbox"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// ErrIllegalMove is returned by Apply when the supplied move is not a
// member of the position's LegalMoves().
var ErrIllegalMove = errors.New("board: illegal move")

// ValidationError reports that a structurally parsed position violates
// one of Board's invariants (missing king, too many pieces, castle
// rights unsupported by piece placement, or a malformed en passant
// target). It is returned by FromPlacement, never panicked.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "board: invalid position: " + e.Reason
}

// Board represents the state of a chessboard at a given position, along
// with the side-to-move dependent data (check/pin masks) needed by the
// move generator. Two Boards compare equal with Equal if and only if
// they describe the same chess position; Hash, Checkers, and Pinned are
// derivable from the rest of the fields and so are excluded from Equal.
type Board struct {
	// position data
	Position mailbox.Board // 8x8 for O(1) piece-on-square lookup
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board
	Kings    [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastleRights    castling.Rights

	// HalfMoveClock counts plies since the last pawn push or capture;
	// a value of 100 or more triggers the fifty-move draw.
	HalfMoveClock uint16
	// FullMoveClock counts completed moves, starting at 1 and
	// incrementing after Black moves.
	FullMoveClock uint16

	// Hash is the zobrist hash of the position.
	Hash zobrist.Key

	// Checkers holds the enemy pieces currently giving check to the
	// side to move's king; Pinned holds the side to move's pieces that
	// are pinned against their own king. Both are recomputed after
	// every Apply/ApplyUnchecked call.
	Checkers bitboard.Board
	Pinned   bitboard.Board
}

// NewStandard returns the Board for the standard chess starting
// position. Its Zobrist equals the XOR of every piece-square key for
// the layout, with the castling-rights key folded in as usual; White
// to move contributes no turn key.
func NewStandard() *Board {
	b, err := FromPlacement(
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		piece.White, castling.All, square.None, 0, 1,
	)
	if err != nil {
		panic("board: standard position failed validation: " + err.Error())
	}
	return b
}

// FromPlacement builds a Board from already-parsed FEN-shaped fields,
// validating the result against Board's structural invariants. Parsing
// the piece-placement string itself is pkg/fen's responsibility; this
// constructor is the shared validated-construction path used by both
// fen.Parse and NewStandard.
func FromPlacement(placement string, stm piece.Color, rights castling.Rights, ep square.Square, halfMove, fullMove uint16) (*Board, error) {
	b := &Board{
		EnPassantTarget: square.None,
	}

	rank := square.Rank(0)
	for _, row := range split(placement, '/') {
		file := square.FileA
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += square.File(ch - '0')
				continue
			}
			if file > square.FileH {
				return nil, &ValidationError{Reason: "rank overflows the board"}
			}
			p := piece.NewFromString(string(ch))
			b.FillSquare(square.New(file, rank), p)
			file++
		}
		if file != square.FileN {
			return nil, &ValidationError{Reason: "rank does not sum to 8 files"}
		}
		rank++
	}
	if rank != square.Rank(square.RankN) {
		return nil, &ValidationError{Reason: "placement does not have 8 ranks"}
	}

	if b.ColorBBs[piece.White].Count() > 16 || b.ColorBBs[piece.Black].Count() > 16 {
		return nil, &ValidationError{Reason: "a side has more than 16 pieces"}
	}
	if b.PieceBBs[piece.King].Count() != 2 ||
		b.King(piece.White) == bitboard.Empty || b.King(piece.Black) == bitboard.Empty {
		return nil, &ValidationError{Reason: "each side must have exactly one king"}
	}

	b.SideToMove = stm
	if stm == piece.Black {
		b.Hash ^= zobrist.SideToMove
	}

	if !validCastleRights(b, rights) {
		return nil, &ValidationError{Reason: "castle rights unsupported by piece placement"}
	}
	b.CastleRights = rights
	b.Hash ^= zobrist.Castling[rights]

	if ep != square.None {
		if err := validEnPassant(b, ep); err != nil {
			return nil, err
		}
		b.EnPassantTarget = ep
		b.Hash ^= zobrist.EnPassant[ep.File()]
	}

	b.HalfMoveClock = halfMove
	b.FullMoveClock = fullMove

	info := computeCheckInfo(b)
	b.Checkers = info.checkers
	b.Pinned = (info.pinnedD | info.pinnedHV) & b.ColorBBs[b.SideToMove]

	if b.Checkers.Count() > 2 {
		return nil, &ValidationError{Reason: "more than two checkers is not reachable from a legal game"}
	}
	if b.IsInCheck(b.SideToMove.Other()) {
		return nil, &ValidationError{Reason: "side not to move is in check"}
	}

	return b, nil
}

func validCastleRights(b *Board, rights castling.Rights) bool {
	check := func(right castling.Rights, king, rook square.Square, rookPiece piece.Piece) bool {
		if rights&right == 0 {
			return true
		}
		return b.Position[king].Type() == piece.King && b.Position[king].Color() == rookPiece.Color() &&
			b.Position[rook] == rookPiece
	}
	return check(castling.WhiteKingside, square.E1, square.H1, piece.WhiteRook) &&
		check(castling.WhiteQueenside, square.E1, square.A1, piece.WhiteRook) &&
		check(castling.BlackKingside, square.E8, square.H8, piece.BlackRook) &&
		check(castling.BlackQueenside, square.E8, square.A8, piece.BlackRook)
}

func validEnPassant(b *Board, ep square.Square) error {
	mover := b.SideToMove.Other()
	var expectedRank square.Rank
	var behind, infront square.Square
	if mover == piece.White {
		expectedRank = square.Rank3
		behind, infront = ep+8, ep-8
	} else {
		expectedRank = square.Rank6
		behind, infront = ep-8, ep+8
	}
	if ep.Rank() != expectedRank {
		return &ValidationError{Reason: "en passant target is on the wrong rank"}
	}
	if b.Position[ep] != piece.NoPiece || b.Position[behind] != piece.NoPiece {
		return &ValidationError{Reason: "en passant target or its shadow square is occupied"}
	}
	if b.Position[infront] != piece.New(piece.Pawn, mover) {
		return &ValidationError{Reason: "en passant target has no double-stepped pawn in front of it"}
	}
	return nil
}

func split(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// String renders the board as an ASCII grid followed by its zobrist
// hash, for debugging.
func (b Board) String() string {
	return fmt.Sprintf("%s\nKey: %016X\n", b.Position, b.Hash)
}

// Equal reports whether b and other describe the same chess position.
// Hash, Checkers, and Pinned are derivable from the rest of the fields
// and so are intentionally excluded from the comparison.
func (b *Board) Equal(other *Board) bool {
	if b.Position != other.Position || b.SideToMove != other.SideToMove ||
		b.EnPassantTarget != other.EnPassantTarget || b.CastleRights != other.CastleRights ||
		b.HalfMoveClock != other.HalfMoveClock || b.FullMoveClock != other.FullMoveClock {
		return false
	}
	return b.PieceBBs == other.PieceBBs && b.ColorBBs == other.ColorBBs
}

// Occupied returns the union of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// ClearSquare removes whatever piece occupies s from every board
// record, XOR-ing its zobrist contribution out.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]
	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places p on s, XOR-ing its zobrist contribution in.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c, t := p.Color(), p.Type()
	b.ColorBBs[c].Set(s)
	if t == piece.King {
		b.Kings[c] = s
	}
	b.PieceBBs[t].Set(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// IsInCheck reports whether c's king is currently attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by a piece of color them.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn[them.Other()][s]&b.Pawns(them) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&b.Knights(them) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&b.King(them) != bitboard.Empty {
		return true
	}

	queens := b.Queens(them)
	if attacks.Bishop(s, occ)&(b.Bishops(them)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(s, occ)&(b.Rooks(them)|queens) != bitboard.Empty
}

func (b *Board) Pawns(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Pawn] & b.ColorBBs[c] }
func (b *Board) Knights(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Knight] & b.ColorBBs[c] }
func (b *Board) Bishops(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Bishop] & b.ColorBBs[c] }
func (b *Board) Rooks(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Rook] & b.ColorBBs[c] }
func (b *Board) Queens(c piece.Color) bitboard.Board  { return b.PieceBBs[piece.Queen] & b.ColorBBs[c] }
func (b *Board) King(c piece.Color) bitboard.Board    { return b.PieceBBs[piece.King] & b.ColorBBs[c] }

// InsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by force: no pawns, rooks, or queens, and at
// most one minor piece on the whole board (one knight and no bishops,
// or one bishop and no knights).
func (b *Board) InsufficientMaterial() bool {
	if b.PieceBBs[piece.Pawn] != bitboard.Empty ||
		b.PieceBBs[piece.Rook] != bitboard.Empty ||
		b.PieceBBs[piece.Queen] != bitboard.Empty {
		return false
	}
	knights := b.PieceBBs[piece.Knight].Count()
	bishops := b.PieceBBs[piece.Bishop].Count()
	return (knights <= 1 && bishops == 0) || (knights == 0 && bishops <= 1)
}

// Move constructs a move.Move from a pair of squares as they would be
// played in the current position, i.e. with FromPiece/IsCapture filled
// in from the board. Promotion is layered on separately by the caller
// via move.Move.SetPromotion.
func (b *Board) Move(from, to square.Square) move.Move {
	p := b.Position[from]
	return move.New(from, to, p, b.Position[to] != piece.NoPiece || to == b.EnPassantTarget && p.Type() == piece.Pawn)
}
