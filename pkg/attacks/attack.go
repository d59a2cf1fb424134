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

// Package attacks provides attack-set lookups for every piece type,
// backed by magic bitboards for sliding pieces and flat tables for
// leapers and pawns. All tables are built once at process startup.
package attacks

import (
	"github.com/corvidchess/corvid/pkg/attacks/magic"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

var (
	rookTable   *magic.Table
	bishopTable *magic.Table

	// Knight holds the attack set of a knight on each square.
	Knight [square.N]bitboard.Board
	// King holds the attack set of a king on each square.
	King [square.N]bitboard.Board
	// Pawn holds the attack (capture) set of a pawn on each square,
	// indexed by color then origin square.
	Pawn [piece.ColorN][square.N]bitboard.Board
)

func init() {
	rookTable = magic.NewTable(rookMoves)
	bishopTable = magic.NewTable(bishopMoves)

	for s := square.A8; s <= square.H1; s++ {
		Knight[s] = knightAttacksFrom(s)
		King[s] = kingAttacksFrom(s)
		Pawn[piece.White][s] = whitePawnAttacksFrom(s)
		Pawn[piece.Black][s] = blackPawnAttacksFrom(s)
	}
}

// Of returns the attack set of the given piece from the given square
// given the current blockers. Blockers are unused for non-sliding pieces.
func Of(p piece.Piece, s square.Square, blockers bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, blockers)
	case piece.Rook:
		return Rook(s, blockers)
	case piece.Queen:
		return Queen(s, blockers)
	case piece.King:
		return King[s]
	default:
		panic("attacks: unknown piece type")
	}
}

// PawnPush returns the result of pushing every pawn in pawns forward one square.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// Pawns returns the union of every capture a pawn in pawns could make.
func Pawns(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return PawnsLeft(pawns, c) | PawnsRight(pawns, c)
}

// PawnsLeft returns the result of every pawn in pawns capturing left.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight returns the result of every pawn in pawns capturing right.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}

// Bishop returns the attack set of a bishop on s given the blockers.
func Bishop(s square.Square, blockers bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, blockers)
}

// Rook returns the attack set of a rook on s given the blockers.
func Rook(s square.Square, blockers bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, blockers)
}

// Queen returns the attack set of a queen on s, the union of a rook's
// and a bishop's attack sets from the same square.
func Queen(s square.Square, blockers bitboard.Board) bitboard.Board {
	return Rook(s, blockers) | Bishop(s, blockers)
}

func bishopMoves(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	diagonalAttack := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	antiDiagonalAttack := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])

	attacks := diagonalAttack | antiDiagonalAttack
	if mask {
		attacks &^= bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH
	}
	return attacks
}

func rookMoves(s square.Square, occ bitboard.Board, mask bool) bitboard.Board {
	fileAttacks := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	rankAttacks := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])

	if mask {
		fileAttacks &^= bitboard.Rank1 | bitboard.Rank8
		rankAttacks &^= bitboard.FileA | bitboard.FileH
	}
	return fileAttacks | rankAttacks
}

func whitePawnAttacksFrom(s square.Square) bitboard.Board {
	up := bitboard.Squares[s].North()
	return up.East() | up.West()
}

func blackPawnAttacksFrom(s square.Square) bitboard.Board {
	up := bitboard.Squares[s].South()
	return up.East() | up.West()
}

func knightAttacksFrom(from square.Square) bitboard.Board {
	knight := bitboard.Squares[from]

	north := knight.North().North()
	south := knight.South().South()
	east := knight.East().East()
	west := knight.West().West()

	attacks := north.East() | north.West()
	attacks |= south.East() | south.West()
	attacks |= east.North() | east.South()
	attacks |= west.North() | west.South()

	return attacks
}

func kingAttacksFrom(from square.Square) bitboard.Board {
	king := bitboard.Squares[from]

	north := king.North()
	south := king.South()
	east := king.East()
	west := king.West()

	attacks := north | south | east | west
	attacks |= north.East() | north.West()
	attacks |= south.East() | south.West()

	return attacks
}
