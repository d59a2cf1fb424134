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

// Package piece implements representations of all the chess pieces and
// colors, and related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white
// and lowercase for black. The strings w and b represent the White and
// Black colors respectively.
package piece

// Color represents the color of a Piece.
type Color uint8

// constants representing the two piece colors.
const (
	White Color = iota
	Black
)

// ColorN is the number of colors.
const ColorN = 2

// NewColor creates a Color from the given color id.
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece: invalid color id " + id)
	}
}

// Other returns the color opposite the receiver.
func (c Color) Other() Color {
	return 1 ^ c
}

// String converts a Color into its string representation.
func (c Color) String() string {
	const colorToStr = "wb"
	return string(colorToStr[c])
}

// Type represents the type/kind of a chess piece, independent of color.
type Type uint8

// constants representing chess piece types.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// TypeN is the number of piece types, including NoType.
const TypeN = 7

// String converts a Type into its (uncolored, lowercase) string form.
func (t Type) String() string {
	const typeToStr = " pnbrqk"
	return string(typeToStr[t])
}

// Promotions lists the piece types a pawn may promote to, in the
// order moves should be generated so that the strongest promotion is
// tried first by the search's move ordering.
var Promotions = [...]Type{Queen, Rook, Bishop, Knight}

// Piece represents a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

// constants representing colored chess pieces.
const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(White)<<3 | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<3 | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<3 | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<3 | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<3 | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<3 | Piece(King)

	BlackPawn   Piece = Piece(Black)<<3 | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<3 | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<3 | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<3 | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<3 | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<3 | Piece(King)
)

// N is the number of piece-color combinations, including the gaps left
// by reserving 3 bits for type (NoType included) under each color bit.
const N = 16

const (
	colorOffset = 3
	typeMask    = (1 << colorOffset) - 1
)

// New creates a Piece from the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// NewFromString creates a Piece from its standard letter form.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("piece: invalid piece id " + id)
	}
}

// String converts a Piece into its standard letter representation.
func (p Piece) String() string {
	const pieceToStr = " PNBRQK  pnbrqk"
	return string(pieceToStr[p])
}

// Type returns the piece type of the receiver.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the piece color of the receiver. Calling it on
// NoPiece returns White; callers must check Type() != NoType first.
func (p Piece) Color() Color {
	return Color(p >> colorOffset)
}

// Is reports whether the receiver's type matches the given type.
func (p Piece) Is(target Type) bool {
	return p.Type() == target
}

// IsColor reports whether the receiver's color matches the given color.
func (p Piece) IsColor(target Color) bool {
	return p.Color() == target
}
