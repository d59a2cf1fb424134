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

package bitboard

import "github.com/corvidchess/corvid/pkg/square"

// useful whole-board constants.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// file bitboards.
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files maps a square.File to its full bitboard.
var Files = [...]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// rank bitboards, indexed by square.Rank (Rank8 at index 0).
const (
	Rank8 Board = 0x00000000000000ff
	Rank7 Board = 0x000000000000ff00
	Rank6 Board = 0x0000000000ff0000
	Rank5 Board = 0x00000000ff000000
	Rank4 Board = 0x000000ff00000000
	Rank3 Board = 0x0000ff0000000000
	Rank2 Board = 0x00ff000000000000
	Rank1 Board = 0xff00000000000000
)

// Ranks maps a square.Rank to its full bitboard.
var Ranks = [...]Board{Rank8, Rank7, Rank6, Rank5, Rank4, Rank3, Rank2, Rank1}

// castling masks: F1G1/F8G8 must be empty and unattacked for kingside
// castling; B1C1D1/B8C8D8 must be empty and C1D1/C8D8 unattacked for
// queenside castling.
const (
	F1G1   Board = 0x6000000000000000
	F8G8   Board = 0x0000000000000060
	C1D1   Board = 0x0c00000000000000
	C8D8   Board = 0x000000000000000c
	B1C1D1 Board = 0x0e00000000000000
	B8C8D8 Board = 0x000000000000000e
)

// Squares maps every square.Square to the bitboard with only that
// square set.
var Squares [square.N]Board

// Diagonals maps a square.Diagonal() index (0..14) to the bitboard of
// every square sharing that a1-h8-parallel diagonal.
var Diagonals [15]Board

// AntiDiagonals maps a square.AntiDiagonal() index (0..14) to the
// bitboard of every square sharing that a8-h1-parallel diagonal.
var AntiDiagonals [15]Board

func init() {
	mask := Board(1)
	for s := square.A8; s <= square.H1; s++ {
		Squares[s] = mask
		mask <<= 1
	}

	for s := square.A8; s <= square.H1; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}
