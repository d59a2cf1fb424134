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

// Package mailbox implements an 8x8 mailbox chessboard representation,
// used for O(1) piece-on-square lookup alongside the bitboards.
// https://www.chessprogramming.org/8x8_Board
package mailbox

import (
	"fmt"
	"strconv"

	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Board is a flat array of the piece on every square, indexed by
// square.Square.
type Board [square.N]piece.Piece

// String renders the board as an ASCII grid with file/rank labels.
func (b Board) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"

	for rank := 0; rank < 8; rank++ {
		s += "| "
		for file := 0; file < 8; file++ {
			sq := square.Square(rank*8 + file)
			s += b[sq].String() + " | "
		}
		s += fmt.Sprintln(8 - rank)
		s += "+---+---+---+---+---+---+---+---+\n"
	}

	s += "  a   b   c   d   e   f   g   h\n"
	return s
}

// FEN renders the piece-placement field of a FEN string for this board.
func (b *Board) FEN() string {
	var fen string

	empty := 0
	for i, p := range b {
		if p == piece.NoPiece {
			empty++
		} else {
			if empty > 0 {
				fen += strconv.Itoa(empty)
				empty = 0
			}
			fen += p.String()
		}

		if (i+1)%8 == 0 {
			if empty > 0 {
				fen += strconv.Itoa(empty)
				empty = 0
			}
			if i < 63 {
				fen += "/"
			}
		}
	}

	return fen
}
