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

package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/square"
)

// Between holds, for every pair of squares sharing a file, rank, or
// diagonal, the bitboard of squares strictly between them. Pairs that
// share none of those lines map to the empty board. It is used to
// build the check-mask and pin-masks during move generation.
var Between [square.N][square.N]bitboard.Board

// Line holds, for every pair of squares sharing a file, rank, or
// diagonal, the full line through both squares, endpoints included.
// Pairs that share no line map to the empty board.
var Line [square.N][square.N]bitboard.Board

func init() {
	for s1 := square.A8; s1 <= square.H1; s1++ {
		for s2 := square.A8; s2 <= square.H1; s2++ {
			sqs := bitboard.Squares[s1] | bitboard.Squares[s2]

			var mask bitboard.Board
			switch {
			case s1 == s2:
				continue
			case s1.File() == s2.File():
				mask = bitboard.Files[s1.File()]
			case s1.Rank() == s2.Rank():
				mask = bitboard.Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				mask = bitboard.Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				mask = bitboard.AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue
			}

			Between[s1][s2] = bitboard.Hyperbola(s1, sqs, mask) & bitboard.Hyperbola(s2, sqs, mask)
			Line[s1][s2] = mask
		}
	}
}
