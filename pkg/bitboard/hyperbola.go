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

package bitboard

import (
	"math/bits"

	"github.com/corvidchess/corvid/pkg/square"
)

// Hyperbola implements the hyperbola quintessence sliding-attack
// algorithm for the given origin square, occupancy, and the ray mask
// (file, rank, diagonal, or anti-diagonal) the slide is restricted to.
// It is used only to build lookup tables at startup (the magic-bitboard
// tables and the between-squares table); the hot path probes those
// tables instead of calling this directly.
// https://www.chessprogramming.org/Hyperbola_Quintessence
func Hyperbola(s square.Square, occ, mask Board) Board {
	r := Squares[s]
	o := occ & mask
	return ((o - 2*r) ^ reverse(reverse(o)-2*reverse(r))) & mask
}

func reverse(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}
