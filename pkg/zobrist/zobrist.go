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

// Package zobrist computes the pseudo-random numbers used to
// incrementally hash a board position. The numbers are generated once
// at process startup from a fixed seed so the same executable always
// produces the same hash for the same position, without a build-time
// code generation step.
package zobrist

import (
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Key is a zobrist hash value. Positions are hashed by xor-ing
// together the keys of every feature present in them, so Key also
// doubles as the hash-table key used by pkg/repetition: it is already
// a uniformly distributed integer and needs no further mixing.
type Key uint64

// PieceSquare holds one key per piece-on-square combination.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one key per file a double pawn push could target.
var EnPassant [square.FileN]Key

// Castling holds one key per possible castling rights value.
var Castling [castling.N]Key

// SideToMove is xored in whenever it is Black's turn to move.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used by Stockfish for this purpose

	for p := 0; p < piece.N; p++ {
		for s := square.A8; s <= square.H1; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
