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

// Package magic provides reusable utility types and functions used to
// generate magic hash tables for sliding pieces at process startup.
//
// Blocker masks are 64-bit bitboards, too many to index exhaustively,
// but the relevant blockers for a given square are few. A magic number
// m such that (mask*m)>>shift is a perfect, contiguous hash function
// lets us index every relevant blocker permutation in a flat array.
// The simplest way to find such a number is to generate random
// candidates and check whether they happen to work.
package magic

import (
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/square"
)

// seeds are prng seeds, one per rank, chosen to generate valid magics
// quickly. Taken from the Stockfish chess engine.
var seeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// MoveFunc computes the attack set of a sliding piece on the given
// square given a blocker bitboard. When mask is true it must instead
// return the relevant-blocker mask (edge squares excluded).
type MoveFunc func(s square.Square, occ bitboard.Board, mask bool) bitboard.Board

// Magic is a single magic entry, used to index the attack table for
// one square.
type Magic struct {
	Number      uint64
	BlockerMask bitboard.Board
	Shift       uint8
}

// Index computes the table index of the given occupancy under this magic.
func (m Magic) Index(occ bitboard.Board) uint64 {
	occ &= m.BlockerMask
	return (uint64(occ) * m.Number) >> m.Shift
}

// Table is a magic hash table for one sliding piece type.
type Table struct {
	Magics [square.N]Magic
	Table  [square.N][]bitboard.Board
}

// Probe returns the attack set for the given square and occupancy.
func (t *Table) Probe(s square.Square, occ bitboard.Board) bitboard.Board {
	return t.Table[s][t.Magics[s].Index(occ)]
}

// NewTable builds a magic hash table for a sliding piece whose
// unblocked move pattern is given by fn. It runs a randomized search
// for a collision-free magic number per square, seeded deterministically
// so the result is identical across runs and processes.
func NewTable(fn MoveFunc) *Table {
	var t Table
	var rng util.PRNG

	for s := square.A8; s <= square.H1; s++ {
		m := &t.Magics[s]

		m.BlockerMask = fn(s, bitboard.Empty, true)
		bitCount := m.BlockerMask.Count()
		m.Shift = uint8(64 - bitCount)

		permutationsN := 1 << bitCount
		permutations := make([]bitboard.Board, permutationsN)

		blockers := bitboard.Empty
		for i := 0; blockers != bitboard.Empty || i == 0; i++ {
			permutations[i] = blockers
			blockers = (blockers - m.BlockerMask) & m.BlockerMask
		}

		rng.Seed(seeds[s.Rank()])

	search:
		for {
			t.Table[s] = make([]bitboard.Board, permutationsN)
			m.Number = rng.SparseUint64()

			for i := 0; i < permutationsN; i++ {
				occ := permutations[i]
				index := m.Index(occ)
				attacks := fn(s, occ, false)

				if t.Table[s][index] != bitboard.Empty && t.Table[s][index] != attacks {
					continue search
				}
				t.Table[s][index] = attacks
			}

			break
		}
	}

	return &t
}
