// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package repetition tracks how many times each position reached in a
// game has been visited, so the engine and its host can detect
// threefold-repetition draws.
package repetition

import "github.com/corvidchess/corvid/pkg/zobrist"

// Table is a mapping from a position's zobrist hash to the number of
// times it has been visited this game. The zobrist key is already a
// well-mixed 64-bit value (see pkg/zobrist), so it is used directly as
// the map key with no further hashing.
type Table map[zobrist.Key]uint8

// New returns an empty Table, as at the start of a game.
func New() Table {
	return make(Table)
}

// Add records a visit to the position with the given hash and returns
// true exactly when this was its third visit.
func (t Table) Add(hash zobrist.Key) bool {
	t[hash]++
	return t[hash] == 3
}

// Remove undoes a single visit previously recorded by Add, used when a
// host takes a move back rather than continuing the game from it.
func (t Table) Remove(hash zobrist.Key) {
	if t[hash] <= 1 {
		delete(t, hash)
		return
	}
	t[hash]--
}

// Get returns the current visit count for hash, or 0 if it has never
// been seen.
func (t Table) Get(hash zobrist.Key) uint8 {
	return t[hash]
}
