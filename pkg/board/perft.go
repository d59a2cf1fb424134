// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package board

import "github.com/corvidchess/corvid/pkg/bitboard"

// Perft counts the leaf nodes reachable from b by playing every legal
// move to the given depth, the standard move generator self-test.
// Moves are applied unchecked since they are drawn
// directly from LegalMoves.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range b.LegalMoves(bitboard.Universe) {
		child := b.ApplyUnchecked(m)
		nodes += child.Perft(depth - 1)
	}
	return nodes
}

// Divide returns the perft count of each legal move one ply deep,
// keyed by its long algebraic notation; useful for diffing a move
// generator bug against a reference engine's per-move breakdown.
func (b *Board) Divide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for _, m := range b.LegalMoves(bitboard.Universe) {
		child := b.ApplyUnchecked(m)
		if depth <= 1 {
			out[m.String()] = 1
		} else {
			out[m.String()] = child.Perft(depth - 1)
		}
	}
	return out
}
