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

package move

import (
	"sort"

	"github.com/corvidchess/corvid/pkg/bitboard"
)

// List is a staged view over a slice of legal moves, used by the
// search's move ordering: the previous iteration's best move first,
// then captures and promotions ranked by victim value, then every
// remaining quiet move in generation order. A destination mask can
// further restrict iteration without discarding the excluded moves.
type List struct {
	moves []Move
	mask  bitboard.Board
}

// NewList wraps moves in a List, unordered and unmasked.
func NewList(moves []Move) *List {
	return &List{moves: moves, mask: bitboard.Universe}
}

// Moves returns the moves currently visible through the mask, in the
// current ordering.
func (l *List) Moves() []Move {
	if l.mask == bitboard.Universe {
		return l.moves
	}
	visible := make([]Move, 0, len(l.moves))
	for _, m := range l.moves {
		if l.mask.IsSet(m.Target()) {
			visible = append(visible, m)
		}
	}
	return visible
}

// Len returns the number of moves visible through the mask.
func (l *List) Len() int {
	return len(l.Moves())
}

// IsEmpty reports whether no moves are visible through the mask.
func (l *List) IsEmpty() bool {
	return l.Len() == 0
}

// SetMask restricts iteration to moves whose destination lies in mask.
// Unlike Remove it is non-destructive; a later SetMask(bitboard.Universe)
// restores every remaining move.
func (l *List) SetMask(mask bitboard.Board) {
	l.mask = mask
}

// Remove permanently discards every move whose destination lies in
// mask, used to exclude already-tried destinations from a later stage.
func (l *List) Remove(mask bitboard.Board) {
	kept := l.moves[:0]
	for _, m := range l.moves {
		if !mask.IsSet(m.Target()) {
			kept = append(kept, m)
		}
	}
	l.moves = kept
}

// RemoveMove permanently discards the single given move.
func (l *List) RemoveMove(mv Move) {
	for i, m := range l.moves {
		if m == mv {
			l.moves = append(l.moves[:i], l.moves[i+1:]...)
			return
		}
	}
}

// Order sorts the list in place: best first if it occurs in the list,
// then every capture or promotion ranked by victimValue (highest
// first, e.g. MVV-LVA), then quiet moves in their original order.
func (l *List) Order(best Move, victimValue func(Move) int32) {
	sort.SliceStable(l.moves, func(i, j int) bool {
		return keyOf(l.moves[i], best, victimValue) > keyOf(l.moves[j], best, victimValue)
	})
}

func keyOf(m, best Move, victimValue func(Move) int32) int64 {
	const bestKey = 1 << 62
	switch {
	case m == best:
		return bestKey
	case m.IsCapture() || m.IsPromotion():
		return int64(victimValue(m)) + 1
	default:
		return 0
	}
}
