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

package move_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestOrderStagesBestThenCaptures(t *testing.T) {
	quiet := move.New(square.G1, square.F3, piece.WhiteKnight, false)
	capture := move.New(square.E4, square.D5, piece.WhitePawn, true)
	best := move.New(square.E1, square.G1, piece.WhiteKing, false)

	l := move.NewList([]move.Move{quiet, capture, best})
	l.Order(best, func(move.Move) int32 { return 100 })

	got := l.Moves()
	if got[0] != best || got[1] != capture || got[2] != quiet {
		t.Errorf("Order() = [%s %s %s], want best, capture, quiet", got[0], got[1], got[2])
	}
}

func TestSetMaskIsNonDestructive(t *testing.T) {
	a := move.New(square.E2, square.E4, piece.WhitePawn, false)
	b := move.New(square.D2, square.D3, piece.WhitePawn, false)

	l := move.NewList([]move.Move{a, b})
	l.SetMask(bitboard.Squares[square.E4])

	if l.Len() != 1 || l.Moves()[0] != a {
		t.Fatalf("masked list should only show %s, got %v", a, l.Moves())
	}

	l.SetMask(bitboard.Universe)
	if l.Len() != 2 {
		t.Fatalf("clearing the mask should restore both moves, got %v", l.Moves())
	}
}

func TestRemoveIsPermanent(t *testing.T) {
	a := move.New(square.E2, square.E4, piece.WhitePawn, false)
	b := move.New(square.D2, square.D3, piece.WhitePawn, false)

	l := move.NewList([]move.Move{a, b})
	l.Remove(bitboard.Squares[square.E4])

	if l.Len() != 1 || l.Moves()[0] != b {
		t.Fatalf("Remove should drop %s, got %v", a, l.Moves())
	}

	l.RemoveMove(b)
	if !l.IsEmpty() {
		t.Fatalf("RemoveMove should leave the list empty, got %v", l.Moves())
	}
}
