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

package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/score"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	b, err := fen.Parse(fen.Starting)
	if err != nil {
		t.Fatal(err)
	}
	if got := eval.Evaluate(b); got != score.Draw {
		t.Errorf("Evaluate(starting position) = %v, want 0", got)
	}
}

func TestMaterialAdvantageFavorsWhite(t *testing.T) {
	b, err := fen.Parse("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := eval.Evaluate(b); got <= score.Draw {
		t.Errorf("Evaluate() = %v, want a score favoring White", got)
	}
}

func TestMopUpFavorsCorneringLosingKing(t *testing.T) {
	cornered, err := fen.Parse("k7/8/1K6/8/8/8/8/6Q1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	central, err := fen.Parse("8/8/2k5/8/2K5/8/8/6Q1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if eval.Evaluate(cornered) <= eval.Evaluate(central) {
		t.Error("cornering the losing king should score better than leaving it central")
	}
}

func TestMaterial(t *testing.T) {
	b, err := fen.Parse(fen.Starting)
	if err != nil {
		t.Fatal(err)
	}
	want := int32(8*eval.PieceValue[piece.Pawn] +
		2*eval.PieceValue[piece.Knight] +
		2*eval.PieceValue[piece.Bishop] +
		2*eval.PieceValue[piece.Rook] +
		eval.PieceValue[piece.Queen])
	if got := eval.Material(b, piece.White); got != want {
		t.Errorf("Material(White) = %d, want %d", got, want)
	}
}
