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

package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// perftCases holds standard perft positions with their published node
// counts; depths are kept small so the suite runs quickly. cmd/perft
// carries the deeper, slower versions of the same positions.
var perftCases = []struct {
	fen   string
	depth int
	nodes uint64
}{
	{fen.Starting, 1, 20},
	{fen.Starting, 2, 400},
	{fen.Starting, 3, 8902},
	{fen.Starting, 4, 197281},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},

	// en passant pins and discoveries, mirrored for both colors
	{"8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1", 6, 824064},
	{"8/8/1k6/8/2pP4/8/5BK1/8 b - d3 0 1", 6, 824064},
	{"8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", 6, 1440467},
	{"8/5k2/8/2Pp4/2B5/1K6/8/8 w - d6 0 1", 6, 1440467},

	// castling interactions, mirrored
	{"5k2/8/8/8/8/8/8/4K2R w K - 0 1", 6, 661072},
	{"4k2r/8/8/8/8/8/8/5K2 b k - 0 1", 6, 661072},
	{"3k4/8/8/8/8/8/8/R3K3 w Q - 0 1", 6, 803711},
	{"r3k3/8/8/8/8/8/8/3K4 b q - 0 1", 6, 803711},
	{"r3k2r/1b4bq/8/8/8/8/7B/R3K2R w KQkq - 0 1", 4, 1274206},
	{"r3k2r/7b/8/8/8/8/1B4BQ/R3K2R b KQkq - 0 1", 4, 1274206},
	{"r3k2r/8/3Q4/8/8/5q2/8/R3K2R b KQkq - 0 1", 4, 1720476},
	{"r3k2r/8/5Q2/8/8/3q4/8/R3K2R w KQkq - 0 1", 4, 1720476},

	// promotions, underpromotion checks, and stalemate traps, mirrored
	{"2K2r2/4P3/8/8/8/8/8/3k4 w - - 0 1", 6, 3821001},
	{"3K4/8/8/8/8/8/4p3/2k2R2 b - - 0 1", 6, 3821001},
	{"8/8/1P2K3/8/2n5/1q6/8/5k2 b - - 0 1", 5, 1004658},
	{"5K2/8/1Q6/2N5/8/1p2k3/8/8 w - - 0 1", 5, 1004658},
	{"4k3/1P6/8/8/8/8/K7/8 w - - 0 1", 6, 217342},
	{"8/k7/8/8/8/8/1p6/4K3 b - - 0 1", 6, 217342},
	{"8/P1k5/K7/8/8/8/8/8 w - - 0 1", 6, 92683},
	{"8/8/8/8/8/k7/p1K5/8 b - - 0 1", 6, 92683},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.fen, func(t *testing.T) {
			b, err := fen.Parse(tc.fen)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := b.Perft(tc.depth); got != tc.nodes {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.nodes)
			}
		})
	}
}

func TestLegalMoveExclusivity(t *testing.T) {
	// every move LegalMoves yields must leave the mover's own king safe
	b, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	mover := b.SideToMove
	for _, m := range b.LegalMoves(bitboard.Universe) {
		child := b.ApplyUnchecked(m)
		if child.IsInCheck(mover) {
			t.Errorf("legal move %s left %s's king in check", m, mover)
		}
	}
}

func TestZobristHomomorphism(t *testing.T) {
	positions := []string{
		fen.Starting,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1",
	}

	for _, p := range positions {
		b, err := fen.Parse(p)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range b.LegalMoves(bitboard.Universe) {
			child := b.ApplyUnchecked(m)

			recomputed, err := fen.Parse(fen.String(&child))
			if err != nil {
				t.Fatalf("re-parsing emitted fen for move %s: %v", m, err)
			}
			if recomputed.Hash != child.Hash {
				t.Errorf("move %s: incremental hash %016X != from-scratch hash %016X", m, child.Hash, recomputed.Hash)
			}
		}
	}
}

func TestCastlingMutatesRook(t *testing.T) {
	b, err := fen.Parse("5k2/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, mv := range b.LegalMoves(bitboard.Universe) {
		if mv.String() == "e1g1" {
			child := b.ApplyUnchecked(mv)
			if child.Position[mv.Target()].Type() != piece.King {
				t.Fatalf("king did not land on g1")
			}
			if child.Position[square.F1].Type() != piece.Rook {
				t.Fatalf("rook did not land on f1")
			}
			found = true
		}
	}
	if !found {
		t.Fatal("e1g1 castling move not found in legal moves")
	}
}

func TestFourPromotionChoices(t *testing.T) {
	b, err := fen.Parse("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := b.LegalMoves(bitboard.Universe)
	count := 0
	for _, m := range moves {
		if m.Source().String() == "a7" && m.Target().String() == "a8" {
			count++
		}
	}
	if count != 4 {
		t.Errorf("expected 4 promotion choices on a7a8, got %d", count)
	}
}

func TestStandardPositionHash(t *testing.T) {
	std := board.NewStandard()
	parsed, err := fen.Parse(fen.Starting)
	if err != nil {
		t.Fatal(err)
	}
	if std.Hash != parsed.Hash {
		t.Errorf("NewStandard().Hash = %016X, fen.Parse(Starting).Hash = %016X", std.Hash, parsed.Hash)
	}
}
