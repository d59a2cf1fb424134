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

package fen_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/fen"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
		"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
		"rn3rk1/pbp1qpp1/1p5p/3p4/3P4/3BPN2/PP3PPP/R2Q1RK1 b - - 3 12",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1",
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			b, err := fen.Parse(test)
			if err != nil {
				t.Fatalf("parse(%q): %v", test, err)
			}
			if got := fen.String(b); got != test {
				t.Errorf("round trip mismatch:\nin:  %s\nout: %s", test, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // bad glyph
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // missing rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",   // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1", // ep on wrong rank for white to move
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			if _, err := fen.Parse(test); err == nil {
				t.Errorf("parse(%q): expected an error, got none", test)
			}
		})
	}
}

func TestStandardPositionRoundTrip(t *testing.T) {
	b, err := fen.Parse(fen.Starting)
	if err != nil {
		t.Fatalf("parse(Starting): %v", err)
	}
	if got := fen.String(b); got != fen.Starting {
		t.Errorf("round trip mismatch:\nin:  %s\nout: %s", fen.Starting, got)
	}
}
