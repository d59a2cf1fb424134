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

// Package fuzz cross-checks the move generator against an independent
// third-party implementation by playing random games and comparing the
// full legal move set at every position. Perft alone only proves the
// generator right on its fixture positions; random play reaches
// positions the fixtures never will.
package fuzz

import (
	"fmt"
	"sort"

	"github.com/notnil/chess"

	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
)

// Play plays one random game from the starting position, for at most
// maxPlies plies, comparing our legal move set against the reference
// implementation's before every move. It returns an error describing
// the first divergence found, or nil if the game finished (or the ply
// budget ran out) with the two generators in full agreement.
func Play(seed uint64, maxPlies int) error {
	var rng util.PRNG
	rng.Seed(seed)

	game := chess.NewGame()
	b := board.NewStandard()

	for ply := 0; ply < maxPlies; ply++ {
		ours := moveStrings(b.LegalMoves(bitboard.Universe))
		theirs := referenceMoveStrings(game)

		if len(ours) != len(theirs) {
			return fmt.Errorf("ply %d (%s): generated %d moves, reference generated %d\nours: %v\ntheirs: %v",
				ply, game.Position().String(), len(ours), len(theirs), ours, theirs)
		}
		for i := range ours {
			if ours[i] != theirs[i] {
				return fmt.Errorf("ply %d (%s): move set diverges at %q vs %q",
					ply, game.Position().String(), ours[i], theirs[i])
			}
		}

		if len(ours) == 0 || b.HalfMoveClock >= 100 {
			return nil
		}

		pick := ours[rng.Uint64()%uint64(len(ours))]

		m, err := b.ParseMove(pick)
		if err != nil {
			return fmt.Errorf("ply %d: re-parsing own move %q: %w", ply, pick, err)
		}
		next, err := b.Apply(m)
		if err != nil {
			return fmt.Errorf("ply %d: applying own move %q: %w", ply, pick, err)
		}
		*b = next

		if err := playReference(game, pick); err != nil {
			return fmt.Errorf("ply %d: reference rejected %q: %w", ply, pick, err)
		}
	}

	return nil
}

func moveStrings(moves []move.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func referenceMoveStrings(game *chess.Game) []string {
	valid := game.ValidMoves()
	out := make([]string, len(valid))
	for i, m := range valid {
		out[i] = uciString(m)
	}
	sort.Strings(out)
	return out
}

func playReference(game *chess.Game, uci string) error {
	for _, m := range game.ValidMoves() {
		if uciString(m) == uci {
			return game.Move(m)
		}
	}
	return fmt.Errorf("no matching valid move")
}

func uciString(m *chess.Move) string {
	s := m.S1().String() + m.S2().String()
	if m.Promo() != chess.NoPieceType {
		s += m.Promo().String()
	}
	return s
}
