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

package engine_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// boardCmp compares two boards as chess positions, the way Equal does.
var boardCmp = cmp.Comparer(func(x, y board.Board) bool {
	return x.Equal(&y)
})

func TestSetBoardIdempotence(t *testing.T) {
	b, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	e := engine.New()
	e.SetBoard(*b)

	if diff := cmp.Diff(*b, e.Board(), boardCmp); diff != "" {
		t.Errorf("SetBoard followed by Board changed the position:\n%s", diff)
	}
}

func TestOpeningMovesTrackClocks(t *testing.T) {
	e := engine.New()

	res := e.MakeMoveText("e2e4")
	require.True(t, res.IsValid)

	b := e.Board()
	assert.Equal(t, piece.Black, b.SideToMove)
	assert.Equal(t, square.FileE, b.EnPassantTarget.File())
	assert.Equal(t, square.Rank3, b.EnPassantTarget.Rank())
	assert.Equal(t, uint16(0), b.HalfMoveClock)
	assert.Equal(t, uint16(1), b.FullMoveClock)

	res = e.MakeMoveText("e7e5")
	require.True(t, res.IsValid)

	b = e.Board()
	assert.Equal(t, piece.White, b.SideToMove)
	assert.Equal(t, square.FileE, b.EnPassantTarget.File())
	assert.Equal(t, uint16(0), b.HalfMoveClock)
	assert.Equal(t, uint16(2), b.FullMoveClock)
}

func TestIllegalMoveLeavesBoardUntouched(t *testing.T) {
	e := engine.New()
	before := e.Board()

	res := e.MakeMoveText("e2e5")
	assert.False(t, res.IsValid)
	assert.False(t, res.IsThreeFoldDraw)

	if diff := cmp.Diff(before, e.Board(), boardCmp); diff != "" {
		t.Errorf("rejected move changed the position:\n%s", diff)
	}
}

func TestMalformedMoveTextIsRejected(t *testing.T) {
	e := engine.New()
	for _, text := range []string{"", "e2", "e2e9", "x2e4", "e2e4x", "e2--e4"} {
		assert.False(t, e.MakeMoveText(text).IsValid, "text %q", text)
	}
}

func TestQueensideCastle(t *testing.T) {
	b, err := fen.Parse("r3k3/8/8/8/8/8/8/4K3 b q - 0 1")
	require.NoError(t, err)

	e := engine.New()
	e.SetBoard(*b)

	require.True(t, e.MakeMoveText("e8c8").IsValid)

	after := e.Board()
	assert.Equal(t, piece.BlackKing, after.Position[square.C8])
	assert.Equal(t, piece.BlackRook, after.Position[square.D8])
	assert.Equal(t, piece.NoPiece, after.Position[square.A8])
}

func TestThreeFoldDetection(t *testing.T) {
	e := engine.New()

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	for lap := 0; lap < 2; lap++ {
		for i, text := range shuffle {
			res := e.MakeMoveText(text)
			require.True(t, res.IsValid, "move %s", text)

			last := lap == 1 && i == len(shuffle)-1
			assert.Equal(t, last, res.IsThreeFoldDraw, "move %s of lap %d", text, lap)
		}
	}
}

func TestEvaluateReturnsLegalMove(t *testing.T) {
	b, err := fen.Parse("rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	e := engine.New()
	e.SetBoard(*b)

	deadline := time.Now().Add(time.Second)
	mv, sc := e.Evaluate(func() bool { return time.Now().After(deadline) })

	require.NotEqual(t, move.Null, mv)
	assert.False(t, sc.IsMate())
	assert.True(t, e.MakeMove(mv).IsValid, "returned move must be playable")
}
