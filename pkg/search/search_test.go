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

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/fen"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/search"
)

func contextFor(t *testing.T, position string) *search.Context {
	t.Helper()
	b, err := fen.Parse(position)
	require.NoError(t, err)
	return search.NewContext(b)
}

func TestFindsMateInOne(t *testing.T) {
	// back-rank mate: Ra1-a8#
	ctx := contextFor(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")

	mv, sc, err := ctx.Search(search.Limits{Depth: 3})
	require.NoError(t, err)

	assert.Equal(t, "a1a8", mv.String())
	assert.True(t, sc.IsMate(), "score should be a mate, got %v", sc)
	assert.Positive(t, int64(sc), "white is the mating side")
}

func TestFindsMateInOneAsBlack(t *testing.T) {
	ctx := contextFor(t, "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1")

	mv, sc, err := ctx.Search(search.Limits{Depth: 3})
	require.NoError(t, err)

	assert.Equal(t, "a8a1", mv.String())
	assert.True(t, sc.IsMate())
	assert.Negative(t, int64(sc), "black is the mating side")
}

func TestAvoidsHangingMaterial(t *testing.T) {
	// white's queen is attacked by the pawn; any search deeper than one
	// ply must not leave it en prise
	ctx := contextFor(t, "3k4/8/8/3p4/4Q3/8/8/4K3 w - - 0 1")

	mv, _, err := ctx.Search(search.Limits{Depth: 4})
	require.NoError(t, err)
	require.NotEqual(t, move.Null, mv)

	child := ctx.Board.ApplyUnchecked(mv)
	if mv.Source().String() == "e4" {
		for _, reply := range child.LegalMoves(bitboard.Universe) {
			if reply.IsCapture() && child.Position[reply.Target()].String() == "Q" {
				t.Fatalf("move %s leaves the queen hanging to %s", mv, reply)
			}
		}
	}
}

func TestStalemateScoresDraw(t *testing.T) {
	// black to move has no legal moves and is not in check
	ctx := contextFor(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	mv, sc, err := ctx.Search(search.Limits{Depth: 3})
	require.NoError(t, err)

	assert.Equal(t, move.Null, mv)
	assert.False(t, sc.IsMate())
	assert.EqualValues(t, 0, sc)
}

func TestDeterministicGivenEqualLimits(t *testing.T) {
	position := "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"

	first, firstScore, err := contextFor(t, position).Search(search.Limits{Depth: 4})
	require.NoError(t, err)
	second, secondScore, err := contextFor(t, position).Search(search.Limits{Depth: 4})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstScore, secondScore)
}

func TestTimeoutReturnsCompletedDepth(t *testing.T) {
	ctx := contextFor(t, fen.Starting)

	polls := 0
	limits := search.Limits{
		Depth: 64,
		// depth 1 needs well under a hundred polls to complete; cut the
		// search off somewhere inside a deeper iteration
		Timeout: func() bool {
			polls++
			return polls > 500
		},
	}

	mv, _, err := ctx.Search(limits)
	require.NoError(t, err)
	assert.NotEqual(t, move.Null, mv, "the completed depth's best move survives the timeout")
}

func TestNodeLimitStopsSearch(t *testing.T) {
	ctx := contextFor(t, fen.Starting)

	_, _, err := ctx.Search(search.Limits{Depth: 64, Nodes: 5000})
	require.NoError(t, err)

	// the limit binds at the next poll, so the count may overshoot by
	// at most the nodes of one in-flight line
	assert.Less(t, ctx.Nodes(), 6000, "node limit should bind quickly")
}

func TestIllegalPositionRejected(t *testing.T) {
	// white to move while black is already in check
	b, err := fen.Parse("4k3/4Q3/4K3/8/8/8/8/8 w - - 0 1")
	if err != nil {
		// the position may already be rejected at parse time, which is
		// just as acceptable a surface for the error
		return
	}
	_, _, searchErr := search.NewContext(b).Search(search.Limits{Depth: 2})
	assert.ErrorIs(t, searchErr, search.ErrIllegalPosition)
}

func TestSearchRunsWithRepetitionHistory(t *testing.T) {
	// the root position is already twice in the history, so any line
	// that returns to it is scored as a draw inside the search; the
	// search must still complete without error
	b, err := fen.Parse("8/8/8/3k4/8/3K4/8/7R w - - 0 1")
	require.NoError(t, err)

	ctx := search.NewContext(b)
	ctx.History.Add(b.Hash)
	ctx.History.Add(b.Hash)

	_, _, err = ctx.Search(search.Limits{Depth: 4})
	require.NoError(t, err)
}
