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

// Package search implements iterative-deepening alpha-beta search
// over the move generator, with mate-aware scoring, MVV move
// ordering, capture quiescence and a cooperative timeout.
package search

import (
	"errors"
	"time"

	"github.com/corvidchess/corvid/internal/log"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/config"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/repetition"
	"github.com/corvidchess/corvid/pkg/score"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

// MaxDepth is the deepest ply iterative deepening will attempt.
var MaxDepth = config.Default().Search.MaxDepth

// ErrIllegalPosition is returned by Search when the side not to move
// is in check, meaning the position could only be reached by leaving
// the king in check on a previous move.
var ErrIllegalPosition = errors.New("search: position is illegal")

// Timeout is polled cooperatively at three points during a search:
// before every root move, before every recursive child, and before
// every reply considered below a node. It should be cheap, e.g.
// checking an atomic flag or comparing the time against a deadline.
type Timeout func() bool

// Limits bounds a single search; Depth and Nodes are hard ceilings,
// Timeout is polled throughout and can end the search earlier.
type Limits struct {
	Depth   int
	Nodes   int
	Timeout Timeout
}

func never() bool { return false }

// Context carries the state of a single search: the position being
// searched, the repetition history leading up to it, and the
// statistics of the search in progress. A Context is reusable across
// searches of the same game; the caller keeps History up to date as
// the game progresses (via Add on each played move, Remove on a
// takeback).
type Context struct {
	Board   *board.Board
	History repetition.Table

	limits  Limits
	nodes   int
	stopped bool
}

// NewContext returns a Context ready to search from b, with a fresh
// repetition history.
func NewContext(b *board.Board) *Context {
	return &Context{
		Board:   b,
		History: repetition.New(),
	}
}

// Search runs iterative deepening up to limits and returns the best
// move found and its score. It returns ErrIllegalPosition without
// searching if the side not to move is in check, since such a
// position could not have been legally reached.
func (ctx *Context) Search(limits Limits) (move.Move, score.Score, error) {
	if limits.Timeout == nil {
		limits.Timeout = never
	}
	if limits.Depth <= 0 || limits.Depth > MaxDepth {
		limits.Depth = MaxDepth
	}

	ctx.limits = limits
	ctx.nodes = 0
	ctx.stopped = false

	if ctx.Board.IsInCheck(ctx.Board.SideToMove.Other()) {
		return move.Null, score.Draw, ErrIllegalPosition
	}

	return ctx.iterativeDeepening()
}

// Nodes returns the number of nodes visited by the most recent Search
// call, for reporting and for tests of the node limit.
func (ctx *Context) Nodes() int {
	return ctx.nodes
}

// timedOut reports whether the search should stop now, per the node
// and timeout limits. Once it reports true it keeps doing so for the
// rest of this Search call.
func (ctx *Context) timedOut() bool {
	switch {
	case ctx.stopped:
		return true
	case ctx.limits.Nodes > 0 && ctx.nodes > ctx.limits.Nodes:
		ctx.stopped = true
		return true
	case ctx.limits.Timeout():
		ctx.stopped = true
		return true
	default:
		return false
	}
}

// iterativeDeepening is the root loop of the search: it widens the
// search depth one ply at a time, keeping the best move found by the
// last fully completed iteration whenever a deeper iteration is cut
// short by the timeout.
func (ctx *Context) iterativeDeepening() (move.Move, score.Score, error) {
	bestMove := move.Null
	bestScore := score.Draw
	start := time.Now()

	for depth := 1; depth <= ctx.limits.Depth; depth++ {
		moves := ctx.Board.LegalMoves(bitboard.Universe)
		if len(moves) == 0 {
			if ctx.Board.IsInCheck(ctx.Board.SideToMove) {
				bestScore = mateScoreFor(ctx.Board.SideToMove.Other(), 0)
			} else {
				bestScore = score.Draw
			}
			return bestMove, bestScore, nil
		}

		pol := policies[ctx.Board.SideToMove]

		list := move.NewList(moves)
		list.Order(bestMove, victimValue(ctx.Board))

		alpha, beta := score.Min, score.Max
		current := pol.worst
		currentBest := move.Null

		for _, mv := range list.Moves() {
			if ctx.timedOut() {
				break
			}

			child := ctx.Board.ApplyUnchecked(mv)
			line := ctx.lineAfter(mv, ctx.History, &child)

			result := ctx.searchAt(&child, depth-1, alpha, beta, line)

			if pol.isBetter(current, result) {
				current = result
				currentBest = mv
			}
			pol.updateCutoff(&alpha, &beta, current)
			if beta <= alpha {
				break
			}
		}

		if ctx.timedOut() || currentBest == move.Null {
			break
		}

		bestMove, bestScore = currentBest, current

		log.Log.Debugf(
			"info depth %d score %s nodes %d time %d move %s",
			depth, bestScore, ctx.nodes, time.Since(start).Milliseconds(), bestMove,
		)

		if bestScore.IsMate() {
			break
		}
	}

	return bestMove, bestScore, nil
}

// lineAfter returns the repetition history to use for the subtree
// starting at child, reached by playing mv from a position whose
// history up to and including itself was prior. A capture or pawn
// move starts a fresh history, since no earlier position can recur
// once one has been played; otherwise child's hash is folded into a
// copy of prior so sibling branches don't see it.
func (ctx *Context) lineAfter(mv move.Move, prior repetition.Table, child *board.Board) repetition.Table {
	if !mv.IsReversible() {
		return repetition.New()
	}
	line := make(repetition.Table, len(prior)+1)
	for k, v := range prior {
		line[k] = v
	}
	line.Add(child.Hash)
	return line
}

// searchAt implements the recursive half of the search. The caller
// has already applied the move that reached b and folded b's hash
// into line.
func (ctx *Context) searchAt(b *board.Board, remaining int, alpha, beta score.Score, line repetition.Table) score.Score {
	ctx.nodes++

	if ctx.timedOut() {
		return eval.Evaluate(b)
	}

	if b.InsufficientMaterial() {
		return score.Draw
	}

	replies := b.LegalMoves(bitboard.Universe)
	if len(replies) == 0 {
		if b.IsInCheck(b.SideToMove) {
			return mateScoreFor(b.SideToMove.Other(), 0)
		}
		return score.Draw
	}

	if b.HalfMoveClock >= 100 {
		return score.Draw
	}

	if line.Get(b.Hash) >= 3 {
		return score.Draw
	}

	if remaining <= 0 {
		return ctx.quiescence(b, alpha, beta)
	}

	pol := policies[b.SideToMove]

	list := move.NewList(replies)
	list.Order(move.Null, victimValue(b))

	current := pol.worst
	for _, mv := range list.Moves() {
		if ctx.timedOut() {
			break
		}

		child := b.ApplyUnchecked(mv)
		childLine := ctx.lineAfter(mv, line, &child)

		result := ctx.searchAt(&child, remaining-1, alpha, beta, childLine)

		if pol.isBetter(current, result) {
			current = result
		}
		pol.updateCutoff(&alpha, &beta, current)
		if beta <= alpha {
			break
		}
	}

	return deepen(current)
}

// deepen extends a mate score propagating up one ply, so scores grow
// closer to Min/Max the nearer the mate is to the node they are
// reported at. Non-mate scores pass through unchanged.
func deepen(s score.Score) score.Score {
	plies, ok := s.MateIn()
	if !ok {
		return s
	}
	if s > 0 {
		return score.WhiteMateIn(plies + 1)
	}
	return score.BlackMateIn(plies + 1)
}

// mateScoreFor returns the mate score for the side delivering mate,
// counted plies away from the node it is returned at.
func mateScoreFor(mater piece.Color, plies int) score.Score {
	if mater == piece.White {
		return score.WhiteMateIn(plies)
	}
	return score.BlackMateIn(plies)
}

// victimValue returns a move-ordering key function for MVV: the value
// of the piece captured, read from b as it stood before the move.
func victimValue(b *board.Board) func(move.Move) int32 {
	return func(m move.Move) int32 {
		victim := b.Position[m.Target()].Type()
		return eval.PieceValue[victim]
	}
}
