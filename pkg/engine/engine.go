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

// Package engine bundles a board, its game history, and the search
// into the single stateful object a host drives one game through:
// set a position, feed it the moves as they are played, and ask for
// the best move under a time budget. It is the Go face of the plugin
// vtable in pkg/abi.
package engine

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/repetition"
	"github.com/corvidchess/corvid/pkg/score"
	"github.com/corvidchess/corvid/pkg/search"
)

// MoveResult reports the outcome of MakeMove: whether the move was
// accepted, and whether playing it completed a threefold repetition.
type MoveResult struct {
	IsValid         bool
	IsThreeFoldDraw bool
}

// Engine is a chess engine playing one game at a time. It is not safe
// for concurrent use; run one Engine per goroutine instead, they share
// no mutable state.
type Engine struct {
	ctx *search.Context
}

// New returns an Engine holding the standard starting position and an
// empty game history.
func New() *Engine {
	e := &Engine{ctx: search.NewContext(board.NewStandard())}
	e.ctx.History.Add(e.ctx.Board.Hash)
	return e
}

// Board returns the current position by value.
func (e *Engine) Board() board.Board {
	return *e.ctx.Board
}

// SetBoard replaces the current position and resets the game history,
// as when starting play from an arbitrary position.
func (e *Engine) SetBoard(b board.Board) {
	e.ctx.Board = &b
	e.ctx.History = repetition.New()
	e.ctx.History.Add(b.Hash)
}

// MakeMove validates m against the current position and, if legal,
// plays it and folds the resulting position into the game history. An
// illegal move leaves the engine's state untouched.
func (e *Engine) MakeMove(m move.Move) MoveResult {
	next, err := e.ctx.Board.Apply(m)
	if err != nil {
		return MoveResult{}
	}

	e.ctx.Board = &next
	if !m.IsReversible() {
		e.ctx.History = repetition.New()
	}

	return MoveResult{
		IsValid:         true,
		IsThreeFoldDraw: e.ctx.History.Add(next.Hash),
	}
}

// MakeMoveText parses move text (see board.ParseMove) and plays it via
// MakeMove. Malformed text is reported the same way as an illegal move.
func (e *Engine) MakeMoveText(text string) MoveResult {
	m, err := e.ctx.Board.ParseMove(text)
	if err != nil {
		return MoveResult{}
	}
	return e.MakeMove(m)
}

// Evaluate searches the current position until timeout reports the
// budget is spent, returning the best move found and its score. The
// move is move.Null when the position has no legal moves at all, in
// which case the score alone says whether it is mate or stalemate. It
// is also move.Null, with score.Draw, when the budget runs out before
// the first iteration completes or the search rejects the position.
func (e *Engine) Evaluate(timeout search.Timeout) (move.Move, score.Score) {
	mv, sc, err := e.ctx.Search(search.Limits{Timeout: timeout})
	if err != nil {
		return move.Null, score.Draw
	}
	return mv, sc
}
