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

package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/score"
	"github.com/corvidchess/corvid/pkg/search/eval"
	"github.com/corvidchess/corvid/pkg/square"
)

// quiescence extends the search at depth-zero nodes through capture
// sequences only, so the static evaluation is never taken in the
// middle of an exchange. The side to move may always "stand pat" on
// the static evaluation, since a quiet reply is available whenever no
// capture improves the position.
func (ctx *Context) quiescence(b *board.Board, alpha, beta score.Score) score.Score {
	ctx.nodes++

	pol := policies[b.SideToMove]

	current := eval.Evaluate(b)
	pol.updateCutoff(&alpha, &beta, current)
	if beta <= alpha {
		return current
	}

	mask := b.ColorBBs[b.SideToMove.Other()]
	if b.EnPassantTarget != square.None {
		mask.Set(b.EnPassantTarget)
	}

	captures := b.LegalMoves(mask)
	if len(captures) == 0 {
		return current
	}

	list := move.NewList(captures)
	list.Order(move.Null, victimValue(b))

	for _, mv := range list.Moves() {
		if ctx.timedOut() {
			break
		}

		child := b.ApplyUnchecked(mv)
		result := ctx.quiescence(&child, alpha, beta)

		if pol.isBetter(current, result) {
			current = result
		}
		pol.updateCutoff(&alpha, &beta, current)
		if beta <= alpha {
			break
		}
	}

	return current
}
