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
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/score"
)

// policy bundles the three decisions a side to move makes while
// negotiating an alpha-beta window, so the search can avoid both a
// generic type parameter per color and a virtual call per node: the
// two values below are selected once per node by a plain array index
// on the side to move, not dispatched dynamically.
type policy struct {
	worst        score.Score
	isBetter     func(current, candidate score.Score) bool
	updateCutoff func(alpha, beta *score.Score, current score.Score)
}

// policies holds the fixed White- and Black-to-move strategies: White
// maximizes alpha, Black minimizes beta. Scores are always absolute
// (positive favors White), so no sign flip is needed between plies;
// only the policy selected by the side to move changes.
var policies = [piece.ColorN]policy{
	piece.White: {
		worst: score.Min,
		isBetter: func(current, candidate score.Score) bool {
			return candidate > current
		},
		updateCutoff: func(alpha, beta *score.Score, current score.Score) {
			if current > *alpha {
				*alpha = current
			}
		},
	},
	piece.Black: {
		worst: score.Max,
		isBetter: func(current, candidate score.Score) bool {
			return candidate < current
		},
		updateCutoff: func(alpha, beta *score.Score, current score.Score) {
			if current < *beta {
				*beta = current
			}
		},
	},
}
