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

// Package eval implements the static position evaluation used by the
// search: material balance plus an endgame "mop-up" bonus that steers
// the winning side towards cornering the losing king.
package eval

import (
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/config"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/score"
	"github.com/corvidchess/corvid/pkg/square"
)

var cfg = config.Default()

// PieceValue holds the centipawn value of each piece type, indexed by
// piece.Type. NoType and King are unused (the king's value plays no
// part in material counting); exported so move ordering can rank
// captures by the value of the piece they take (MVV).
var PieceValue = [piece.TypeN]int32{
	piece.Pawn:   cfg.Material.Pawn,
	piece.Knight: cfg.Material.Knight,
	piece.Bishop: cfg.Material.Bishop,
	piece.Rook:   cfg.Material.Rook,
	piece.Queen:  cfg.Material.Queen,
}

// mopUpThreshold is the material below which a side is considered to
// be losing badly enough to trigger the endgame mop-up term: a queen
// and three rooks' worth of material by default.
var mopUpThreshold = cfg.MopUp.Threshold

// distFromEdge[s] grows with s's distance from the board's edges,
// combining the file-edge and rank-edge distances so corners score 0
// and the four center squares score the most. Precomputed once since
// it never changes.
var distFromEdge [square.N]int32

func init() {
	for s := square.Square(0); s < square.N; s++ {
		file := int32(s.File())
		rank := int32(s.Rank())

		toFileEdge := util.Min(file, square.FileN-1-file)
		toRankEdge := util.Min(rank, square.RankN-1-rank)
		distFromEdge[s] = toFileEdge*toRankEdge*10 + toFileEdge*toFileEdge + toRankEdge*toRankEdge
	}
}

// Material returns the sum of the centipawn value of every piece of
// the given color on the board; kings are not counted.
func Material(b *board.Board, c piece.Color) int32 {
	var total int32
	total += int32(b.Pawns(c).Count()) * PieceValue[piece.Pawn]
	total += int32(b.Knights(c).Count()) * PieceValue[piece.Knight]
	total += int32(b.Bishops(c).Count()) * PieceValue[piece.Bishop]
	total += int32(b.Rooks(c).Count()) * PieceValue[piece.Rook]
	total += int32(b.Queens(c).Count()) * PieceValue[piece.Queen]
	return total
}

// mopUp returns the endgame term credited to the losing side's score
// when its material drops below mopUpThreshold. The winning side
// minimizes it, which drives the winning king towards the losing king,
// the losing king towards the board edge, and its escape-square count
// towards zero.
func mopUp(b *board.Board, better piece.Color) int32 {
	worse := better.Other()

	betterKing := b.Kings[better]
	worseKing := b.Kings[worse]

	fileDist := util.Abs(int32(betterKing.File()) - int32(worseKing.File()))
	rankDist := util.Abs(int32(betterKing.Rank()) - int32(worseKing.Rank()))
	dist := util.Max(fileDist, rankDist) // Chebyshev distance

	kingMoves := attacks.King[worseKing] &^ b.ColorBBs[worse]

	var penalty int32
	penalty += dist * dist * cfg.MopUp.KingDistance
	penalty += distFromEdge[worseKing] * cfg.MopUp.EdgeDistance
	penalty += int32(kingMoves.Count()) * cfg.MopUp.Mobility
	return penalty
}

// Evaluate returns the static evaluation of b from White's perspective
// (positive favors White), per the material-plus-mop-up formula.
func Evaluate(b *board.Board) score.Score {
	white := Material(b, piece.White)
	black := Material(b, piece.Black)

	whiteScore := white * 100
	blackScore := black * 100

	switch {
	case white > black && black < mopUpThreshold:
		blackScore += mopUp(b, piece.White)
	case black > white && white < mopUpThreshold:
		whiteScore += mopUp(b, piece.Black)
	}

	return score.Raw(whiteScore - blackScore)
}
