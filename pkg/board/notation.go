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

package board

import (
	"strings"

	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// MoveParseError reports malformed move text given to ParseMove. It is
// distinct from ErrIllegalMove: text that parses fine but names a move
// the position does not allow is only rejected later, by Apply.
type MoveParseError struct {
	Text   string
	Reason string
}

func (e *MoveParseError) Error() string {
	return "board: cannot parse move " + e.Text + ": " + e.Reason
}

// ParseMove parses move text of the form <src><dest> or <src>-<dest>,
// optionally followed by a promotion piece letter (n, b, r or q, either
// case), resolving the squares against the receiver to fill in the
// moving piece and capture flag. It never panics on malformed input,
// and it does not check legality.
func (b *Board) ParseMove(text string) (move.Move, error) {
	s := text
	if len(s) >= 5 && s[2] == '-' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 && len(s) != 5 {
		return move.Null, &MoveParseError{Text: text, Reason: "expected 4 or 5 characters"}
	}

	from, ok := parseSquare(s[0:2])
	if !ok {
		return move.Null, &MoveParseError{Text: text, Reason: "bad source square"}
	}
	to, ok := parseSquare(s[2:4])
	if !ok {
		return move.Null, &MoveParseError{Text: text, Reason: "bad destination square"}
	}

	m := b.Move(from, to)

	if len(s) == 5 {
		var promo piece.Type
		switch strings.ToLower(s[4:]) {
		case "n":
			promo = piece.Knight
		case "b":
			promo = piece.Bishop
		case "r":
			promo = piece.Rook
		case "q":
			promo = piece.Queen
		default:
			return move.Null, &MoveParseError{Text: text, Reason: "bad promotion piece letter"}
		}
		m = m.SetPromotion(piece.New(promo, b.SideToMove))
	}

	return m, nil
}

func parseSquare(s string) (square.Square, bool) {
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return square.None, false
	}
	return square.NewFromString(s), true
}
