// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package fen parses and emits Forsyth-Edwards Notation, the standard
// text format for a single chess position.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Starting is the FEN of the standard chess starting position.
const Starting = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError reports a syntactically or semantically malformed FEN
// string; the Field it names is 0-indexed into the six space-separated
// FEN fields. fen.Parse never panics on malformed input.
type ParseError struct {
	Field  int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: field %d: %s", e.Field, e.Reason)
}

// Parse parses a complete FEN string into a validated Board. It
// surfaces *ParseError for malformed text and *board.ValidationError
// (via board.FromPlacement) for a structurally valid but illegal
// position.
func Parse(fen string) (*board.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &ParseError{Field: len(fields), Reason: "expected 6 whitespace-separated fields"}
	}

	if err := validatePlacement(fields[0]); err != nil {
		return nil, err
	}

	var stm piece.Color
	switch fields[1] {
	case "w":
		stm = piece.White
	case "b":
		stm = piece.Black
	default:
		return nil, &ParseError{Field: 1, Reason: "active color must be 'w' or 'b'"}
	}

	if err := validateCastling(fields[2]); err != nil {
		return nil, err
	}
	rights := castling.NewRights(fields[2])

	ep := square.None
	if fields[3] != "-" {
		if len(fields[3]) != 2 || fields[3][0] < 'a' || fields[3][0] > 'h' ||
			(fields[3][1] != '3' && fields[3][1] != '6') {
			return nil, &ParseError{Field: 3, Reason: "en passant target must be a square on rank 3 or 6, or '-'"}
		}
		ep = square.NewFromString(fields[3])
	}

	halfMove, err := strconv.ParseUint(fields[4], 10, 16)
	if err != nil {
		return nil, &ParseError{Field: 4, Reason: "half-move clock must be a non-negative integer"}
	}

	fullMove, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil {
		return nil, &ParseError{Field: 5, Reason: "full-move number must be a non-negative integer"}
	}

	return board.FromPlacement(fields[0], stm, rights, ep, uint16(halfMove), uint16(fullMove))
}

func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{Field: 0, Reason: "piece placement must have 8 ranks separated by '/'"}
	}
	for _, rank := range ranks {
		files := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case strings.ContainsRune("PNBRQKpnbrqk", ch):
				files++
			default:
				return &ParseError{Field: 0, Reason: "invalid piece glyph '" + string(ch) + "'"}
			}
		}
		if files != 8 {
			return &ParseError{Field: 0, Reason: "rank does not sum to 8 files"}
		}
	}
	return nil
}

func validateCastling(field string) error {
	if field == "-" {
		return nil
	}
	seen := map[byte]bool{}
	for i := 0; i < len(field); i++ {
		c := field[i]
		if !strings.ContainsRune("KQkq", rune(c)) {
			return &ParseError{Field: 2, Reason: "castling field must be a subset of 'KQkq', or '-'"}
		}
		if seen[c] {
			return &ParseError{Field: 2, Reason: "castling field repeats a right"}
		}
		seen[c] = true
	}
	return nil
}

// String renders b as a complete FEN string.
func String(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString(b.Position.FEN())
	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(b.CastleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.HalfMoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.FullMoveClock)))
	return sb.String()
}
