// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package bitboard implements a 64-bit bitboard and related functions
// for manipulating sets of squares.
package bitboard

import (
	"math/bits"

	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Board is a set of squares packed into a 64-bit integer, bit i set
// meaning square.Square(i) is a member of the set.
type Board uint64

// String renders the board as a grid of 1s and 0s, one rank per line.
func (b Board) String() string {
	var str string
	for s := square.A8; s <= square.H1; s++ {
		if b.IsSet(s) {
			str += "1"
		} else {
			str += "0"
		}

		if s.File() == square.FileH {
			str += "\n"
		} else {
			str += " "
		}
	}

	return str
}

// Up shifts the board towards the far rank relative to the given color.
func (b Board) Up(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.North()
	case piece.Black:
		return b.South()
	default:
		panic("bitboard: bad color")
	}
}

// Down shifts the board towards the near rank relative to the given color.
func (b Board) Down(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.South()
	case piece.Black:
		return b.North()
	default:
		panic("bitboard: bad color")
	}
}

// North shifts the board towards rank 8.
func (b Board) North() Board {
	return b >> 8
}

// South shifts the board towards rank 1.
func (b Board) South() Board {
	return b << 8
}

// East shifts the board towards the h-file, clearing wraparound bits.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the board towards the a-file, clearing wraparound bits.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns the least significant set square and clears it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set square, or 64 if none
// are set; callers typically guard with a prior emptiness check.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is a member of the set.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set adds the given square to the set. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset removes the given square from the set. Unsetting square.None
// is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
