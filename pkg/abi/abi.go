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

// Package abi exposes pkg/engine across a process boundary as a fixed
// C vtable, so a host written in any language can dlopen a build of
// cmd/plugin (compiled with -buildmode=c-shared) and drive the engine
// through plain function pointers.
//
// The contract, from the host's point of view:
//
//   - The shared library exports a const struct of function pointers,
//     CORVID_ENGINE_API, and a version string, CORVID_ABI_VERSION. A
//     host must compare the version string against the one it was
//     compiled for and reject the library on mismatch.
//   - Engine handles are opaque integers. Every handle returned by
//     new_engine must eventually be passed to drop_engine, and no
//     vtable function may be called concurrently on the same handle.
//   - All struct fields have fixed size and layout; optional values on
//     the wire are a widened field with an explicit "none" code, never
//     a nullable pointer.
//   - corvid_timeout is borrowed for the duration of evaluate only;
//     the engine polls it cooperatively and never retains it.
//
// Go panics are caught at the boundary and reported through each
// call's failure value (an invalid move result, a zero handle), since
// unwinding across the C boundary is undefined behavior.
package abi

/*
#include <stdint.h>

typedef struct corvid_move {
	uint8_t source;
	uint8_t target;
	uint8_t promotion; // piece type code; 0 when not a promotion
} corvid_move;

typedef struct corvid_move_result {
	uint8_t is_valid;
	uint8_t is_three_fold_draw;
} corvid_move_result;

typedef struct corvid_score {
	uint8_t kind; // 0 raw centipawns, 1 white mates, 2 black mates
	int32_t value; // centipawns, or plies to mate
} corvid_score;

typedef struct corvid_evaluated_move {
	corvid_move best;
	uint8_t has_move; // 0 when evaluate returned no move
	corvid_score score;
} corvid_evaluated_move;

typedef struct corvid_board {
	uint8_t squares[64]; // piece codes in a8..h1 order; 0 is empty
	uint8_t side_to_move; // 0 white, 1 black
	uint8_t castle_rights; // bitmask: 1 K, 2 Q, 4 k, 8 q
	int8_t en_passant; // target square index, -1 when unset
	uint16_t half_move_clock;
	uint16_t full_move_clock;
	uint8_t is_valid; // set by board(); ignored by set_board()
} corvid_board;

typedef struct corvid_timeout {
	void *data;
	uint8_t (*is_complete)(void *data);
} corvid_timeout;

extern uint8_t corvid_poll_timeout(corvid_timeout *t);
*/
import "C"

import (
	"sync"

	"github.com/corvidchess/corvid/internal/log"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/mailbox"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// engines maps the opaque integer handles handed to the host onto
// their engine instances. cgo forbids passing Go pointers through C
// memory, so the handle is a key, not an address.
var engines = struct {
	sync.Mutex
	next    uintptr
	byID    map[uintptr]*engine.Engine
}{byID: make(map[uintptr]*engine.Engine)}

func lookup(h C.uintptr_t) *engine.Engine {
	engines.Lock()
	defer engines.Unlock()
	return engines.byID[uintptr(h)]
}

// recovered logs a panic caught at the ABI boundary. Each exported
// function returns its failure value after calling it.
func recovered(fn string) {
	if r := recover(); r != nil {
		log.Log.Errorf("abi: panic in %s contained at boundary: %v", fn, r)
	}
}

//export corvid_new_engine
func corvid_new_engine() C.uintptr_t {
	defer recovered("new_engine")

	e := engine.New()

	engines.Lock()
	defer engines.Unlock()
	engines.next++
	engines.byID[engines.next] = e
	return C.uintptr_t(engines.next)
}

//export corvid_drop_engine
func corvid_drop_engine(h C.uintptr_t) {
	defer recovered("drop_engine")

	engines.Lock()
	defer engines.Unlock()
	delete(engines.byID, uintptr(h))
}

//export corvid_get_board
func corvid_get_board(h C.uintptr_t) (out C.corvid_board) {
	defer recovered("board")

	e := lookup(h)
	if e == nil {
		return out
	}

	b := e.Board()
	for s := square.A8; s <= square.H1; s++ {
		out.squares[s] = C.uint8_t(b.Position[s])
	}
	out.side_to_move = C.uint8_t(b.SideToMove)
	out.castle_rights = C.uint8_t(b.CastleRights)
	out.en_passant = C.int8_t(b.EnPassantTarget)
	out.half_move_clock = C.uint16_t(b.HalfMoveClock)
	out.full_move_clock = C.uint16_t(b.FullMoveClock)
	out.is_valid = 1
	return out
}

//export corvid_set_board
func corvid_set_board(h C.uintptr_t, in C.corvid_board) C.uint8_t {
	defer recovered("set_board")

	e := lookup(h)
	if e == nil {
		return 0
	}

	b, err := boardFromWire(in)
	if err != nil {
		log.Log.Warningf("abi: set_board rejected position: %v", err)
		return 0
	}

	e.SetBoard(*b)
	return 1
}

//export corvid_make_move
func corvid_make_move(h C.uintptr_t, in C.corvid_move) (out C.corvid_move_result) {
	defer recovered("make_move")

	e := lookup(h)
	if e == nil {
		return out
	}

	m, ok := moveFromWire(e, in)
	if !ok {
		return out
	}

	res := e.MakeMove(m)
	if res.IsValid {
		out.is_valid = 1
	}
	if res.IsThreeFoldDraw {
		out.is_three_fold_draw = 1
	}
	return out
}

//export corvid_evaluate
func corvid_evaluate(h C.uintptr_t, t *C.corvid_timeout) (out C.corvid_evaluated_move) {
	defer recovered("evaluate")

	e := lookup(h)
	if e == nil {
		return out
	}

	timeout := func() bool {
		return C.corvid_poll_timeout(t) != 0
	}

	mv, sc := e.Evaluate(timeout)

	if mv != move.Null {
		out.has_move = 1
		out.best.source = C.uint8_t(mv.Source())
		out.best.target = C.uint8_t(mv.Target())
		if mv.IsPromotion() {
			out.best.promotion = C.uint8_t(mv.ToPiece().Type())
		}
	}

	if plies, isMate := sc.MateIn(); isMate {
		out.score.value = C.int32_t(plies)
		if sc > 0 {
			out.score.kind = 1
		} else {
			out.score.kind = 2
		}
	} else {
		out.score.kind = 0
		out.score.value = C.int32_t(sc)
	}
	return out
}

func boardFromWire(in C.corvid_board) (*board.Board, error) {
	var mb mailbox.Board
	for s := square.A8; s <= square.H1; s++ {
		p := piece.Piece(in.squares[s])
		if p != piece.NoPiece && (p.Type() == piece.NoType || p.Type() > piece.King) {
			return nil, &board.ValidationError{Reason: "unknown piece code on the wire"}
		}
		mb[s] = p
	}

	ep := square.Square(in.en_passant)
	if ep < square.None || ep > square.H1 {
		return nil, &board.ValidationError{Reason: "en passant square out of range"}
	}

	stm := piece.Color(in.side_to_move)
	if stm != piece.White && stm != piece.Black {
		return nil, &board.ValidationError{Reason: "unknown side to move"}
	}

	rights := castling.Rights(in.castle_rights)
	if rights > castling.All {
		return nil, &board.ValidationError{Reason: "unknown castle rights bits"}
	}

	return board.FromPlacement(
		mb.FEN(), stm, rights, ep,
		uint16(in.half_move_clock), uint16(in.full_move_clock),
	)
}

func moveFromWire(e *engine.Engine, in C.corvid_move) (move.Move, bool) {
	from, to := square.Square(in.source), square.Square(in.target)
	if from < square.A8 || from > square.H1 || to < square.A8 || to > square.H1 {
		return move.Null, false
	}

	b := e.Board()
	m := b.Move(from, to)

	if in.promotion != 0 {
		promo := piece.Type(in.promotion)
		switch promo {
		case piece.Knight, piece.Bishop, piece.Rook, piece.Queen:
			m = m.SetPromotion(piece.New(promo, b.SideToMove))
		default:
			return move.Null, false
		}
	}
	return m, true
}
