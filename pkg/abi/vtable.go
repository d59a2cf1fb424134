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

package abi

// This file carries the C definitions the shared library exports: the
// vtable itself, the ABI version string, and the helper that lets Go
// invoke the host's timeout callback. They live apart from abi.go
// because cgo forbids definitions in the preamble of a file containing
// //export directives.

/*
#include <stdint.h>

typedef struct corvid_move {
	uint8_t source;
	uint8_t target;
	uint8_t promotion;
} corvid_move;

typedef struct corvid_move_result {
	uint8_t is_valid;
	uint8_t is_three_fold_draw;
} corvid_move_result;

typedef struct corvid_score {
	uint8_t kind;
	int32_t value;
} corvid_score;

typedef struct corvid_evaluated_move {
	corvid_move best;
	uint8_t has_move;
	corvid_score score;
} corvid_evaluated_move;

typedef struct corvid_board {
	uint8_t squares[64];
	uint8_t side_to_move;
	uint8_t castle_rights;
	int8_t en_passant;
	uint16_t half_move_clock;
	uint16_t full_move_clock;
	uint8_t is_valid;
} corvid_board;

typedef struct corvid_timeout {
	void *data;
	uint8_t (*is_complete)(void *data);
} corvid_timeout;

uint8_t corvid_poll_timeout(corvid_timeout *t) {
	return t->is_complete(t->data);
}

// Prototypes of the Go functions exported from abi.go; the generated
// _cgo_export.h declares the same signatures.
extern uintptr_t corvid_new_engine(void);
extern void corvid_drop_engine(uintptr_t h);
extern corvid_board corvid_get_board(uintptr_t h);
extern uint8_t corvid_set_board(uintptr_t h, corvid_board b);
extern corvid_move_result corvid_make_move(uintptr_t h, corvid_move m);
extern corvid_evaluated_move corvid_evaluate(uintptr_t h, corvid_timeout *t);

typedef struct corvid_engine_api {
	uint32_t abi_version;
	const char *version;

	uintptr_t (*new_engine)(void);
	void (*drop_engine)(uintptr_t h);
	corvid_board (*board)(uintptr_t h);
	uint8_t (*set_board)(uintptr_t h, corvid_board b);
	corvid_move_result (*make_move)(uintptr_t h, corvid_move m);
	corvid_evaluated_move (*evaluate)(uintptr_t h, corvid_timeout *t);
} corvid_engine_api;

const char CORVID_ABI_VERSION[] = "corvid.engine.v1";

const corvid_engine_api CORVID_ENGINE_API = {
	1,
	CORVID_ABI_VERSION,
	corvid_new_engine,
	corvid_drop_engine,
	corvid_get_board,
	corvid_set_board,
	corvid_make_move,
	corvid_evaluate,
};
*/
import "C"
