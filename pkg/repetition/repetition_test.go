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

package repetition_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/repetition"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

func TestThreefold(t *testing.T) {
	table := repetition.New()
	const hash zobrist.Key = 0xdeadbeef

	if table.Add(hash) {
		t.Error("1st visit reported as threefold")
	}
	if table.Add(hash) {
		t.Error("2nd visit reported as threefold")
	}
	if !table.Add(hash) {
		t.Error("3rd visit not reported as threefold")
	}
	if got := table.Get(hash); got != 3 {
		t.Errorf("Get() = %d, want 3", got)
	}
}

func TestGetAbsent(t *testing.T) {
	table := repetition.New()
	if got := table.Get(0x1234); got != 0 {
		t.Errorf("Get() on an absent key = %d, want 0", got)
	}
}
