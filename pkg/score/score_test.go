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

package score_test

import (
	"math"
	"testing"

	"github.com/corvidchess/corvid/pkg/score"
)

func TestOrdering(t *testing.T) {
	if !(score.Min < score.BlackMateIn(500)) {
		t.Error("Min should be below every BlackMateIn score")
	}
	if !(score.BlackMateIn(1) < score.BlackMateIn(500)) {
		t.Error("a closer black mate should rank below a more distant one")
	}
	if !(score.BlackMateIn(1) < score.Raw(math.MinInt32)) {
		t.Error("BlackMateIn should rank below every raw score")
	}
	if !(score.Raw(math.MinInt32) < score.Raw(math.MaxInt32)) {
		t.Error("raw scores should compare as plain integers")
	}
	if !(score.Raw(math.MaxInt32) < score.WhiteMateIn(1)) {
		t.Error("WhiteMateIn should rank above every raw score")
	}
	if !(score.WhiteMateIn(500) < score.WhiteMateIn(1)) {
		t.Error("a closer white mate should rank above a more distant one")
	}
	if !(score.WhiteMateIn(1) < score.Max) {
		t.Error("Max should be above every WhiteMateIn score")
	}
}

func TestBoundaryProperties(t *testing.T) {
	if score.Raw(math.MaxInt32) >= score.WhiteMateIn(1000000) {
		t.Error("Raw(i32::MAX) should be below a white mate at any distance")
	}
	if score.Raw(math.MinInt32) <= score.BlackMateIn(1000000) {
		t.Error("Raw(i32::MIN) should be above a black mate at any distance")
	}
}

func TestNegate(t *testing.T) {
	if got := score.Raw(50).Negate(); got != score.Raw(-50) {
		t.Errorf("Raw(50).Negate() = %v, want Raw(-50)", got)
	}
	if got := score.WhiteMateIn(3).Negate(); got != score.BlackMateIn(3) {
		t.Errorf("WhiteMateIn(3).Negate() = %v, want BlackMateIn(3)", got)
	}
}

func TestMateIn(t *testing.T) {
	if plies, ok := score.WhiteMateIn(4).MateIn(); !ok || plies != 4 {
		t.Errorf("WhiteMateIn(4).MateIn() = (%d, %v), want (4, true)", plies, ok)
	}
	if plies, ok := score.BlackMateIn(7).MateIn(); !ok || plies != 7 {
		t.Errorf("BlackMateIn(7).MateIn() = (%d, %v), want (7, true)", plies, ok)
	}
	if _, ok := score.Raw(12345).MateIn(); ok {
		t.Error("Raw score reported as a mate")
	}
}

func TestIsMate(t *testing.T) {
	if score.Raw(math.MaxInt32).IsMate() {
		t.Error("Raw(i32::MAX) should not be reported as a mate")
	}
	if !score.WhiteMateIn(1).IsMate() {
		t.Error("WhiteMateIn(1) should be reported as a mate")
	}
}
