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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/config"
)

func TestDefaults(t *testing.T) {
	c := config.Default()

	assert.Equal(t, 256, c.Search.MaxDepth)
	assert.Equal(t, int32(100), c.Material.Pawn)
	assert.Equal(t, int32(800), c.Material.Queen)
	assert.Equal(t, int32(2300), c.MopUp.Threshold)
}

func TestLoadOverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.toml")
	require.NoError(t, os.WriteFile(path, []byte("[material]\nqueen = 900\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, int32(900), c.Material.Queen, "overridden field")
	assert.Equal(t, int32(100), c.Material.Pawn, "untouched field keeps its default")
	assert.Equal(t, 256, c.Search.MaxDepth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
