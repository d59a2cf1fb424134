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

// Package config holds the engine's tunable constants. The defaults
// are an embedded TOML document, so the zero configuration is always
// available without touching the filesystem; Load layers an operator's
// overrides on top of it.
package config

import (
	_ "embed"

	"github.com/BurntSushi/toml"
)

// Config is the full set of engine tunables.
type Config struct {
	Search   Search   `toml:"search"`
	Material Material `toml:"material"`
	MopUp    MopUp    `toml:"mop-up"`
}

// Search bounds the search itself.
type Search struct {
	MaxDepth int `toml:"max-depth"`
}

// Material holds the piece values, in centipawns.
type Material struct {
	Pawn   int32 `toml:"pawn"`
	Knight int32 `toml:"knight"`
	Bishop int32 `toml:"bishop"`
	Rook   int32 `toml:"rook"`
	Queen  int32 `toml:"queen"`
}

// MopUp holds the endgame mop-up term's trigger and weights.
type MopUp struct {
	Threshold    int32 `toml:"threshold"`
	KingDistance int32 `toml:"king-distance"`
	EdgeDistance int32 `toml:"edge-distance"`
	Mobility     int32 `toml:"mobility"`
}

//go:embed config.toml
var defaults string

// Default returns the compiled-in configuration.
func Default() Config {
	var c Config
	if _, err := toml.Decode(defaults, &c); err != nil {
		panic("config: embedded defaults failed to parse: " + err.Error())
	}
	return c
}

// Load returns the default configuration with the TOML file at path
// layered over it; fields the file does not mention keep their
// defaults.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
