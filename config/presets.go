// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads named data-layout presets for a handful of
// common target triples, so cmd/symsh doesn't need a real LLVM
// frontend on hand to pick a layout to lift types against.
package config

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/llvm-symex/typecore/internal/datalayout"
)

//go:embed testdata/*.toml
var presetFS embed.FS

// preset is the on-disk shape of one target's TOML document.
type preset struct {
	Name   string `toml:"name"`
	Layout string `toml:"layout"`
}

// Known target triples with a bundled preset.
const (
	X8664Linux   = "x86_64-linux"
	AArch64Linux = "aarch64-linux"
	I386Linux    = "i386-linux"
)

// Load decodes the named preset and parses its data-layout string into
// a usable *datalayout.Layout.
func Load(name string) (*datalayout.Layout, error) {
	path := fmt.Sprintf("testdata/%s.toml", name)
	data, err := presetFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: no preset named %q: %w", name, err)
	}
	var p preset
	if _, err := toml.Decode(string(data), &p); err != nil {
		return nil, fmt.Errorf("config: malformed preset %q: %w", name, err)
	}
	layout, err := datalayout.Parse(p.Layout)
	if err != nil {
		return nil, fmt.Errorf("config: preset %q: %w", name, err)
	}
	return layout, nil
}
