// Copyright (C) 2026 The mph Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/chmhash/mph"
)

// tunablesFile is the on-disk shape of a -config file. Any tunable left
// out keeps mph.DefaultTunables' value for it; prealloc defaults to 0.
type tunablesFile struct {
	NMaxMult  *int `json:"nMaxMult,omitempty"`
	GrowEvery *int `json:"growEvery,omitempty"`
	GrowMul   *int `json:"growMul,omitempty"`
	GrowDiv   *int `json:"growDiv,omitempty"`
	Prealloc  *int `json:"prealloc,omitempty"`
}

// loadTunables reads path (YAML or JSON, sigs.k8s.io/yaml accepts both)
// and overlays it on mph.DefaultTunables. An empty path returns the
// defaults unchanged.
func loadTunables(path string) (mph.Tunables, int, error) {
	t := mph.DefaultTunables
	prealloc := 0
	if path == "" {
		return t, prealloc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, prealloc, fmt.Errorf("mphbench: reading config: %w", err)
	}

	var f tunablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return t, prealloc, fmt.Errorf("mphbench: parsing config: %w", err)
	}

	if f.NMaxMult != nil {
		t.NMaxMult = *f.NMaxMult
	}
	if f.GrowEvery != nil {
		t.GrowEvery = *f.GrowEvery
	}
	if f.GrowMul != nil {
		t.GrowMul = *f.GrowMul
	}
	if f.GrowDiv != nil {
		t.GrowDiv = *f.GrowDiv
	}
	if f.Prealloc != nil {
		prealloc = *f.Prealloc
	}
	return t, prealloc, nil
}
