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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dchest/siphash"

	"github.com/chmhash/mph/compr"
)

// loadCorpus reads one key per line from path. A path ending in .zst is
// transparently decompressed. Blank lines are skipped. It returns the
// keys read and a siphash fingerprint of the corpus (the XOR of every
// key's hash, so it does not depend on line order) so repeated runs
// against the same file can be confirmed to have seen the same keys.
func loadCorpus(path string) (keys [][]byte, fingerprint uint64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("mphbench: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := compr.OpenZstd(f)
		if err != nil {
			return nil, 0, fmt.Errorf("mphbench: opening zstd corpus: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	const k0, k1 = 0x6d706862, 0x656e6368 // "mphb", "ench" (a fixed fingerprint key, not a secret)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		keys = append(keys, cp)
		fingerprint ^= siphash.Hash(k0, k1, cp)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("mphbench: reading corpus: %w", err)
	}
	return keys, fingerprint, nil
}
