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

// Command mphbench builds a minimal perfect hash table over a corpus of
// newline-delimited keys and reports the construction's diagnostics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/cpu"

	"github.com/chmhash/mph"
)

func main() {
	corpusPath := flag.String("corpus", "", "path to a newline-delimited key corpus (.zst for zstd-compressed)")
	configPath := flag.String("config", "", "path to a YAML/JSON tunables file (defaults to mph.DefaultTunables)")
	seed := flag.String("seed", "", "seed for a deterministic build (empty uses the default OS-seeded source)")
	flag.Parse()

	runID := uuid.New().String()
	logger := log.New(os.Stderr, fmt.Sprintf("mphbench[%s] ", runID[:8]), log.LstdFlags)

	if *corpusPath == "" {
		logger.Fatal("-corpus is required")
	}

	logSIMDFeatures(logger)

	keys, fingerprint, err := loadCorpus(*corpusPath)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Printf("loaded %d keys from %s (fingerprint %016x)", len(keys), *corpusPath, fingerprint)

	tunables, prealloc, err := loadTunables(*configPath)
	if err != nil {
		logger.Fatal(err)
	}

	in := mph.NewInputSet(logger)
	in.Reserve(len(keys))
	for _, k := range keys {
		in.Add(k, nil)
	}

	opts := []mph.Option{
		mph.WithTunables(tunables),
		mph.WithAdjacencyPrealloc(prealloc),
		mph.WithLogger(logger),
	}
	if *seed != "" {
		opts = append(opts, mph.WithRandSource(mph.NewDeterministicSource([]byte(*seed))))
	}

	var stats mph.BuildStats
	opts = append(opts, mph.WithStats(&stats))

	start := time.Now()
	tbl, err := mph.Build(in, opts...)
	elapsed := time.Since(start)
	if err != nil {
		logger.Fatalf("build failed after %s: %v", elapsed, err)
	}

	logger.Printf("built table over %d keys in %s", tbl.Len(), elapsed)
	logger.Printf("iterations=%d final_order=%d stack_peak=%d vertices_explored=%d",
		stats.Iterations, stats.FinalOrder, stats.StackPeak, stats.VerticesExplored)
	logger.Printf("prng_draws=%d hash_invocations=%d adjacency=[%d,%d]",
		stats.PRNGDraws, stats.HashInvocations, stats.AdjacencyMin, stats.AdjacencyMax)
	logger.Printf("edge_reallocs=%d edge_realloc_bytes=%d salt_reallocs=%d salt_realloc_bytes=%d",
		stats.EdgeReallocs, stats.EdgeReallocBytes, stats.SaltReallocs, stats.SaltReallocBytes)
}

// logSIMDFeatures reports the detected SIMD feature set as benchmark
// context. The hash function mphbench exercises is a plain scalar sum
// and never branches on these; this is informational only.
func logSIMDFeatures(logger *log.Logger) {
	logger.Printf("cpu features: avx512=%v avx512vbmi=%v avx2=%v",
		cpu.X86.HasAVX512, cpu.X86.HasAVX512VBMI, cpu.X86.HasAVX2)
}
