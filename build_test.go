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

package mph

import (
	"fmt"
	"reflect"
	"testing"
)

func words(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte(fmt.Sprintf("key-%04d", i))
	}
	return out
}

func buildSet(t *testing.T, keys [][]byte, seed byte) (*Table, *BuildStats) {
	t.Helper()
	in := NewInputSet(nil)
	for i, k := range keys {
		in.Add(k, i)
	}
	var stats BuildStats
	tbl, err := Build(in,
		WithRandSource(NewDeterministicSource([]byte{seed})),
		WithStats(&stats),
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tbl, &stats
}

func TestBuildEmptyInput(t *testing.T) {
	in := NewInputSet(nil)
	if _, err := Build(in); err != ErrEmptyInput {
		t.Fatalf("Build(empty) err = %v, want %v", err, ErrEmptyInput)
	}
}

func TestBuildSingleKey(t *testing.T) {
	tbl, _ := buildSet(t, words(1), 1)
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
	res, ok := tbl.Lookup([]byte("key-0000"))
	if !ok || res.Payload.(int) != 0 {
		t.Fatalf("Lookup(key-0000) = %+v, %v", res, ok)
	}
}

func TestBuildAssignsDistinctIndices(t *testing.T) {
	keys := words(500)
	tbl, _ := buildSet(t, keys, 7)

	seen := make([]bool, tbl.Len())
	for _, k := range keys {
		res, ok := tbl.Lookup(k)
		if !ok {
			t.Fatalf("Lookup(%s) = not found", k)
		}
		idx := res.Payload.(int)
		if seen[idx] {
			t.Fatalf("index %d assigned to more than one key", idx)
		}
		seen[idx] = true
	}
	for i, s := range seen {
		if !s {
			t.Errorf("index %d never assigned", i)
		}
	}
}

func TestBuildRejectsNonMembers(t *testing.T) {
	keys := words(200)
	tbl, _ := buildSet(t, keys, 3)

	for _, q := range [][]byte{
		[]byte("not-a-key"),
		[]byte("key-0000x"),
		[]byte(""),
		[]byte("key-9999"),
	} {
		if _, ok := tbl.Lookup(q); ok {
			t.Errorf("Lookup(%q) reported a match for a non-member", q)
		}
	}
}

func TestBuildBinaryKeysWithEmbeddedZero(t *testing.T) {
	keys := [][]byte{
		{0x00, 0x01, 0x02},
		{0x00, 0x00, 0x00},
		{0xff, 0x00, 0xff},
		{0x00},
		{0x01, 0x00, 0x02, 0x00},
	}
	tbl, _ := buildSet(t, keys, 5)

	for i, k := range keys {
		res, ok := tbl.Lookup(k)
		if !ok {
			t.Fatalf("Lookup(%x) = not found", k)
		}
		if res.Payload.(int) != i {
			t.Errorf("Lookup(%x) payload = %v, want %d", k, res.Payload, i)
		}
	}

	// A key that differs from a stored one only by a truncated trailing
	// zero byte must not be confused with it.
	if _, ok := tbl.Lookup([]byte{0x00, 0x00}); ok {
		t.Error("Lookup matched a truncated-by-one-zero-byte variant of a stored key")
	}
}

// countingSource wraps a RandSource and counts every draw, to verify
// lookup-time hashing never consults the PRNG.
type countingSource struct {
	RandSource
	draws int
}

func (c *countingSource) Uint64() uint64 {
	c.draws++
	return c.RandSource.Uint64()
}

func TestLookupRejectsQueryLongerThanSalt(t *testing.T) {
	keys := words(50) // each key is 8 bytes, e.g. "key-0000"
	src := &countingSource{RandSource: NewDeterministicSource([]byte{6})}

	in := NewInputSet(nil)
	for i, k := range keys {
		in.Add(k, i)
	}
	tbl, err := Build(in, WithRandSource(src))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	drawsBeforeLookup := src.draws
	query := []byte("key-00000-longer-than-any-built-salt")
	if _, ok := tbl.Lookup(query); ok {
		t.Fatalf("Lookup(%q) reported a match, want a miss", query)
	}
	if src.draws != drawsBeforeLookup {
		t.Errorf("Lookup drew from the PRNG (%d draws) for a query longer than every salt", src.draws-drawsBeforeLookup)
	}
}

func TestBuildDeterministic(t *testing.T) {
	keys := words(300)

	build := func() *Table {
		tbl, _ := buildSet(t, keys, 42)
		for _, k := range keys {
			if _, ok := tbl.Lookup(k); !ok {
				t.Fatalf("Lookup(%s) = not found", k)
			}
		}
		return tbl
	}

	a := build()
	b := build()
	if !reflect.DeepEqual(a.values, b.values) || !reflect.DeepEqual(a.f1.salt, b.f1.salt) || !reflect.DeepEqual(a.f2.salt, b.f2.salt) {
		t.Fatalf("same seed produced a different construction: order %d vs %d, values or salts differ", len(a.values), len(b.values))
	}
}

func TestBuildStatsPopulated(t *testing.T) {
	_, stats := buildSet(t, words(1000), 9)
	if stats.Iterations == 0 {
		t.Error("Iterations not populated")
	}
	if stats.FinalOrder <= len(words(1000)) {
		t.Errorf("FinalOrder = %d, want > key count", stats.FinalOrder)
	}
	if stats.HashInvocations == 0 {
		t.Error("HashInvocations not populated")
	}
}

func TestBuildTruncatesInputSetOnSuccess(t *testing.T) {
	in := NewInputSet(nil)
	for _, k := range words(50) {
		in.Add(k, nil)
	}
	if _, err := Build(in); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if in.Len() != 0 {
		t.Fatalf("InputSet.Len() after successful Build = %d, want 0", in.Len())
	}
}

func TestTableRecycle(t *testing.T) {
	keys := words(100)
	tbl, _ := buildSet(t, keys, 11)

	in := tbl.Recycle()
	if in.Len() != len(keys) {
		t.Fatalf("Recycle: Len() = %d, want %d", in.Len(), len(keys))
	}

	tbl2, err := Build(in)
	if err != nil {
		t.Fatalf("Build after Recycle: %v", err)
	}
	for _, k := range keys {
		if _, ok := tbl2.Lookup(k); !ok {
			t.Errorf("rebuilt table missing key %s", k)
		}
	}
}

func TestTableCopyToInputSetKeepsOriginal(t *testing.T) {
	keys := words(20)
	tbl, _ := buildSet(t, keys, 2)

	in := tbl.CopyToInputSet()
	if in.Len() != len(keys) {
		t.Fatalf("CopyToInputSet: Len() = %d, want %d", in.Len(), len(keys))
	}
	for _, k := range keys {
		if _, ok := tbl.Lookup(k); !ok {
			t.Errorf("original table lost key %s after CopyToInputSet", k)
		}
	}
}
