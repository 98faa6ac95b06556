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
	"bytes"
	"log"

	"golang.org/x/exp/slices"
)

// InputSet accumulates keys (and optional payloads) for a future Build.
// A zero-value InputSet is ready to use. Add copies its key argument;
// AddBorrowed keeps a reference to the caller's slice instead, which
// saves an allocation but requires the caller not to mutate it while
// the InputSet, or a Table built from it, still holds it.
type InputSet struct {
	records []inputRecord
	logger  *log.Logger
}

// NewInputSet returns an empty InputSet. logger receives the warning
// printed when Add is asked to register a zero-length key (silently
// ignored, per the construction's requirement that every key have at
// least one byte); a nil logger disables the warning.
func NewInputSet(logger *log.Logger) *InputSet {
	return &InputSet{logger: logger}
}

// Reserve grows the InputSet's backing array so the next n Adds don't
// reallocate, without changing Len.
func (s *InputSet) Reserve(n int) {
	if n <= 0 {
		return
	}
	if cap(s.records)-len(s.records) >= n {
		return
	}
	grown := make([]inputRecord, len(s.records), len(s.records)+n)
	copy(grown, s.records)
	s.records = grown
}

// ReserveTotal is like Reserve but expressed as the total capacity the
// InputSet should have room for, not an increment.
func (s *InputSet) ReserveTotal(total int) {
	s.Reserve(total - len(s.records))
}

// Add registers key with the given payload, copying key's bytes into
// the InputSet. A zero-length key is ignored (and logged, if a logger
// was supplied) rather than rejected with an error, matching the
// construction's silent-skip handling of degenerate input.
func (s *InputSet) Add(key []byte, payload any) {
	if len(key) == 0 {
		if s.logger != nil {
			s.logger.Printf("mph: ignoring zero-length key")
		}
		return
	}
	cp := make([]byte, len(key))
	copy(cp, key)
	s.records = append(s.records, inputRecord{key: cp, payload: payload})
}

// AddBorrowed is like Add but keeps a reference to key instead of
// copying it. The caller must not modify key's contents while the
// InputSet or a Table built from it holds the key: every build
// iteration and Build's self-check re-hash the key bytes, and a Table
// keeps the same slice and compares queries against it in Lookup.
func (s *InputSet) AddBorrowed(key []byte, payload any) {
	if len(key) == 0 {
		if s.logger != nil {
			s.logger.Printf("mph: ignoring zero-length key")
		}
		return
	}
	s.records = append(s.records, inputRecord{key: key, borrowed: true, payload: payload})
}

// AddChecked is like Add but first scans the existing set for an equal
// key and, if found, returns false without adding the duplicate. It is
// O(n) per call, so callers adding large corpora with their own
// dedup index (a map, typically) should prefer Add.
func (s *InputSet) AddChecked(key []byte, payload any) bool {
	if slices.ContainsFunc(s.records, func(r inputRecord) bool {
		return bytes.Equal(r.key, key)
	}) {
		return false
	}
	s.Add(key, payload)
	return true
}

// Len reports the number of keys currently held.
func (s *InputSet) Len() int {
	return len(s.records)
}

// Iterate calls fn once per (key, payload) pair currently held, in
// registration order. fn must not retain key beyond the call if the
// corresponding Add used AddBorrowed.
func (s *InputSet) Iterate(fn func(key []byte, payload any)) {
	for _, r := range s.records {
		fn(r.key, r.payload)
	}
}
