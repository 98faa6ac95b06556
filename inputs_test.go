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

import "testing"

func TestInputSetAddIgnoresEmptyKey(t *testing.T) {
	s := NewInputSet(nil)
	s.Add(nil, 1)
	s.Add([]byte{}, 2)
	s.Add([]byte("ok"), 3)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestInputSetAddChecked(t *testing.T) {
	s := NewInputSet(nil)
	if !s.AddChecked([]byte("a"), nil) {
		t.Fatal("first AddChecked of a new key returned false")
	}
	if s.AddChecked([]byte("a"), nil) {
		t.Fatal("AddChecked of a duplicate key returned true")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestInputSetAddBorrowedAliasesCaller(t *testing.T) {
	buf := []byte("borrowed")
	s := NewInputSet(nil)
	s.AddBorrowed(buf, nil)

	var seen []byte
	s.Iterate(func(key []byte, _ any) { seen = key })
	if &seen[0] != &buf[0] {
		t.Fatal("AddBorrowed copied the key instead of aliasing it")
	}
}

func TestInputSetAddCopies(t *testing.T) {
	buf := []byte("copied")
	s := NewInputSet(nil)
	s.Add(buf, nil)
	buf[0] = 'X'

	var seen []byte
	s.Iterate(func(key []byte, _ any) { seen = key })
	if string(seen) != "copied" {
		t.Fatalf("Add did not copy key: got %q", seen)
	}
}

func TestInputSetIterateOrder(t *testing.T) {
	s := NewInputSet(nil)
	want := []string{"a", "b", "c"}
	for i, k := range want {
		s.Add([]byte(k), i)
	}
	var got []string
	s.Iterate(func(key []byte, payload any) {
		if payload.(int) != len(got) {
			t.Errorf("payload out of order: %v at position %d", payload, len(got))
		}
		got = append(got, string(key))
	})
	for i, k := range want {
		if got[i] != k {
			t.Errorf("Iterate position %d = %q, want %q", i, got[i], k)
		}
	}
}

func TestInputSetReserveDoesNotChangeLen(t *testing.T) {
	s := NewInputSet(nil)
	s.Reserve(100)
	if s.Len() != 0 {
		t.Fatalf("Len() after Reserve = %d, want 0", s.Len())
	}
	s.Add([]byte("x"), nil)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}
