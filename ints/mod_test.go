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

package ints

import "testing"

func TestMod(t *testing.T) {
	cases := []struct {
		a, n, want int
	}{
		{0, 5, 0},
		{3, 5, 3},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-5, 5, 0},
		{-7, 5, 3},
		{-11, 5, 4},
	}
	for _, c := range cases {
		if got := Mod(c.a, c.n); got != c.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", c.a, c.n, got, c.want)
		}
	}
}

func TestMax(t *testing.T) {
	cases := []struct {
		x, y, want int
	}{
		{1, 2, 2},
		{2, 1, 2},
		{3, 3, 3},
		{-1, -2, -1},
	}
	for _, c := range cases {
		if got := Max(c.x, c.y); got != c.want {
			t.Errorf("Max(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}
