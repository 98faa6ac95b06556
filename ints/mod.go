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

// Package ints provides small generic integer helpers shared by the
// graph growth schedule and the acyclicity resolver.
package ints

import (
	"golang.org/x/exp/constraints"
)

// Max returns the greater of x and y. Used by the build loop's growth
// schedule, which only ever ratchets the graph order upward.
func Max[T constraints.Integer](x, y T) T {
	if x >= y {
		return x
	}
	return y
}

// Mod returns a mod n with the mathematical (non-negative) convention,
// regardless of the sign of a. Go's % operator follows the sign of the
// dividend, so a negative a would otherwise yield a negative result;
// this is the +n normalization the resolver's labeling formula requires.
func Mod[T constraints.Signed](a, n T) T {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
