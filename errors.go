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

import "errors"

// ErrEmptyInput is returned by Build when the input set has no keys.
var ErrEmptyInput = errors.New("mph: build called with an empty input set")

// ErrBuildExceeded is returned by Build when the graph order reached the
// configured ceiling (NMaxMult * initial order) without finding an
// acyclic graph. Retrying with a larger NMaxMult, a different RandSource,
// or (most effectively) fewer/changed keys may succeed.
var ErrBuildExceeded = errors.New("mph: build exceeded the graph growth ceiling")
