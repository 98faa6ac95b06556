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

// Package mph builds a minimal perfect hash function over a static set of
// byte-string keys and serves constant-time point lookups against it.
//
// The construction follows Czech, Havas, and Majewski's algorithm: two
// salted hash functions label the endpoints of one edge per key in an
// undirected multigraph; if the resulting graph is acyclic, a depth-first
// labeling of its vertices yields a bijection from the key set onto
// [0, len(keys)). The build loop retries with fresh salts (and, every few
// tries, a larger graph) until it finds an acyclic graph or gives up.
//
// A Table is built once from an InputSet and is immutable afterward:
// Lookup never allocates, never draws randomness, and is safe to call
// concurrently from multiple goroutines.
package mph
