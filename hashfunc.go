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

import "unsafe"

// saltSize is the per-slot cost charged against SaltReallocBytes when a
// hash function's salt grows.
var saltSize = int(unsafe.Sizeof(uint64(0)))

// hashState is one of the two salted hash functions (H1, H2) the CHM
// construction relies on. salt is grown lazily and only ever lengthened
// within an iteration; reset is the only way to shorten it (back to
// zero), and it keeps the backing array so repeated iterations don't
// reallocate.
type hashState struct {
	salt []uint64
	n    int
}

// reset starts a new build iteration: salt is truncated to length zero
// (backing array kept) and the modulus is updated to the current graph
// order.
func (h *hashState) reset(n int) {
	h.salt = h.salt[:0]
	h.n = n
}

// hash extends salt as needed (drawing from rnd) to cover len(key), then
// returns H(key) = (sum of key[i]*salt[i]) mod n. This is the only place
// the build loop consumes randomness.
func (h *hashState) hash(rnd RandSource, key []byte, stats *BuildStats) int {
	if stats != nil {
		stats.HashInvocations++
	}
	if need := len(key); len(h.salt) < need {
		before := cap(h.salt)
		for i := len(h.salt); i < need; i++ {
			h.salt = append(h.salt, rnd.Uint64()%uint64(h.n))
			if stats != nil {
				stats.PRNGDraws++
			}
		}
		if stats != nil {
			if after := cap(h.salt); after != before {
				stats.SaltReallocs++
				stats.SaltReallocBytes += int64(after-before) * int64(saltSize)
			}
		}
	}
	return h.sum(key)
}

// hashFrozen computes H(key) against an already-finalized salt without
// ever drawing randomness. Callers must first check that len(key) does
// not exceed len(salt); hashFrozen does not bounds-check.
func (h *hashState) hashFrozen(key []byte) int {
	return h.sum(key)
}

// sum is the hash function's arithmetic contract: a 64-bit signed
// accumulator is wide enough that Σ 255*(n-1) never overflows for any
// realistic n and key length, so no intermediate clamping is needed
// before the final reduction mod n.
func (h *hashState) sum(key []byte) int {
	var sum int64
	for i, b := range key {
		sum += int64(b) * int64(h.salt[i])
	}
	return int(sum % int64(h.n))
}
