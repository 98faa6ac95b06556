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

// Package compr wraps the third-party compression codec used by
// command-line tools in this module to read large key corpora without
// requiring an uncompressed copy on disk.
package compr

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// OpenZstd wraps r in a streaming zstd decompressor. The caller must call
// Close on the returned reader once it is done decoding.
func OpenZstd(r io.Reader) (*zstd.Decoder, error) {
	return zstd.NewReader(r)
}
