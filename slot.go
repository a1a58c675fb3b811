// Copyright (c) 2014 Utkan Güngördü <utkan@freeconsole.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package cuckoo

// Tagged-key bit layout: bit 63 is the valid bit, bit 62 records which of
// the two hash functions currently homes the slot, and bits 0..61 are the
// user's key payload. A key is invalid if either of the top two bits is
// already set by the caller.
const (
	validBit uint64 = 1 << 63
	hashBit  uint64 = 1 << 62
	flagMask uint64 = validBit | hashBit
	keyMask  uint64 = 1<<62 - 1
)

// slot is a single 16-byte cell: one tagged key word plus one value of at
// most one machine word. Values are trivially copyable; no destructor ever
// runs, matching the container's single-threaded, non-owning-of-V
// contract.
type slot[V any] struct {
	tag uint64
	val V
}

func (s *slot[V]) valid() bool {
	return s.tag&validBit != 0
}

// isH2 reports whether the slot currently records hash-function-2 as its
// origin. The bit is flipped on every displacement, so it names the
// *current* home, not a canonical one — see the kick loop in map.go.
func (s *slot[V]) isH2() bool {
	return s.tag&hashBit != 0
}

func (s *slot[V]) payload() uint64 {
	return s.tag & keyMask
}

func (s *slot[V]) clear() {
	*s = slot[V]{}
}

// bucket is a fixed-width, cache-line-sized group of slots sharing one
// hash index.
type bucket[V any] [slotsPerBucket]slot[V]

// invalidKey reports whether key carries either flag bit, i.e. is outside
// the 62-bit payload space this container accepts.
func invalidKey(key uint64) bool {
	return key&flagMask != 0
}
