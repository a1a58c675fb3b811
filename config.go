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

// Structural constants. Unlike the teacher's configurable bshift/nhashshift,
// these are fixed by the slot encoding itself: a 16-byte slot packs
// 64/16 = 4 of them per 64-byte cache line, and the map is always
// bucketized over exactly two hash functions.
const (
	slotsPerBucket = 64 / 16 // SLOT_WIDE: 4 slots of 16 bytes fit one cache line.

	// defaultCapacity and defaultMaxReplace match the zero-value
	// constructor's behavior (section 6: "construct() -> instance with
	// capacity=1024, max_replace_size=100").
	defaultCapacity   = 1024
	defaultMaxReplace = 100

	// maxCapacity is the hard ceiling on bucket count; rehash gives up
	// once doubling would cross it.
	maxCapacity = 1 << 29
)
