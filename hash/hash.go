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

// Package hash is a menu of stateless 64-bit mixers for use as hf1/hf2
// functors by package cuckoo. None of these carry a cryptographic property;
// they only need to be fast, deterministic, and pairwise distinguishable
// enough that two of them rarely collapse the same key onto the same
// bucket. Knuth and Murmur3Finalizer are the defaults package cuckoo uses
// when no functors are supplied; the rest exist for experimentation and
// benchmarking, same as the menu this package was ported from.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Func is a stateless key mixer: uint64 in, uint64 out.
type Func func(key uint64) uint64

const (
	murmur3C1 uint64 = 0xff51afd7ed558ccd
	murmur3C2 uint64 = 0xc4ceb9fe1a85ec53
)

// Murmur3Finalizer runs the 64-bit finalizer from MurmurHash3 over key.
// It is one of the two default hash functions package cuckoo uses.
func Murmur3Finalizer(key uint64) uint64 {
	key ^= key >> 33
	key *= murmur3C1
	key ^= key >> 33
	key *= murmur3C2
	key ^= key >> 33
	return key
}

// Knuth is Knuth's multiplicative hash. It is the other default hash
// function package cuckoo uses.
func Knuth(key uint64) uint64 {
	return (key * 2654435761) >> 8
}

// DJB2 is Bernstein's DJB2 hash, run byte-by-byte over key's eight bytes.
func DJB2(key uint64) uint64 {
	hash := uint64(5381)
	for i := 0; i < 8; i++ {
		hash = (hash << 5) + hash + byte64(key, i)
	}
	return hash
}

// DEK is Knuth's "Art of Computer Programming" hash (volume 3), run
// byte-by-byte over key's eight bytes.
func DEK(key uint64) uint64 {
	hash := uint64(1315423911)
	for i := 0; i < 8; i++ {
		hash = (hash<<5 ^ hash>>27) ^ byte64(key, i)
	}
	return hash
}

// DEKString is the string-keyed variant of DEK. The cuckoo map core never
// consumes it directly (keys are 62-bit integers), but it is part of the
// same mixer family and useful for hashing string-derived identifiers
// before they are fed into the map as integers.
func DEKString(s string) uint64 {
	hash := uint64(1315423911)
	for i := 0; i < len(s); i++ {
		hash = (hash<<5 ^ hash>>27) ^ uint64(s[i])
	}
	return hash
}

// FNV is the 64-bit FNV-1 hash, run byte-by-byte over key's eight bytes.
// See http://isthe.com/chongo/tech/comp/fnv/.
func FNV(key uint64) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	hash := uint64(offset)
	for i := 0; i < 8; i++ {
		hash = (hash * prime) ^ byte64(key, i)
	}
	return hash
}

// BKDR is the BKDR string-hash algorithm, run byte-by-byte over key's
// eight bytes.
func BKDR(key uint64) uint64 {
	hash := uint64(0)
	for i := 0; i < 8; i++ {
		hash = (hash << 7) + (hash << 1) + hash + byte64(key, i)
	}
	return hash
}

// SDBM is the SDBM string-hash algorithm, run byte-by-byte over key's
// eight bytes.
func SDBM(key uint64) uint64 {
	hash := uint64(0)
	for i := 0; i < 8; i++ {
		hash = (hash << 6) + (hash << 16) - hash + byte64(key, i)
	}
	return hash
}

// RS is the Robert Sedgewick string-hash algorithm, run byte-by-byte over
// key's eight bytes.
func RS(key uint64) uint64 {
	hash := uint64(0)
	magic := uint64(63689)
	for i := 0; i < 8; i++ {
		hash = hash*magic + byte64(key, i)
		magic *= 378551
	}
	return hash
}

// AP is Arash Partow's string-hash algorithm, run byte-by-byte over key's
// eight bytes.
func AP(key uint64) uint64 {
	hash := uint64(0)
	for i := 0; i < 8; i++ {
		b := byte64(key, i)
		if i&1 == 0 {
			hash ^= (hash << 7) ^ b ^ (hash >> 3)
		} else {
			hash ^= ^((hash << 11) ^ b ^ (hash >> 5))
		}
	}
	return hash
}

// Gist is the public-domain 64-bit integer mixer attributed to
// https://gist.github.com/badboy/6267743.
func Gist(key uint64) uint64 {
	key = ^key + (key << 21)
	key ^= key >> 24
	key = (key + (key << 3)) + (key << 8)
	key ^= key >> 14
	key = (key + (key << 2)) + (key << 4)
	key ^= key >> 28
	key = key + (key << 31)
	return key
}

// XXHash64 mixes key through github.com/cespare/xxhash/v2, the production
// hasher used elsewhere in this retrieval pack for minimal perfect hashing
// over string keys. Here it runs over the raw little-endian bytes of a
// uint64 key, giving package cuckoo an additional, well-benchmarked mixer
// candidate for hf1/hf2 beyond the textbook ones above.
func XXHash64(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:])
}

func byte64(key uint64, i int) uint64 {
	return (key >> (8 * uint(i))) & 0xff
}
