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

// Status is the stable result code every public Map operation returns
// instead of an exception. The order and membership mirror the OpStatus
// enum this package was ported from (ks::ad_base::AdCuckooHashMap in
// original_source/src/container/hashmap.h); InsertFailed, ReplaceFailed,
// CopyFailed and InvalidArgument are internal and never escape the public
// API, but are kept in the enum to preserve that identity.
type Status uint8

const (
	Success Status = iota
	InvalidArgument
	InsertFailed
	NotInited
	KeyExists
	KeyDoesNotExist
	ReplaceFailed
	RehashFailed
	CopyFailed
	InvalidKey
)

var statusNames = [...]string{
	Success:         "SUCCESS",
	InvalidArgument: "INVALID_ARGUMENT",
	InsertFailed:    "INSERT_FAILED",
	NotInited:       "NOT_INITED",
	KeyExists:       "KEY_EXISTS",
	KeyDoesNotExist: "KEY_DOES_NOT_EXIST",
	ReplaceFailed:   "REPLACE_FAILED",
	RehashFailed:    "REHASH_FAILED",
	CopyFailed:      "COPY_FAILED",
	InvalidKey:      "INVALID_KEY",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "UNKNOWN_STATUS"
}

// Error satisfies the error interface so a Status can be returned or
// compared anywhere Go code expects one, without this package adopting an
// exceptions model the spec explicitly rules out.
func (s Status) Error() string {
	return s.String()
}

// OK reports whether s is Success.
func (s Status) OK() bool {
	return s == Success
}
