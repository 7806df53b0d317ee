// Copyright (C) 2024 The xoodyak authors.
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

// Package randbytes fills slices of integers with output from a
// cryptographically strong random number generator. It exists so
// callers (examples, key-generation helpers) don't each reach for
// crypto/rand and an unsafe cast by hand.
package randbytes

import (
	"crypto/rand"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Fill overwrites out with random bytes drawn from crypto/rand.
func Fill[T constraints.Integer](out []T) error {
	if n := len(out); n > 0 {
		_, err := rand.Read(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*int(unsafe.Sizeof(out[0]))))
		return err
	}
	return nil
}
