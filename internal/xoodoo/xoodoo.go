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

// Package xoodoo implements the Xoodoo[12] permutation: a 384-bit
// state organized as three planes of four 32-bit lanes, updated by
// twelve rounds of the theta/rho-west/iota/chi/rho-east step mappings.
package xoodoo

import "math/bits"

// Rounds is the number of Xoodoo round mappings applied by Permute.
const Rounds = 12

// roundConstant holds the values XORed into lane (0,0) by the iota step
// of each of the twelve rounds, after theta and rho-west.
var roundConstant = [Rounds]uint32{
	0x00000058, 0x00000038, 0x000003c0,
	0x000000d0, 0x00000120, 0x00000014,
	0x00000060, 0x0000002c, 0x00000380,
	0x000000f0, 0x000001a0, 0x00000012,
}

// State is the 384-bit Xoodoo state: three planes of four 32-bit
// lanes each, laid out plane-major so state[4*y+x] addresses plane y,
// lane x. The zero value is the all-zero state.
type State [12]uint32

// plane returns the four lanes of plane y as a slice aliasing s.
func (s *State) plane(y int) []uint32 {
	return s[4*y : 4*y+4]
}

// cyclicShift moves the bit at position (x, z) of plane to position
// (x+t mod 4, z+v mod 32), matching the table-1 plane-shift mapping
// used by both rho-west and rho-east.
func cyclicShift(plane []uint32, t, v int) {
	var shifted [4]uint32
	for i := 0; i < 4; i++ {
		shifted[(i+t)&3] = bits.RotateLeft32(plane[i], v)
	}
	copy(plane, shifted[:])
}

func (s *State) theta() {
	var p0, p1, e [4]uint32
	for i := 0; i < 4; i++ {
		parity := s[i] ^ s[i^4] ^ s[i^8]
		p0[i] = parity
		p1[i] = parity
	}
	cyclicShift(p0[:], 1, 5)
	cyclicShift(p1[:], 1, 14)
	for i := 0; i < 4; i++ {
		e[i] = p0[i] ^ p1[i]
	}
	for i := 0; i < 4; i++ {
		s[i] ^= e[i]
		s[i^4] ^= e[i]
		s[i^8] ^= e[i]
	}
}

func (s *State) rhoWest() {
	cyclicShift(s.plane(1), 1, 0)
	cyclicShift(s.plane(2), 0, 11)
}

func (s *State) rhoEast() {
	cyclicShift(s.plane(1), 0, 1)
	cyclicShift(s.plane(2), 2, 8)
}

func (s *State) addRoundConstant(round int) {
	s[0] ^= roundConstant[round]
}

func (s *State) chi() {
	var b0, b1, b2 [4]uint32
	for i := 0; i < 4; i++ {
		b0[i] = ^s[i^4] & s[i^8]
		b1[i] = ^s[i^8] & s[i]
		b2[i] = ^s[i] & s[i^4]
	}
	for i := 0; i < 4; i++ {
		s[i] ^= b0[i]
		s[i^4] ^= b1[i]
		s[i^8] ^= b2[i]
	}
}

func (s *State) round(idx int) {
	s.theta()
	s.rhoWest()
	s.addRoundConstant(idx)
	s.chi()
	s.rhoEast()
}

// Permute applies the full twelve-round Xoodoo permutation to s in place.
func (s *State) Permute() {
	for i := 0; i < Rounds; i++ {
		s.round(i)
	}
}

// Zero overwrites s with the all-zero state.
func (s *State) Zero() {
	*s = State{}
}
