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

// Package cyclist implements the Cyclist mode of operation on top of
// the Xoodoo permutation: a duplex construction that absorbs and
// squeezes byte strings through a shared 384-bit state, in either a
// plain hashing mode or a keyed mode suitable for authenticated
// encryption.
package cyclist

import (
	"encoding/binary"

	"github.com/itzmeanjan/xoodyak/internal/xoodoo"
)

// Mode selects which domain-separation rates and colors a Cyclist
// instance uses. It is set once at construction and never changes for
// the lifetime of the instance.
type Mode uint8

const (
	HashMode Mode = iota
	KeyedMode
)

type phase uint8

const (
	phaseUp phase = iota
	phaseDown
)

const (
	rateHash     = 16
	rateKeyedIn  = 44
	rateKeyedOut = 24

	colorAbsorbHash  = 0x01
	colorAbsorbKeyed = 0x03
	colorAbsorbKey   = 0x02
	colorCrypt       = 0x80
	colorSqueeze     = 0x40
	colorZero        = 0x00
)

// Cyclist is one duplex session: a permutation state, the phase of
// the last up/down call, and the mode fixed at New. It is not safe
// for concurrent use; independent goroutines must use independent
// Cyclist values.
type Cyclist struct {
	state xoodoo.State
	ph    phase
	mode  Mode
}

// New returns a fresh Cyclist in the given mode, with an all-zero
// permutation state and phase Up.
func New(mode Mode) *Cyclist {
	return &Cyclist{mode: mode}
}

// Wipe overwrites the session's permutation state with zero bytes.
// Callers that handled key material should call Wipe once the session
// is no longer needed.
func (c *Cyclist) Wipe() {
	c.state.Zero()
	c.ph = phaseUp
}

// down absorbs at most 47 bytes (one less than the 48-byte state, so
// the padding byte still fits; in practice never more than a rate's
// worth) into the state, padding a partial final lane with a
// single set bit above the data as required by the sponge padding
// rule, then injects color and sets phase Down.
func (c *Cyclist) down(blk []byte, color byte) {
	fullLanes := len(blk) / 4
	partial := len(blk) % 4

	for i := 0; i < fullLanes; i++ {
		c.state[i] ^= binary.LittleEndian.Uint32(blk[4*i:])
	}

	off := fullLanes * 4
	lane := uint32(1) << (uint(partial) * 8)
	for i := 0; i < partial; i++ {
		lane |= uint32(blk[off+i]) << (uint(i) * 8)
	}
	c.state[fullLanes] ^= lane

	c.state[11] ^= uint32(color) << 24
	c.ph = phaseDown
}

// up runs the permutation (injecting color first in Keyed mode), then
// produces len(out) bytes of squeezed output, and sets phase Up.
func (c *Cyclist) up(out []byte, color byte) {
	if c.mode == KeyedMode {
		c.state[11] ^= uint32(color) << 24
	}

	c.state.Permute()

	fullLanes := len(out) / 4
	partial := len(out) % 4

	for i := 0; i < fullLanes; i++ {
		binary.LittleEndian.PutUint32(out[4*i:], c.state[i])
	}

	off := fullLanes * 4
	lane := c.state[fullLanes]
	for i := 0; i < partial; i++ {
		out[off+i] = byte(lane >> (uint(i) * 8))
	}

	c.ph = phaseUp
}

// absorbAny absorbs msg in rate-sized blocks, injecting color only on
// the first block.
func (c *Cyclist) absorbAny(msg []byte, rate int, color byte) {
	if c.ph != phaseUp {
		c.up(nil, colorZero)
	}

	read := min(rate, len(msg))
	c.down(msg[:read], color)

	off := read
	for off < len(msg) {
		c.up(nil, colorZero)
		read = min(rate, len(msg)-off)
		c.down(msg[off:off+read], colorZero)
		off += read
	}
}

// squeezeAny produces len(out) squeezed bytes in rate-sized blocks,
// injecting color only on the first block.
func (c *Cyclist) squeezeAny(out []byte, rate int, color byte) {
	upto := min(len(out), rate)
	c.up(out[:upto], color)

	if len(out) == upto {
		return
	}

	l := upto
	for l < len(out) {
		c.down(nil, colorZero)
		n := min(len(out)-l, rate)
		c.up(out[l:l+n], colorZero)
		l += n
	}
}

// Absorb absorbs msg into the state, using the rate and color
// appropriate for the session's mode.
func (c *Cyclist) Absorb(msg []byte) {
	switch c.mode {
	case HashMode:
		c.absorbAny(msg, rateHash, colorAbsorbHash)
	case KeyedMode:
		c.absorbAny(msg, rateKeyedIn, colorAbsorbKeyed)
	}
}

// Squeeze produces len(out) bytes from the state, using the rate
// appropriate for the session's mode.
func (c *Cyclist) Squeeze(out []byte) {
	switch c.mode {
	case HashMode:
		c.squeezeAny(out, rateHash, colorSqueeze)
	case KeyedMode:
		c.squeezeAny(out, rateKeyedOut, colorSqueeze)
	}
}

// AbsorbKey absorbs a 16-byte key and 16-byte nonce into a Keyed-mode
// session, establishing the session's secret state. c must be in
// KeyedMode.
func (c *Cyclist) AbsorbKey(key, nonce []byte) {
	var msg [33]byte
	copy(msg[:16], key)
	copy(msg[16:32], nonce)
	msg[32] = 16

	c.absorbAny(msg[:], rateKeyedIn, colorAbsorbKey)
}

// Crypt encrypts (decrypt=false) or decrypts (decrypt=true) in into
// out, which must have equal, non-overlapping length. The duplex
// always absorbs the plaintext, regardless of direction: on encrypt
// that is in, on decrypt that is the just-produced out. At least one
// up/down cycle runs even when in is empty, so the keystream state
// always advances once per Crypt call.
func (c *Cyclist) Crypt(in, out []byte, decrypt bool) {
	read := min(rateKeyedOut, len(in))
	c.up(out[:read], colorCrypt)
	for i := 0; i < read; i++ {
		out[i] ^= in[i]
	}
	if decrypt {
		c.down(out[:read], colorZero)
	} else {
		c.down(in[:read], colorZero)
	}

	off := read
	for off < len(in) {
		read = min(rateKeyedOut, len(in)-off)
		c.up(out[off:off+read], colorZero)
		for i := 0; i < read; i++ {
			out[off+i] ^= in[off+i]
		}
		if decrypt {
			c.down(out[off:off+read], colorZero)
		} else {
			c.down(in[off:off+read], colorZero)
		}
		off += read
	}
}
