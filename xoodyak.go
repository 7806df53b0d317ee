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

// Package xoodyak implements the Xoodyak lightweight cryptographic
// suite: a 32-byte hash function and a 16-byte-key authenticated
// encryption scheme, both built on the Xoodoo permutation driven
// through the Cyclist mode of operation.
package xoodyak

import "github.com/itzmeanjan/xoodyak/internal/cyclist"

// DigestSize is the length in bytes of a Hash digest.
const DigestSize = 32

// KeySize is the required length in bytes of an Encrypt/Decrypt key.
const KeySize = 16

// NonceSize is the required length in bytes of an Encrypt/Decrypt nonce.
const NonceSize = 16

// TagSize is the length in bytes of an authentication tag produced by
// Encrypt and checked by Decrypt.
const TagSize = 16

// Hash computes the 32-byte Xoodyak digest of msg.
func Hash(msg []byte) [DigestSize]byte {
	c := cyclist.New(cyclist.HashMode)
	c.Absorb(msg)

	var digest [DigestSize]byte
	c.Squeeze(digest[:])
	c.Wipe()
	return digest
}

// Encrypt seals pt under key and nonce, with ad authenticated but not
// encrypted. It returns ciphertext of the same length as pt and a
// 16-byte authentication tag. Every (key, nonce) pair must be used at
// most once.
func Encrypt(key [KeySize]byte, nonce [NonceSize]byte, ad, pt []byte) (ct []byte, tag [TagSize]byte) {
	c := cyclist.New(cyclist.KeyedMode)
	c.AbsorbKey(key[:], nonce[:])
	c.Absorb(ad)

	ct = make([]byte, len(pt))
	c.Crypt(pt, ct, false)
	c.Squeeze(tag[:])
	c.Wipe()
	return ct, tag
}

// Decrypt opens ct using key, nonce, ad and tag. If authentication
// fails, ok is false and pt is zeroed before being returned; callers
// must not treat its contents as meaningful in that case.
func Decrypt(key [KeySize]byte, nonce [NonceSize]byte, tag [TagSize]byte, ad, ct []byte) (pt []byte, ok bool) {
	c := cyclist.New(cyclist.KeyedMode)
	c.AbsorbKey(key[:], nonce[:])
	c.Absorb(ad)

	pt = make([]byte, len(ct))
	c.Crypt(ct, pt, true)

	var gotTag [TagSize]byte
	c.Squeeze(gotTag[:])
	c.Wipe()

	if !constantTimeEqual(tag, gotTag) {
		zero(pt)
		return pt, false
	}
	return pt, true
}

// constantTimeEqual reports whether a and b are equal, folding the
// byte-wise differences through an accumulator so that the number of
// operations performed does not depend on where a and b first differ.
func constantTimeEqual(a, b [TagSize]byte) bool {
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
