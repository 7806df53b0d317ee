package cyclist

import (
	"bytes"
	"testing"
)

func TestHashAbsorbSqueezeDeterministic(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")

	c1 := New(HashMode)
	c1.Absorb(msg)
	out1 := make([]byte, 32)
	c1.Squeeze(out1)

	c2 := New(HashMode)
	c2.Absorb(msg)
	out2 := make([]byte, 32)
	c2.Squeeze(out2)

	if !bytes.Equal(out1, out2) {
		t.Fatal("identical absorb/squeeze sequences produced different output")
	}
}

func TestHashDistinguishesInputs(t *testing.T) {
	c1 := New(HashMode)
	c1.Absorb([]byte("a"))
	out1 := make([]byte, 32)
	c1.Squeeze(out1)

	c2 := New(HashMode)
	c2.Absorb([]byte("b"))
	out2 := make([]byte, 32)
	c2.Squeeze(out2)

	if bytes.Equal(out1, out2) {
		t.Fatal("distinct inputs produced identical squeezed output")
	}
}

func TestSqueezeAcrossMultipleBlocks(t *testing.T) {
	c := New(HashMode)
	c.Absorb([]byte("block-spanning squeeze exercises the down/up loop in squeezeAny"))

	out := make([]byte, 100) // > rateHash, forces the multi-block squeeze path
	c.Squeeze(out)

	allZero := true
	for _, b := range out {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("long squeeze produced all-zero output")
	}
}

func TestAbsorbAcrossMultipleBlocks(t *testing.T) {
	short := New(HashMode)
	short.Absorb([]byte("x"))
	outShort := make([]byte, 32)
	short.Squeeze(outShort)

	long := New(HashMode)
	long.Absorb(bytes.Repeat([]byte("x"), 200)) // > rateHash, forces the multi-block absorb path
	outLong := make([]byte, 32)
	long.Squeeze(outLong)

	if bytes.Equal(outShort, outLong) {
		t.Fatal("absorbing different-length messages produced identical output")
	}
}

func TestCryptRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, 16)
	nonce := bytes.Repeat([]byte{0x22}, 16)
	pt := []byte("plaintext that spans more than one keyed-output rate block of 24 bytes")

	enc := New(KeyedMode)
	enc.AbsorbKey(key, nonce)
	ct := make([]byte, len(pt))
	enc.Crypt(pt, ct, false)

	dec := New(KeyedMode)
	dec.AbsorbKey(key, nonce)
	got := make([]byte, len(pt))
	dec.Crypt(ct, got, true)

	if !bytes.Equal(pt, got) {
		t.Fatal("decrypt(encrypt(pt)) != pt")
	}
}

func TestCryptEmptyStillAdvancesState(t *testing.T) {
	key := bytes.Repeat([]byte{0x33}, 16)
	nonce := bytes.Repeat([]byte{0x44}, 16)

	c := New(KeyedMode)
	c.AbsorbKey(key, nonce)
	c.Crypt(nil, nil, false)

	tag := make([]byte, 16)
	c.Squeeze(tag)

	allZero := true
	for _, b := range tag {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("tag squeezed after an empty Crypt call was all-zero")
	}

	noCrypt := New(KeyedMode)
	noCrypt.AbsorbKey(key, nonce)
	tagNoCrypt := make([]byte, 16)
	noCrypt.Squeeze(tagNoCrypt)

	if bytes.Equal(tag, tagNoCrypt) {
		t.Fatal("an empty Crypt call left the squeezed tag unchanged")
	}
}

func TestWipeClearsState(t *testing.T) {
	c := New(HashMode)
	c.Absorb([]byte("some data"))
	c.Wipe()

	if c.state != ([12]uint32{}) {
		t.Fatal("Wipe did not clear the permutation state")
	}
	if c.ph != phaseUp {
		t.Fatal("Wipe did not reset phase to Up")
	}
}
