package chacha

import (
	"encoding/binary"
	"math/bits"
	"runtime"
)

const (
	// KeySize is the size of a ChaCha20 key in bytes.
	KeySize = 32
	// BlockSize is the size of a single keystream block in bytes.
	BlockSize = 64

	doubleRounds = 10
)

// "expand 32-byte k"
var sigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// State is the 16 word input to the block function.
// Words 0-3 hold the constants, 4-11 the key, 12 the block counter, 13 is always zero, and 14-15 hold the nonce.
// A State is a template: Block copies it and sets the counter, so the same State may produce any number of blocks.
type State [16]uint32

// NewState loads the key and the 64-bit nonce into a new State template.
// The nonce occupies words 14 and 15, low word first, which matches reading 8 nonce bytes as little endian.
func NewState(key *[KeySize]byte, nonce uint64) State {
	var s State
	copy(s[:4], sigma[:])
	for i := 0; i < 8; i++ {
		s[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	s[14] = uint32(nonce)
	s[15] = uint32(nonce >> 32)
	return s
}

// Block produces the keystream block for the given counter.
// The receiver is not modified.
func (s *State) Block(counter uint32) [BlockSize]byte {
	in := *s
	in[12] = counter
	x := in

	for i := 0; i < doubleRounds; i++ {
		// Columns
		x[0], x[4], x[8], x[12] = quarterRound(x[0], x[4], x[8], x[12])
		x[1], x[5], x[9], x[13] = quarterRound(x[1], x[5], x[9], x[13])
		x[2], x[6], x[10], x[14] = quarterRound(x[2], x[6], x[10], x[14])
		x[3], x[7], x[11], x[15] = quarterRound(x[3], x[7], x[11], x[15])

		// Diagonals
		x[0], x[5], x[10], x[15] = quarterRound(x[0], x[5], x[10], x[15])
		x[1], x[6], x[11], x[12] = quarterRound(x[1], x[6], x[11], x[12])
		x[2], x[7], x[8], x[13] = quarterRound(x[2], x[7], x[8], x[13])
		x[3], x[4], x[9], x[14] = quarterRound(x[3], x[4], x[9], x[14])
	}

	var out [BlockSize]byte
	for i := range x {
		binary.LittleEndian.PutUint32(out[4*i:], x[i]+in[i])
	}
	in.Wipe()
	x.Wipe()
	return out
}

// Wipe zeroes the State, including the key words.
func (s *State) Wipe() {
	for i := range s {
		s[i] = 0
	}
	runtime.KeepAlive(s)
}

// Block is a convenience for generating a single keystream block without keeping a State around.
// Identical inputs always produce identical output.
func Block(key *[KeySize]byte, nonce uint64, counter uint32) [BlockSize]byte {
	s := NewState(key, nonce)
	defer s.Wipe()
	return s.Block(counter)
}

func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}
