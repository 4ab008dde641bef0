package payload

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/edgerelays/pkg/chacha"
	"github.com/saylorsolutions/edgerelays/pkg/xor"
)

const (
	NonceFieldSize = 24
	UsedNonceSize  = 8
	TagSize        = 16
	Overhead       = NonceFieldSize + TagSize
)

var (
	ErrInvalidData = errors.New("unable to use input data")
)

// Encrypted is an encrypted payload, including the nonce field and tag.
type Encrypted []byte

// Plaintext is a decrypted payload.
type Plaintext []byte

type nonceField struct {
	nonce  uint64
	unused [2]uint64
}

func (f *nonceField) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&f.nonce),
		bin.Int(&f.unused[0]),
		bin.Int(&f.unused[1]),
	)
}

// Split separates the nonce and ciphertext in the payload.
// The nonce is the first 8 bytes of the nonce field, read as little endian to match the cipher state.
// The returned ciphertext shares memory with data.
func Split(data Encrypted) (nonce uint64, ciphertext []byte, err error) {
	if len(data) < Overhead {
		return 0, nil, fmt.Errorf("%w: payload of %d bytes is too short to contain a nonce and tag", ErrInvalidData, len(data))
	}
	var field nonceField
	if err := field.mapper().Read(bytes.NewReader(data[:NonceFieldSize]), binary.LittleEndian); err != nil {
		return 0, nil, fmt.Errorf("%w: failed to read nonce: %v", ErrInvalidData, err)
	}
	return field.nonce, data[NonceFieldSize : len(data)-TagSize], nil
}

// Decrypt will decrypt the payload with the given key.
// An error is only returned if the payload is malformed, a wrong key produces garbage instead.
func Decrypt(key *xor.Key, data Encrypted) (Plaintext, error) {
	nonce, ciphertext, err := Split(data)
	if err != nil {
		return nil, err
	}
	state := chacha.NewState((*[chacha.KeySize]byte)(key), nonce)
	defer state.Wipe()

	var (
		out     = make(Plaintext, len(ciphertext))
		counter uint32
	)
	for i := 0; i < len(ciphertext); i += chacha.BlockSize {
		counter++
		keystream := state.Block(counter)
		end := min(i+chacha.BlockSize, len(ciphertext))
		for j := i; j < end; j++ {
			out[j] = ciphertext[j] ^ keystream[j-i]
		}
	}
	return out, nil
}

// Open recovers the key from the Material and decrypts the payload.
// The recovered key is wiped before returning.
func Open(m *xor.Material, data Encrypted) (Plaintext, error) {
	var plaintext Plaintext
	err := xor.UseKey(m, func(key *xor.Key) error {
		var err error
		plaintext, err = Decrypt(key, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}
