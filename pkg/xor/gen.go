package xor

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// GenKey will generate an XOR key with the given length.
func GenKey(length int) ([]byte, error) {
	if length == 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}

// Split will obfuscate the given Key into Material with a secure random first half.
// Deobfuscate reverses the process.
func Split(key *Key) (Material, error) {
	var m Material
	half, err := GenKey(KeySize)
	if err != nil {
		return m, err
	}
	copy(m[:KeySize], half)
	for i := 0; i < KeySize; i++ {
		m[KeySize+i] = half[i] ^ key[i]
	}
	wipe(half)
	return m, nil
}
