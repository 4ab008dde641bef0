package xor

import (
	"errors"
	"fmt"
	"runtime"
)

const (
	KeySize      = 32
	MaterialSize = 2 * KeySize
)

var (
	ErrInvalidMaterial = errors.New("invalid key material")
)

// Key is a recovered 256-bit key. It should be wiped as soon as it's no longer needed, see UseKey.
type Key [KeySize]byte

// Material is an obfuscated Key, stored as two halves whose XOR is the Key.
type Material [MaterialSize]byte

// ParseMaterial copies raw bytes into Material, ensuring the length is correct.
func ParseMaterial(data []byte) (Material, error) {
	var m Material
	if len(data) != MaterialSize {
		return m, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidMaterial, MaterialSize, len(data))
	}
	copy(m[:], data)
	return m, nil
}

// Deobfuscate recovers the Key from Material.
// The caller owns the returned Key and must Wipe it. Prefer UseKey, which does that automatically.
func Deobfuscate(m *Material) Key {
	var (
		key Key
		scr = &xorScreen{key: m[KeySize:]}
	)
	for i := 0; i < KeySize; i++ {
		key[i] = scr.screen(m[i])
	}
	return key
}

// Wipe overwrites the Key with zeros.
func (k *Key) Wipe() {
	wipe(k[:])
}

// UseKey recovers the Key from Material and passes it to fn.
// The Key is wiped after fn returns on every path, including errors and panics.
// fn must not retain the Key pointer.
func UseKey(m *Material, fn func(key *Key) error) error {
	key := Deobfuscate(m)
	defer key.Wipe()
	return fn(&key)
}

func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
