/*
Package chacha provides the ChaCha20 block function used to decrypt embedded payloads.

Only keystream generation is provided here. Callers XOR the keystream with their data, and are responsible for choosing block counters.

# State layout:

The state follows the 64-bit nonce construction from the ChaCha paper: 4 constant words, 8 key words, a 32-bit block counter, a zero word, and 2 nonce words.
This is the same layout as an IETF ChaCha20 state whose 12 byte nonce starts with 4 zero bytes, so output can be checked against any IETF implementation.

# Security:

There is no authentication at this layer.
A wrong key or nonce produces a valid looking keystream, and decrypting with it produces garbage rather than an error.
*/
package chacha
