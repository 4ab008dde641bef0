/*
Package payload decrypts embedded payloads using the ChaCha20 keystream from package chacha.

# Layout:

An Encrypted payload is laid out as nonce(24) || ciphertext(N) || tag(16).
Only the first 8 bytes of the nonce field feed the cipher, the remaining 16 are carried by the format but unused.
The tag is never checked, so there is no way to detect tampering or a wrong key: decrypting with the wrong key succeeds and returns garbage.

# Block counters:

The counter is incremented before each block is generated, so the first 64 bytes of ciphertext use counter 1.
Existing payloads depend on this, so it must not be changed without regenerating them.
*/
package payload
