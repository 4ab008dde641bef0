/*
Package xor provides some light-weight screening of lower sensitivity data, and recovery of split key material.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for preventing passive observation of key material embedded in a binary, since neither half reveals the key on its own.

# How it works:

A Material value is 64 bytes, split into two 32 byte halves A and B.
The real Key is A XOR B, computed by screening A with B as the screen key.
Split performs the reverse, generating a secure random A and deriving B from the Key.

# Handling keys:

A Key should live for as short a time as possible.
UseKey derives the Key, passes it to a function, and wipes it once that function returns, whether it returned normally, with an error, or by panicking.
Wiping is defense in depth: it shortens the time a Key is resident in memory, but copies made by the runtime or the caller are out of its reach.
*/
package xor
