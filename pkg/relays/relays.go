/*
Package relays exposes the edge relay list embedded in this module.

The list is stored as an obfuscated key and an encrypted payload, see packages xor and payload.
It's decrypted on first use and cached for the life of the process.
*/
package relays

import (
	"github.com/sirupsen/logrus"
)

var embedded = &Cache{
	loader: EmbeddedLoader(&keyMaterial, encryptedRelays),
	log:    logrus.StandardLogger(),
}

// NewEmbeddedCache creates a separate Cache over the embedded relay data.
// Most callers should use Payload and RecordCount, which share a single process-wide Cache.
func NewEmbeddedCache(opts ...CacheOpt) (*Cache, error) {
	return NewCache(EmbeddedLoader(&keyMaterial, encryptedRelays), opts...)
}

// Payload returns the decrypted relay list.
// An empty string is returned if the embedded data is malformed, use PayloadErr to get the error.
func Payload() string {
	text, _ := embedded.Get()
	return text
}

// PayloadErr returns the decrypted relay list, or the error encountered decrypting it.
func PayloadErr() (string, error) {
	return embedded.Get()
}

// RecordCount estimates the number of relays in the embedded list.
// It's recomputed on every call.
func RecordCount() int {
	return CountRecords(Payload())
}
