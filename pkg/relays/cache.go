package relays

import (
	"errors"
	"sync"

	"github.com/saylorsolutions/edgerelays/pkg/payload"
	"github.com/saylorsolutions/edgerelays/pkg/xor"
	"github.com/sirupsen/logrus"
)

var (
	ErrNilLoader = errors.New("nil loader")
)

// Loader produces the plaintext to be cached.
type Loader = func() (payload.Plaintext, error)

// EmbeddedLoader decrypts the given payload with the key recovered from m.
func EmbeddedLoader(m *xor.Material, data payload.Encrypted) Loader {
	return func() (payload.Plaintext, error) {
		return payload.Open(m, data)
	}
}

// Cache holds the result of a Loader once it has been run.
// The Loader runs at most once, even with concurrent callers, and its result is kept for the life of the Cache.
// An empty plaintext is a valid result and is cached like any other.
// Errors are cached too, since the Loader is expected to operate on constant input.
type Cache struct {
	mux    sync.Mutex
	loader Loader
	log    *logrus.Logger

	loaded bool
	text   string
	err    error
}

// CacheOpt operates on a Cache in a standard and predictable way, and is used in NewCache.
type CacheOpt = func(*Cache) error

// WithLogger sets the logger used to report loading.
// Plaintext and key material are never logged.
func WithLogger(log *logrus.Logger) CacheOpt {
	return func(c *Cache) error {
		if log == nil {
			return errors.New("nil logger")
		}
		c.log = log
		return nil
	}
}

// NewCache creates a Cache that will populate itself from loader on first use.
func NewCache(loader Loader, opts ...CacheOpt) (*Cache, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}
	c := &Cache{
		loader: loader,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Get returns the cached text, running the Loader if this is the first call.
func (c *Cache) Get() (string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	if !c.loaded {
		c.load()
	}
	return c.text, c.err
}

// RecordCount estimates the number of records in the cached text with CountRecords.
func (c *Cache) RecordCount() (int, error) {
	text, err := c.Get()
	if err != nil {
		return 0, err
	}
	return CountRecords(text), nil
}

func (c *Cache) load() {
	plaintext, err := c.loader()
	c.loaded = true
	if err != nil {
		c.err = err
		c.log.WithError(err).Warn("Failed to load relay payload")
		return
	}
	c.text = string(plaintext)
	c.log.WithField("bytes", len(c.text)).Debug("Loaded relay payload")
}
