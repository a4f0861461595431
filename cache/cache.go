package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dmrcv/ogkit/internal/logx"
)

// HashLen is the length of Entry.Hash in hex characters.
const HashLen = 12

// Entry is a rendered image and its content hash. Entries returned by a
// Cache own their bytes; changing them does not affect the cache.
type Entry struct {
	Hash  string
	Bytes []byte
}

// RenderFunc produces the image bytes for a cache miss.
type RenderFunc func(ctx context.Context) ([]byte, error)

// Key returns the cache key of content: its JSON encoding, with struct
// fields in declaration order.
func Key(content any) (string, error) {
	b, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("cache: key: %w", err)
	}
	return string(b), nil
}

// Hash returns the first 12 hex characters of the SHA-256 of b.
func Hash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:HashLen]
}

// Option configures a Cache.
type Option func(*Cache)

// WithStore appends a store consulted after the memory store.
func WithStore(s Store) Option {
	return func(c *Cache) {
		c.stores = append(c.stores, s)
	}
}

// WithSoftLimit bounds the memory store to roughly n entries. The default
// is unbounded.
func WithSoftLimit(n int) Option {
	return func(c *Cache) {
		c.memory = NewMemoryStore(n)
	}
}

// WithNamespace prefixes every key, so caches of different record kinds can
// share a persistent store.
func WithNamespace(ns string) Option {
	return func(c *Cache) {
		c.namespace = ns
	}
}

// Cache memoizes rendered images. It is safe for concurrent use. Concurrent
// misses on one key all render; the last write wins.
type Cache struct {
	memory    *MemoryStore
	stores    []Store
	namespace string
}

// New returns a cache backed by an unbounded memory store followed by any
// stores given with WithStore.
func New(opts ...Option) *Cache {
	c := &Cache{memory: NewMemoryStore(0)}
	for _, opt := range opts {
		opt(c)
	}
	c.stores = append([]Store{c.memory}, c.stores...)
	return c
}

// logger reads the shared logger on every call so SetLogger takes effect
// on caches built earlier.
func (c *Cache) logger() *slog.Logger {
	l := logx.Component("cache")
	if c.namespace != "" {
		l = l.With("namespace", c.namespace)
	}
	return l
}

// Len returns the number of entries held in memory.
func (c *Cache) Len() int {
	return c.memory.Len()
}

func (c *Cache) key(content any) (string, error) {
	k, err := Key(content)
	if err != nil {
		return "", err
	}
	if c.namespace != "" {
		k = c.namespace + ":" + k
	}
	return k, nil
}

// GetOrRender returns the entry cached for content, rendering it with fn on
// a miss. A hit in a later store is copied into the earlier ones.
func (c *Cache) GetOrRender(ctx context.Context, content any, fn RenderFunc) (Entry, error) {
	key, err := c.key(content)
	if err != nil {
		return Entry{}, err
	}
	log := c.logger()
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	for i, s := range c.stores {
		e, ok, err := s.Load(ctx, key)
		if err != nil {
			log.Warn("cache load failed", "store", i, "error", err)
			continue
		}
		if !ok {
			continue
		}
		for _, earlier := range c.stores[:i] {
			if err := earlier.Save(ctx, key, e); err != nil {
				log.Warn("cache backfill failed", "error", err)
			}
		}
		log.Debug("cache hit", "hash", e.Hash, "store", i)
		return e, nil
	}

	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	body, err := fn(ctx)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Hash: Hash(body), Bytes: body}
	for i, s := range c.stores {
		if err := s.Save(ctx, key, e); err != nil {
			log.Warn("cache save failed", "store", i, "error", err)
		}
	}
	log.Debug("cache miss", "hash", e.Hash, "bytes", len(body))
	return e, nil
}
