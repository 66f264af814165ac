// Package dedup implements a streaming content-deduplication cache keyed by
// PolymurHash.
//
// Each chunk of a byte stream is hashed independently with a single call to
// polymur.Hash -- PolymurHash has no incremental/streaming API, so
// "streaming" here describes the caller's chunk-by-chunk traversal of a
// byte stream, not the hash primitive itself.
package dedup

import "github.com/opencoff/polymurhash/htable"

// Cache tracks which content chunks have already been seen, by PolymurHash
// fingerprint.
type Cache struct {
	seen *htable.Table
	n    int
}

// New creates an empty dedup cache sized for capHint chunks, keyed by a
// PolymurHash Params derived from seed.
func New(capHint int, seed uint64) *Cache {
	return &Cache{seen: htable.New(capHint, seed)}
}

// SeenOrAdd reports whether chunk was already present in the cache. If it
// was not, it is recorded and false is returned; if it was, true is
// returned and the cache is left unchanged.
func (c *Cache) SeenOrAdd(chunk []byte) bool {
	if c.seen.Has(chunk) {
		return true
	}
	c.seen.Put(chunk, nil)
	c.n++
	return false
}

// Len returns the number of distinct chunks recorded so far.
func (c *Cache) Len() int {
	return c.n
}
