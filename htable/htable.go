// Package htable implements an in-memory, open-addressed hash table keyed
// by PolymurHash.
//
// Uses power-of-2 sizing (nextpow2, mask indexing) with linear probing
// rather than a perfect-hashing construction: the key universe here is open
// and grows over time, so there is no fixed, known key set to build a
// minimal perfect table from.
package htable

import "github.com/opencoff/polymurhash/polymur"

type entry struct {
	used bool
	key  []byte
	hash uint64
	val  []byte
}

// Table is an open-addressed hash table from []byte keys to []byte values.
type Table struct {
	params  polymur.Params
	buckets []entry
	mask    uint64
	count   int
}

// New creates an empty table keyed by a PolymurHash Params derived from
// seed, with initial capacity for at least capHint entries.
func New(capHint int, seed uint64) *Table {
	if capHint < 8 {
		capHint = 8
	}
	m := nextpow2(uint64(capHint) * 2)
	return &Table{
		params:  polymur.InitParamsFromSeed(seed),
		buckets: make([]entry, m),
		mask:    m - 1,
	}
}

func nextpow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// Len returns the number of entries stored.
func (t *Table) Len() int {
	return t.count
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Put inserts or updates the value for key. Reports whether key was new.
func (t *Table) Put(key, val []byte) bool {
	if float64(t.count+1) > 0.7*float64(len(t.buckets)) {
		t.grow()
	}

	h := polymur.Hash(key, &t.params, 0)
	i := h & t.mask
	for {
		e := &t.buckets[i]
		if !e.used {
			e.used = true
			e.key = append([]byte(nil), key...)
			e.hash = h
			e.val = append([]byte(nil), val...)
			t.count++
			return true
		}
		if e.hash == h && bytesEqual(e.key, key) {
			e.val = append([]byte(nil), val...)
			return false
		}
		i = (i + 1) & t.mask
	}
}

// Get looks up key, returning its value and whether it was found.
func (t *Table) Get(key []byte) ([]byte, bool) {
	h := polymur.Hash(key, &t.params, 0)
	i := h & t.mask
	for {
		e := &t.buckets[i]
		if !e.used {
			return nil, false
		}
		if e.hash == h && bytesEqual(e.key, key) {
			return e.val, true
		}
		i = (i + 1) & t.mask
	}
}

// Has reports whether key is present, without allocating a copy of its
// value.
func (t *Table) Has(key []byte) bool {
	h := polymur.Hash(key, &t.params, 0)
	i := h & t.mask
	for {
		e := &t.buckets[i]
		if !e.used {
			return false
		}
		if e.hash == h && bytesEqual(e.key, key) {
			return true
		}
		i = (i + 1) & t.mask
	}
}

func (t *Table) grow() {
	old := t.buckets
	t.buckets = make([]entry, uint64(len(old))*2)
	t.mask = uint64(len(t.buckets)) - 1
	t.count = 0
	for _, e := range old {
		if e.used {
			t.Put(e.key, e.val)
		}
	}
}
