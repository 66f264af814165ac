package dedup

import (
	"bytes"
	"testing"

	"github.com/opencoff/polymurhash/internal/testutil"
)

func TestSeenOrAdd(t *testing.T) {
	assert := testutil.NewAsserter(t)

	c := New(16, 0xf00d)

	stream := [][]byte{
		[]byte("chunk-a"),
		[]byte("chunk-b"),
		[]byte("chunk-a"), // duplicate
		[]byte("chunk-c"),
		[]byte("chunk-b"), // duplicate
	}

	var dups int
	for _, chunk := range stream {
		if c.SeenOrAdd(bytes.Clone(chunk)) {
			dups++
		}
	}

	assert(dups == 2, "expected 2 duplicate chunks, got %d", dups)
	assert(c.Len() == 3, "expected 3 distinct chunks recorded, got %d", c.Len())
}

func TestSeenOrAddEmptyChunk(t *testing.T) {
	assert := testutil.NewAsserter(t)

	c := New(4, 1)
	assert(!c.SeenOrAdd([]byte{}), "first empty chunk should be new")
	assert(c.SeenOrAdd([]byte{}), "second empty chunk should be a duplicate")
}
