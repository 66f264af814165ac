package fingerprintdb

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/opencoff/polymurhash/internal/testutil"
)

func TestWriteReadRoundTrip(t *testing.T) {
	assert := testutil.NewAsserter(t)

	fn := fmt.Sprintf("%s/fpdb%d.db", os.TempDir(), rand.Int())
	defer os.Remove(fn)

	const seed = 0x1122334455667788

	w, err := NewWriter(fn, seed)
	assert(err == nil, "new writer: %s", err)

	want := make(map[string]string)
	for i := 0; i < 500; i++ {
		content := []byte(fmt.Sprintf("content-%d", i))
		payload := []byte(fmt.Sprintf("payload-%d", i))
		want[string(content)] = string(payload)
		assert(w.Add(content, payload) == nil, "add %d failed", i)
	}

	assert(w.Len() == 500, "writer len: got %d, want 500", w.Len())
	assert(w.Freeze(0.7) == nil, "freeze failed")

	rd, err := NewReader(fn, seed, 64)
	assert(err == nil, "new reader: %s", err)
	defer rd.Close()

	for content, payload := range want {
		got, ok := rd.Lookup([]byte(content))
		assert(ok, "lookup miss for %q", content)
		assert(string(got) == payload, "payload mismatch for %q: got %q want %q", content, got, payload)
	}

	_, ok := rd.Lookup([]byte("never-added"))
	assert(!ok, "unexpected hit for absent content")
}

func TestDuplicateRejected(t *testing.T) {
	assert := testutil.NewAsserter(t)

	fn := fmt.Sprintf("%s/fpdb%d.db", os.TempDir(), rand.Int())
	defer os.Remove(fn)

	w, err := NewWriter(fn, 1)
	assert(err == nil, "new writer: %s", err)
	defer w.Abort()

	assert(w.Add([]byte("x"), []byte("1")) == nil, "first add failed")
	assert(w.Add([]byte("x"), []byte("2")) == ErrExists, "expected ErrExists on duplicate")
}

func TestFrozenRejectsFurtherWrites(t *testing.T) {
	assert := testutil.NewAsserter(t)

	fn := fmt.Sprintf("%s/fpdb%d.db", os.TempDir(), rand.Int())
	defer os.Remove(fn)

	w, err := NewWriter(fn, 2)
	assert(err == nil, "new writer: %s", err)
	assert(w.Add([]byte("a"), []byte("b")) == nil, "add failed")
	assert(w.Freeze(0.8) == nil, "freeze failed")

	assert(w.Add([]byte("c"), []byte("d")) == ErrFrozen, "expected ErrFrozen after freeze")
	assert(w.Freeze(0.8) == ErrFrozen, "expected ErrFrozen on second freeze")
}
