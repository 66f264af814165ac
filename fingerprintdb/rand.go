// rand.go -- random salts and temp-file suffixes
package fingerprintdb

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

func randbytes(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic("fingerprintdb: can't read crypto/rand")
	}
	return b
}

func rand32() uint32 {
	var b [4]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic("fingerprintdb: can't read crypto/rand")
	}
	return binary.BigEndian.Uint32(b[:])
}
