// reader.go -- constant, on-disk content-fingerprint store (read side)
//
// Header decode, strong-checksum verification, mmap of the lookup table,
// and an LRU cache of decoded records. Find() walks an open-addressing
// linear probe over the mmap'd table (see writer.go).
package fingerprintdb

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dchest/siphash"
	lru "github.com/opencoff/golang-lru"
	"golang.org/x/sys/unix"

	"github.com/opencoff/polymurhash/polymur"
)

// Reader provides constant-time fingerprint lookups against a database
// built by Writer.
type Reader struct {
	params polymur.Params
	salt   []byte

	offsetHash []uint64 // 2*cap words: (offset, hash) pairs, mmap'd
	vlen       []uint32 // cap words, mmap'd
	mask       uint64

	cache *lru.ARCCache

	mmap []byte
	fd   *os.File
	fn   string
}

// NewReader opens a previously-frozen database built with seed (the same
// seed passed to NewWriter) and prepares it for querying. cache controls how
// many decoded records are kept in memory (0 selects a default of 128).
func NewReader(fn string, seed uint64, cache int) (rd *Reader, err error) {
	fd, err := os.Open(fn)
	if err != nil {
		return nil, err
	}

	if cache <= 0 {
		cache = 128
	}

	rd = &Reader{
		params: polymur.InitParamsFromSeed(seed),
		fd:     fd,
		fn:     fn,
	}

	st, err := fd.Stat()
	if err != nil {
		return nil, fmt.Errorf("%s: can't stat: %w", fn, err)
	}
	if st.Size() < headerSize+trailerBytes {
		return nil, ErrCorrupt
	}

	var hdrb [headerSize]byte
	if _, err = io.ReadFull(fd, hdrb[:]); err != nil {
		return nil, fmt.Errorf("%s: can't read header: %w", fn, err)
	}

	var tableCap uint64
	var offtbl uint64
	tableCap, offtbl, err = rd.decodeHeader(hdrb[:], st.Size())
	if err != nil {
		return nil, err
	}

	if err = rd.verifyChecksum(hdrb[:], offtbl, st.Size()); err != nil {
		return nil, err
	}

	rd.cache, err = lru.NewARC(cache)
	if err != nil {
		return nil, err
	}

	mmapsz := st.Size() - int64(offtbl) - trailerBytes
	bs, err := unix.Mmap(int(fd.Fd()), int64(offtbl), int(mmapsz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%s: can't mmap %d bytes at off %d: %w", fn, mmapsz, offtbl, err)
	}

	offsz := tableCap * (8 + 8)
	vlensz := tableCap * 4

	rd.mmap = bs
	rd.offsetHash = bsToUint64Slice(bs[:offsz])
	rd.vlen = bsToUint32Slice(bs[offsz : offsz+vlensz])
	rd.mask = tableCap - 1

	return rd, nil
}

// Len returns the number of slots in the lookup table (not the number of
// stored fingerprints, which is recorded in the header but not re-exposed
// here to avoid a second pass over the mmap region).
func (rd *Reader) Len() int {
	return len(rd.vlen)
}

// Close unmaps the database and releases its cache.
func (rd *Reader) Close() error {
	err := unix.Munmap(rd.mmap)
	rd.fd.Close()
	rd.cache.Purge()
	rd.mmap = nil
	return err
}

// Lookup returns the payload stored for content's PolymurHash fingerprint,
// or false if no such fingerprint was ever added.
func (rd *Reader) Lookup(content []byte) ([]byte, bool) {
	v, err := rd.Find(content)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Find returns the payload for content's fingerprint, or an error if it is
// absent, unreadable, or fails its integrity checksum.
func (rd *Reader) Find(content []byte) ([]byte, error) {
	h := polymur.Hash(content, &rd.params, 0)
	if v, ok := rd.cache.Get(h); ok {
		return v.([]byte), nil
	}

	i := h & rd.mask
	for {
		off := toLittleEndianUint64(rd.offsetHash[2*i])
		if off == emptySlot {
			return nil, ErrNotFound
		}
		if toLittleEndianUint64(rd.offsetHash[2*i+1]) == h {
			break
		}
		i = (i + 1) & rd.mask
	}

	off := toLittleEndianUint64(rd.offsetHash[2*i])
	vlen := toLittleEndianUint32(rd.vlen[i])

	val, err := rd.decodeRecord(off, vlen)
	if err != nil {
		return nil, err
	}
	rd.cache.Add(h, val)
	return val, nil
}

func (rd *Reader) decodeRecord(off uint64, vlen uint32) ([]byte, error) {
	if _, err := rd.fd.Seek(int64(off), io.SeekStart); err != nil {
		return nil, err
	}

	data := make([]byte, uint64(vlen)+8)
	if _, err := io.ReadFull(rd.fd, data); err != nil {
		return nil, err
	}

	csum := binary.BigEndian.Uint64(data[:8])

	var o [8]byte
	binary.BigEndian.PutUint64(o[:], off)

	h := siphash.New(rd.salt)
	h.Write(o[:])
	h.Write(data[8:])
	if csum != h.Sum64() {
		return nil, ErrCorrupt
	}
	return data[8:], nil
}

func (rd *Reader) verifyChecksum(hdrb []byte, offtbl uint64, sz int64) error {
	h := sha512.New512_256()
	h.Write(hdrb)

	remsz := sz - int64(offtbl) - trailerBytes
	if _, err := rd.fd.Seek(int64(offtbl), io.SeekStart); err != nil {
		return err
	}
	if _, err := io.CopyN(h, rd.fd, remsz); err != nil {
		return fmt.Errorf("%s: metadata i/o error: %w", rd.fn, err)
	}

	var expsum [trailerBytes]byte
	if _, err := rd.fd.Seek(sz-trailerBytes, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.ReadFull(rd.fd, expsum[:]); err != nil {
		return fmt.Errorf("%s: checksum i/o error: %w", rd.fn, err)
	}

	if subtle.ConstantTimeCompare(h.Sum(nil), expsum[:]) != 1 {
		return ErrCorrupt
	}
	return nil
}

func (rd *Reader) decodeHeader(b []byte, sz int64) (tableCap, offtbl uint64, err error) {
	if string(b[:4]) != magic {
		return 0, 0, fmt.Errorf("%s: bad file magic", rd.fn)
	}

	rd.salt = append([]byte(nil), b[8:24]...)
	_ = binary.BigEndian.Uint64(b[24:32]) // nkeys, informational only
	tableCap = binary.BigEndian.Uint64(b[32:40])
	offtbl = binary.BigEndian.Uint64(b[40:48])

	if offtbl < headerSize || offtbl >= uint64(sz-trailerBytes) {
		return 0, 0, ErrCorrupt
	}
	return tableCap, offtbl, nil
}
