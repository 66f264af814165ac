// writer.go -- constant, on-disk content-fingerprint store (write side)
//
// File shape: fixed header, a run of checksummed records, a page-aligned
// lookup table, and a trailing strong checksum over all metadata. Records
// are keyed by the PolymurHash fingerprint of their content; the lookup
// table uses open-addressed linear probing rather than a constructed
// perfect hash, since there is no guarantee of a collision-free table for
// an arbitrary key set -- the table reserves headroom via loadFactor and
// probes past collisions at read time.
package fingerprintdb

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dchest/siphash"

	"github.com/opencoff/polymurhash/polymur"
)

const (
	magic        = "FPDB"
	headerSize   = 64
	emptySlot    = ^uint64(0)
	defaultLoad  = 0.7
	trailerBytes = 32
)

type record struct {
	hash uint64
	off  uint64
	vlen uint32
}

// Writer builds a constant, read-only PolymurHash-keyed content-fingerprint
// database. Once Freeze is called the database is immutable and readable
// via Reader.
type Writer struct {
	fd     *os.File
	fn     string
	fntmp  string
	salt   []byte
	params polymur.Params

	keymap map[uint64]*record
	off    uint64
	frozen bool
}

// NewWriter prepares file fn to hold a constant fingerprint database. The
// PolymurHash Params used to fingerprint content are derived from seed.
// Neither the seed nor the Params are written to the file; a Reader must be
// opened with the same seed to reconstruct them identically.
func NewWriter(fn string, seed uint64) (*Writer, error) {
	tmp := fmt.Sprintf("%s.tmp.%d", fn, rand32())
	fd, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		fd:     fd,
		fn:     fn,
		fntmp:  tmp,
		salt:   randbytes(16),
		params: polymur.InitParamsFromSeed(seed),
		keymap: make(map[uint64]*record),
		off:    headerSize,
	}

	var z [headerSize]byte
	if err := writeAll(fd, z[:]); err != nil {
		return nil, err
	}
	return w, nil
}

// Len returns the number of distinct fingerprints added so far.
func (w *Writer) Len() int {
	return len(w.keymap)
}

// Add fingerprints content with PolymurHash and stores payload keyed by that
// fingerprint. Returns ErrExists for a content fingerprint already added.
func (w *Writer) Add(content, payload []byte) error {
	if w.frozen {
		return ErrFrozen
	}
	if uint64(len(payload)) > uint64(1)<<32-1 {
		return ErrValueTooLarge
	}

	h := polymur.Hash(content, &w.params, 0)
	if _, ok := w.keymap[h]; ok {
		return ErrExists
	}

	r := &record{hash: h, off: w.off, vlen: uint32(len(payload))}
	w.keymap[h] = r

	if err := w.writeRecord(payload, r.off); err != nil {
		return err
	}
	return nil
}

func (w *Writer) writeRecord(val []byte, off uint64) error {
	var o [8]byte
	binary.BigEndian.PutUint64(o[:], off)

	h := siphash.New(w.salt)
	h.Write(o[:])
	h.Write(val)

	var c [8]byte
	binary.BigEndian.PutUint64(c[:], h.Sum64())

	if err := writeAll(w.fd, c[:]); err != nil {
		return err
	}
	if err := writeAll(w.fd, val); err != nil {
		return err
	}
	w.off += uint64(len(val)) + 8
	return nil
}

// Freeze builds the open-addressed lookup table at the given load factor
// (0 < loadFactor <= 1; lower values probe faster but use more disk) and
// writes the final database to disk.
func (w *Writer) Freeze(loadFactor float64) (err error) {
	defer func() {
		if err != nil {
			w.fd.Close()
			os.Remove(w.fntmp)
		}
	}()

	if w.frozen {
		return ErrFrozen
	}
	if loadFactor <= 0 || loadFactor > 1 {
		loadFactor = defaultLoad
	}

	nkeys := uint64(len(w.keymap))
	tableCap := nextpow2(uint64(float64(nkeys)/loadFactor) + 1)
	if tableCap < 8 {
		tableCap = 8
	}

	slots := make([]record, tableCap)
	for i := range slots {
		slots[i].off = emptySlot
	}
	mask := tableCap - 1
	for h, r := range w.keymap {
		i := h & mask
		for slots[i].off != emptySlot {
			i = (i + 1) & mask
		}
		slots[i] = *r
	}

	pgsz := uint64(os.Getpagesize())
	offtbl := align(w.off, pgsz)
	if offtbl > w.off {
		if err = writeAll(w.fd, make([]byte, offtbl-w.off)); err != nil {
			return err
		}
		w.off = offtbl
	}

	hcs := sha512.New512_256()
	tee := io.MultiWriter(w.fd, hcs)

	var hdr [headerSize]byte
	copy(hdr[:4], magic)
	copy(hdr[8:24], w.salt)
	binary.BigEndian.PutUint64(hdr[24:32], nkeys)
	binary.BigEndian.PutUint64(hdr[32:40], tableCap)
	binary.BigEndian.PutUint64(hdr[40:48], offtbl)
	hcs.Write(hdr[:])

	offsetHash := make([]uint64, 2*tableCap)
	vlen := make([]uint32, tableCap)
	for i, s := range slots {
		offsetHash[2*i] = s.off
		offsetHash[2*i+1] = s.hash
		vlen[i] = s.vlen
	}

	if err = writeAll(tee, u64sToByteSlice(offsetHash)); err != nil {
		return err
	}
	if err = writeAll(tee, u32sToByteSlice(vlen)); err != nil {
		return err
	}
	w.off += uint64(tableCap)*(8+8) + uint64(tableCap)*4

	cksum := hcs.Sum(nil)
	if err = writeAll(w.fd, cksum); err != nil {
		return err
	}

	if _, err = w.fd.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err = writeAll(w.fd, hdr[:]); err != nil {
		return err
	}

	w.frozen = true
	w.fd.Sync()
	w.fd.Close()
	return os.Rename(w.fntmp, w.fn)
}

// Abort discards the in-progress database.
func (w *Writer) Abort() {
	w.fd.Close()
	os.Remove(w.fntmp)
}

func align(off, boundary uint64) uint64 {
	return (off + boundary - 1) &^ (boundary - 1)
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

func writeAll(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return errShortWrite(n)
	}
	return nil
}
