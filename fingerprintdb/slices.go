// slices.go -- zero-copy byte-slice <-> typed-slice reinterpretation for
// mmap'd regions.
//
// Uses unsafe.Slice for the reinterpretation rather than constructing a
// reflect.SliceHeader by hand.
package fingerprintdb

import "unsafe"

func bsToUint64Slice(b []byte) []uint64 {
	n := len(b) / 8
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), n)
}

func u64sToByteSlice(v []uint64) []byte {
	n := len(v)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), n*8)
}

func bsToUint32Slice(b []byte) []uint32 {
	n := len(b) / 4
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), n)
}

func u32sToByteSlice(v []uint32) []byte {
	n := len(v)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), n*4)
}
