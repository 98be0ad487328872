package memutils

import (
	"math"
	"math/bits"
)

// sizeWordBits is the width of the size word all array-size arithmetic is carried
// out against.
const sizeWordBits = bits.UintSize

// CalcMemSizeForArray computes the number of bytes required for an array of nmemb
// items of size bytes each, with no alignment applied. It returns false instead of
// a byte count when the multiplication would overflow the size word.
func CalcMemSizeForArray(nmemb, size int) (int, bool) {
	return CalcMemSizeForArrayWithAlignment(nmemb, size, 0)
}

// CalcMemSizeForArrayWithAlignment computes the number of bytes required for an
// array of nmemb items of size bytes each, rounded up to the next multiple of
// alignment. An alignment of zero applies no rounding; any other alignment must be
// a power of two or the call panics.
//
// An unchecked nmemb*size is the classic integer-overflow route to an undersized
// buffer (https://cwe.mitre.org/data/definitions/190.html), so the multiplication
// is screened with guarded divisions that cannot themselves overflow. On overflow
// the call returns false and no byte count.
func CalcMemSizeForArrayWithAlignment(nmemb, size int, alignment uint) (int, bool) {
	if alignment != 0 {
		err := CheckPow2(alignment, "alignment")
		if err != nil {
			panic(err)
		}
	}
	if nmemb < 0 || size < 0 {
		return 0, false
	}

	// maxAllowed screens out the cheap cases so most calls never pay for a DIV.
	maxAllowed := (uint64(1) << (sizeWordBits >> 1)) - uint64(alignment)
	maxSize := uint64(math.MaxInt) - uint64(alignment)

	n := uint64(nmemb)
	s := uint64(size)

	if n >= maxAllowed && maxSize/n < s {
		return 0, false
	}
	if s >= maxAllowed && n > 0 && maxSize/n < s {
		return 0, false
	}

	total := n * s
	if alignment != 0 {
		mask := uint64(alignment) - 1
		total = (total + mask) &^ mask
	}
	if total > uint64(math.MaxInt) {
		return 0, false
	}

	return int(total), true
}
