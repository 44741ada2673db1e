package vhash

import "encoding/binary"

// block128 is one AES block: 16 bytes, addressable as two little-endian
// uint64 halves. It is also the exact memory shape the amd64 and arm64
// assembly backends read and write, so its layout must never change.
type block128 [16]byte

func (b *block128) lo() uint64 { return binary.LittleEndian.Uint64(b[0:8]) }
func (b *block128) hi() uint64 { return binary.LittleEndian.Uint64(b[8:16]) }

func (b *block128) setLo(v uint64) { binary.LittleEndian.PutUint64(b[0:8], v) }
func (b *block128) setHi(v uint64) { binary.LittleEndian.PutUint64(b[8:16], v) }

func blockFromHalves(lo, hi uint64) block128 {
	var b block128
	b.setLo(lo)
	b.setHi(hi)
	return b
}

// blockFromTail loads the bytes of data into a fresh block128 starting at
// offset 0, zeroing anything beyond len(data). Used for single-shot inputs
// of up to 16 bytes.
func blockFromTail(data []byte) block128 {
	var b block128
	copy(b[:], data)
	return b
}

// addLanes performs the lane-wise 64-bit add used by every absorption
// step: dst = dst + add, where "+" wraps at 2^64 per lane.
func (b *block128) addLanes(add block128) {
	b.setLo(b.lo() + add.lo())
	b.setHi(b.hi() + add.hi())
}

// shuffle applies the fixed 16-byte permutation to b, returning the result.
// order[i] names the source index of destination byte i.
func shuffle(b block128, order [16]byte) block128 {
	var out block128
	for i := 0; i < 16; i++ {
		out[i] = b[order[i]]
	}
	return out
}

// shiftRight interprets b as a 128-bit little-endian integer and shifts it
// right by 8*n bits (n bytes), zero-filling from the top. Shifting by 0 is
// a no-op; shifting by 16 or more yields the zero block. This is how the
// length dispatch in hash.go de-interleaves an overlapping tail block
// without a data-dependent masked load.
func shiftRight(b block128, n int) block128 {
	if n <= 0 {
		return b
	}
	if n >= 16 {
		return block128{}
	}
	lo, hi := b.lo(), b.hi()
	if n >= 8 {
		return blockFromHalves(hi>>(uint(n-8)*8), 0)
	}
	newLo := (lo >> (uint(n) * 8)) | (hi << (uint(8-n) * 8))
	newHi := hi >> (uint(n) * 8)
	return blockFromHalves(newLo, newHi)
}
