package vhash

// Hash computes the 64-bit keyed hash of data. The same (data, seed) pair
// always produces the same output, on every platform and on every backend
// this package can select — that bit-exactness is the whole point of the
// algorithm, not an incidental property of one implementation.
func Hash(data []byte, seed uint64) uint64 {
	n := len(data)
	switch {
	case n <= 16:
		return hashMinimalSingle(data, seed)
	case n < 64:
		return hashMinimalMulti(data, seed)
	default:
		return hashFull(data, seed)
	}
}

func hashMinimalSingle(data []byte, seed uint64) uint64 {
	s := newMinimalState(seed)
	s.absorb(blockFromTail(data))
	return s.finalize(uint64(len(data)))
}

// hashMinimalMulti handles 17..63 bytes: full 16-byte blocks from the
// front, and a final block made of the last 16 input bytes shifted right
// within the register so the tail lines up without a masked load.
func hashMinimalMulti(data []byte, seed uint64) uint64 {
	n := len(data)
	s := newMinimalState(seed)

	rounded := ((n + 15) / 16) * 16 // next multiple of 16 at or above n
	shift := rounded - n
	leading := rounded/16 - 1 // complete 16-byte blocks before the tail

	for i := 0; i < leading; i++ {
		s.absorb(loadBlock(data[i*16 : i*16+16]))
	}
	tail := loadBlock(data[n-16:])
	s.absorb(shiftRight(tail, shift))

	return s.finalize(uint64(n))
}

func hashFull(data []byte, seed uint64) uint64 {
	s := newFullState(seed)
	n := len(data)

	for int(s.insLength)+64 <= n {
		off := int(s.insLength)
		for i := 0; i < 4; i++ {
			s.ins[i] = loadBlock(data[off+i*16 : off+i*16+16])
		}
		s.absorb64()
		s.insLength += 64
	}
	if int(s.insLength) < n {
		s.ins = [4]block128{}
		tail := data[s.insLength:]
		for i, b := range tail {
			s.ins[i/16][i%16] = b
		}
		s.absorb64()
		s.insLength = uint64(n)
	}
	return s.finalize()
}

func loadBlock(b []byte) block128 {
	var out block128
	copy(out[:], b[:16])
	return out
}
