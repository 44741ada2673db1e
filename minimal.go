package vhash

// minimalState is the 3x128-bit register file used for inputs up to 63
// bytes: one AES accumulator, one sum accumulator, and the key the seed
// was expanded into.
type minimalState struct {
	aes, sum, key block128
}

func newMinimalState(seed uint64) minimalState {
	var s minimalState
	s.key.setLo(seed)
	s.key.setHi(seed)
	s.aes.setLo(seed ^ piTable[0])
	s.aes.setHi(seed ^ piTable[1])
	s.sum.setLo(seed ^ piTable[8])
	s.sum.setHi(seed ^ piTable[9])
	return s
}

// absorb folds one 128-bit block into the minimal state.
func (s *minimalState) absorb(block block128) {
	s.aes = aesRound(s.aes, block)
	s.sum = shuffle(s.sum, shuffleMask)
	s.sum.addLanes(block)
}

// finalize produces the 64-bit output for an input of the given total
// length. It does not mutate s.
func (s *minimalState) finalize(length uint64) uint64 {
	keyWithLength := s.key
	keyWithLength.setLo(keyWithLength.lo() + length)

	mixed := aesRound(s.sum, s.aes)
	out := aesRound(aesRound(mixed, keyWithLength), mixed)
	return out.lo()
}
