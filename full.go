package vhash

// fullState is the 3x512-bit register file used for inputs of 64 bytes or
// more and for all streaming: four independent AES/sum lanes plus a
// 64-byte staging buffer and a running byte count.
type fullState struct {
	aes, sum, ins [4]block128
	key           block128
	insLength     uint64
}

func newFullState(seed uint64) fullState {
	var s fullState
	s.key.setLo(seed)
	s.key.setHi(seed)
	for i := 0; i < 4; i++ {
		s.aes[i].setLo(seed ^ piTable[2*i])
		s.aes[i].setHi(seed ^ piTable[2*i+1])
		s.sum[i].setLo(seed ^ piTable[8+2*i])
		s.sum[i].setHi(seed ^ piTable[8+2*i+1])
	}
	return s
}

// absorb64 folds the current 64-byte staging buffer into the four lanes.
// Callers are responsible for loading s.ins and for zeroing it afterward
// (single-shot zeroes as part of building the next chunk; streaming zeroes
// explicitly so a subsequent fold sees zeros above the real tail bytes).
func (s *fullState) absorb64() {
	for i := 0; i < 4; i++ {
		s.aes[i] = aesRound(s.aes[i], s.ins[i])
		s.sum[i] = shuffle(s.sum[i], shuffleMask)
		s.sum[i].addLanes(s.ins[i])
	}
}

// finalize produces the 64-bit output by tree-reducing the four lanes. It
// does not mutate s.
func (s *fullState) finalize() uint64 {
	keyWithLength := s.key
	keyWithLength.setLo(keyWithLength.lo() + s.insLength)

	var m [4]block128
	for i := 0; i < 4; i++ {
		m[i] = aesRound(s.sum[i], s.aes[i])
	}
	m01 := aesRound(m[0], m[1])
	m23 := aesRound(m[2], m[3])
	mixed := aesRound(m01, m23)

	out := aesRound(aesRound(mixed, keyWithLength), mixed)
	return out.lo()
}

// toMinimal narrows the full state's first lane into a minimal state, for
// use when folding a stream whose total length never reached 64 bytes.
func (s *fullState) toMinimal() minimalState {
	return minimalState{aes: s.aes[0], sum: s.sum[0], key: s.key}
}
