package vhash

// State is an incremental hash. Key it with NewState(seed) or Reset(seed),
// append bytes with Write, read the digest with Sum64 as many times as you like — Sum64
// never mutates the state, so interleaving Write and Sum64 calls from a
// single owning goroutine is fine, but Write itself requires exclusive
// ownership: concurrent Write calls on the same State are a contract
// violation. Two distinct States never interfere with each other.
type State struct {
	full fullState
}

// NewState creates a State keyed by seed, equivalent to hash_state_init.
func NewState(seed uint64) *State {
	s := &State{}
	s.Reset(seed)
	return s
}

// Reset re-keys s for a fresh input, discarding anything previously
// written. A State must be Reset (or freshly constructed via NewState)
// before reuse for a new input.
func (s *State) Reset(seed uint64) {
	s.full = newFullState(seed)
}

// Write appends p to the hash. It always returns (len(p), nil); per the
// spec, streaming has no recoverable errors.
func (s *State) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		offset := int(s.full.insLength % 64)
		toCopy := 64 - offset
		if toCopy > len(p) {
			toCopy = len(p)
		}
		willFill := offset+toCopy == 64

		for i := 0; i < toCopy; i++ {
			s.full.ins[(offset+i)/16][(offset+i)%16] = p[i]
		}
		s.full.insLength += uint64(toCopy)
		p = p[toCopy:]

		if willFill {
			s.full.absorb64()
			s.full.ins = [4]block128{}
		}
	}
	return n, nil
}

// Sum64 folds the state into its 64-bit digest without modifying s,
// equivalent to hash_state_fold. The result equals Hash(concat of every
// slice ever passed to Write, seed).
func (s *State) Sum64() uint64 {
	length := s.full.insLength
	if length >= 64 {
		if r := length % 64; r != 0 {
			// A full copy lets us absorb the zero-padded pending tail
			// without disturbing the live state fold() must not mutate.
			padded := s.full
			padded.absorb64()
			return padded.finalize()
		}
		return s.full.finalize()
	}

	return s.foldTail(s.full.toMinimal(), length)
}

// foldTail absorbs whichever ins lanes are needed to cover a buffered
// input shorter than 64 bytes, mirroring the minimal dispatch table in
// hash.go but reading blocks straight out of the already-staged ins
// array instead of re-slicing the original input.
func (s *State) foldTail(minimal minimalState, length uint64) uint64 {
	switch {
	case length <= 16:
		minimal.absorb(s.full.ins[0])
	case length <= 32:
		minimal.absorb(s.full.ins[0])
		minimal.absorb(s.full.ins[1])
	case length <= 48:
		minimal.absorb(s.full.ins[0])
		minimal.absorb(s.full.ins[1])
		minimal.absorb(s.full.ins[2])
	default:
		minimal.absorb(s.full.ins[0])
		minimal.absorb(s.full.ins[1])
		minimal.absorb(s.full.ins[2])
		minimal.absorb(s.full.ins[3])
	}
	return minimal.finalize(length)
}

// StatesEqual reports whether a and b would fold to the same value given
// the same remaining input: it compares the aes, sum, and key registers
// and ignores the staging buffer and byte count.
func StatesEqual(a, b *State) bool {
	return a.full.aes == b.full.aes &&
		a.full.sum == b.full.sum &&
		a.full.key == b.full.key
}
