package vhash

import (
	"math/rand"
	"testing"
)

// FuzzStreamingMatchesSingleShot checks that any partition of a random
// input into chunks of random size folds to the same value as Hash
// computes in one shot.
func FuzzStreamingMatchesSingleShot(f *testing.F) {
	f.Add([]byte(nil), uint64(0), int64(1))
	f.Add([]byte("hi"), uint64(1), int64(2))
	f.Add(make([]byte, 200), uint64(0xDEADBEEF), int64(3))

	f.Fuzz(func(t *testing.T, data []byte, seed uint64, splitSeed int64) {
		want := Hash(data, seed)

		st := NewState(seed)
		rng := rand.New(rand.NewSource(splitSeed))
		pos := 0
		for pos < len(data) {
			chunk := rng.Intn(len(data)-pos) + 1
			_, _ = st.Write(data[pos : pos+chunk])
			pos += chunk
		}
		if got := st.Sum64(); got != want {
			t.Fatalf("streaming %x != single-shot %x for data of length %d, seed %x", got, want, len(data), seed)
		}
	})
}

// FuzzGenerateDeterministic checks that Generate is a pure function of
// (nonce, len(dst)) over fuzzer-chosen lengths and nonces.
func FuzzGenerateDeterministic(f *testing.F) {
	f.Add(uint64(0), 5)
	f.Add(uint64(1), 200)

	f.Fuzz(func(t *testing.T, nonce uint64, length int) {
		if length < 0 || length > 1<<20 {
			t.Skip()
		}
		a := make([]byte, length)
		b := make([]byte, length)
		Generate(a, nonce)
		Generate(b, nonce)
		if string(a) != string(b) {
			t.Fatalf("Generate(_, %d, %x) not deterministic", length, nonce)
		}
	})
}
