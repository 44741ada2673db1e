//go:build amd64 && !purego

package vhash

import "golang.org/x/sys/cpu"

func init() {
	// Same gate the Go runtime itself uses before trusting AES-NI for its
	// map hash (see the Enabled() checks in aeshash-style packages).
	// aesRoundASM itself issues only MOVOU and AESENC.
	if cpu.X86.HasAES && cpu.X86.HasSSSE3 && cpu.X86.HasSSE41 {
		aesRound = amd64Round
	}
}

//go:noescape
func aesRoundASM(dst, state, key *block128)

// amd64Round executes one AESENC instruction per call. It covers both an
// AES-NI/AVX2 style tier and an AVX-512+VAES style tier: the two differ
// only in how many 128-bit lanes a single instruction can chew through,
// not in the function each lane computes, so both are served by this
// same per-lane sequence. A true 512-bit-wide VAES backend would only
// change throughput, never the bits produced.
func amd64Round(state, key block128) block128 {
	var dst block128
	aesRoundASM(&dst, &state, &key)
	return dst
}
