package vhash

// Generate fills dst deterministically from nonce. Calling Generate twice
// with the same nonce and the same len(dst) always produces identical
// bytes; a different length is not guaranteed to produce a prefix of a
// longer call's output for any caller that also changes len(dst).
//
// Each 16-byte lane i is AESENC({nonce+i, nonce+i}, {nonce^pi[2(i%4)],
// nonce^pi[2(i%4)+1]}) — one AES round over a counter-mode input, keyed
// by the nonce XORed with a rotating slice of the same Pi constants the
// hash uses for domain separation.
func Generate(dst []byte, nonce uint64) {
	for lane := 0; len(dst) > 0; lane++ {
		input := blockFromHalves(nonce+uint64(lane), nonce+uint64(lane))
		key := blockFromHalves(
			nonce^piTable[2*(lane%4)],
			nonce^piTable[2*(lane%4)+1],
		)
		generated := aesRound(input, key)

		n := copy(dst, generated[:])
		dst = dst[n:]
	}
}
