//go:build arm64 && !purego

package vhash

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasAES {
		aesRound = arm64Round
	}
}

//go:noescape
func aesRoundASM(dst, state, key *block128)

// arm64Round emulates Intel's AESENC using ARMv8's crypto extensions.
// AESENC XORs the round key in after MixColumns; ARM's AESE XORs its
// second operand in before SubBytes/ShiftRows. Feeding AESE a zero key
// isolates ShiftRows(SubBytes(state)), and AESMC then finishes
// MixColumns, leaving a plain XOR against the real key to reproduce
// AESENC's result bit for bit.
func arm64Round(state, key block128) block128 {
	var dst block128
	aesRoundASM(&dst, &state, &key)
	return dst
}
