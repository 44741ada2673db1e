// Package vhash provides a portable, non-cryptographic 64-bit hash family
// built on a single AES round as its only mixing primitive.
//
// It exposes a single-shot Hash, a streaming State with the usual
// init/write/fold shape, a plain byte-sum checksum (ByteSum), and an
// AES-round counter-mode byte generator (Generate). Every operation
// produces the same bits regardless of which backend the host CPU ends
// up running: a portable Go reference, or an assembly backend built
// around the AESENC instruction (amd64) or AESE/AESMC (arm64). Backend
// selection happens once, at package init, based on CPU feature bits
// reported by golang.org/x/sys/cpu.
//
// Apart from NewState returning a new *State, none of the four primitives
// allocate; none of them can fail, and none
// of them are safe for concurrent mutation of the same State — see the
// State docs for the exact sharing rules.
package vhash
