package vhash

// ByteSum returns the unsigned 64-bit sum of every byte in data. There is
// no seed and no padding; overflow wraps modulo 2^64, which cannot
// actually happen below 2^56 bytes of input.
//
// The accumulation runs eight lanes wide so the compiler can pipeline the
// adds: one forward pass over the body in steps of eight bytes, then the
// remaining tail bytes one at a time. It is plain scalar Go rather than
// assembly, since a plain byte sum has nothing AES-specific to accelerate.
func ByteSum(data []byte) uint64 {
	var acc [8]uint64
	n := len(data)
	body := n - n%8
	for i := 0; i < body; i += 8 {
		acc[0] += uint64(data[i])
		acc[1] += uint64(data[i+1])
		acc[2] += uint64(data[i+2])
		acc[3] += uint64(data[i+3])
		acc[4] += uint64(data[i+4])
		acc[5] += uint64(data[i+5])
		acc[6] += uint64(data[i+6])
		acc[7] += uint64(data[i+7])
	}
	sum := acc[0] + acc[1] + acc[2] + acc[3] + acc[4] + acc[5] + acc[6] + acc[7]
	for i := body; i < n; i++ {
		sum += uint64(data[i])
	}
	return sum
}
