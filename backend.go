package vhash

// aesRound is the active backend's round function, selected once at
// package init time based on the host's AES instruction support. It
// defaults to the portable software backend; an architecture-specific
// init (see backend_amd64.go, backend_arm64.go) overrides it when the
// CPU and build advertise AES acceleration.
//
// Every backend must compute exactly the same function as genericRound;
// backend_equivalence_test.go checks this directly.
var aesRound = genericRound
