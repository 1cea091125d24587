package mapv

import "github.com/dchest/siphash"

// Hash128 is a 128-bit hash split into independent high and low 64-bit
// halves. The table never retains the key that produced a Hash128;
// identity is probabilistic, not exact.
type Hash128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether h is the reserved (0,0) sentinel hash. The table
// treats any slot whose two hash halves are zero as empty, whatever its
// value, so Insert rejects every key that hashes to (0,0), including one
// paired with a nonzero value.
func (h Hash128) IsZero() bool {
	return h.Hi == 0 && h.Lo == 0
}

// Hasher computes the keyed 128-bit hash identifying a key. Any
// high-quality keyed 128-bit hash producing independent, well-mixed high
// and low halves satisfies the contract. Implementations must be
// deterministic for a given key and must not allocate on the hot path if
// avoidable.
type Hasher interface {
	Hash(key []byte) Hash128
}

// sipHasher is the default Hasher, built on github.com/dchest/siphash.
// siphash.Hash128 takes two uint64 keys and returns two independent
// 64-bit halves of a keyed 128-bit SipHash-2-4 digest, which is exactly
// the shape an Entry's hash needs.
type sipHasher struct {
	k0, k1 uint64
}

// defaultHashKey0/1 are fixed, arbitrary odd 64-bit constants. They give
// every Table a working default Hasher without reaching for an RNG;
// callers who need keys unpredictable to an adversary must supply their
// own Hasher via Config.Hasher.
const (
	defaultHashKey0 uint64 = 0x9e3779b97f4a7c15
	defaultHashKey1 uint64 = 0xc2b2ae3d27d4eb4f
)

func newDefaultHasher() Hasher {
	return sipHasher{k0: defaultHashKey0, k1: defaultHashKey1}
}

func (h sipHasher) Hash(key []byte) Hash128 {
	lo, hi := siphash.Hash128(h.k0, h.k1, key)
	return Hash128{Hi: hi, Lo: lo}
}
