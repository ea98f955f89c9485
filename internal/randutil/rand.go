// Package randutil derives the deterministic random generators used by sessions and
// simulations.
package randutil

import (
	"crypto/sha256"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Seed hashes the block time followed by every player secret, all big-endian, into the
// 32-byte seed of a session deck. The last secret to be supplied can be chosen after
// the others are known, so the final joiner has some influence over the result.
func Seed(blockTime uint64, secrets []uint64) [32]byte {
	buf := make([]byte, 0, 8*(len(secrets)+1))
	buf = binary.BigEndian.AppendUint64(buf, blockTime)
	for _, s := range secrets {
		buf = binary.BigEndian.AppendUint64(buf, s)
	}
	return sha256.Sum256(buf)
}

// FromSeed returns a ChaCha8 backed *rand.Rand for a seed produced by Seed.
func FromSeed(seed [32]byte) *rand.Rand {
	return rand.New(rand.NewChaCha8(seed))
}

// New returns a *rand.Rand seeded deterministically from the provided int64. Simulated
// players use it so that their choices replay along with the session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
