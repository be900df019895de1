// Package rng provides a single process-wide random source for values that
// don't need to be reproducible (keep-alive IDs) but
// do need to not be guessable from a predictably-seeded default.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand"
	"sync"
)

var (
	mu     sync.Mutex
	source = mrand.New(mrand.NewSource(cryptoSeed()))
)

func cryptoSeed() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		// crypto/rand failing means the OS entropy source is broken; a
		// predictable fallback here only affects the unguessability of
		// keep-alive IDs, not correctness.
		var b [8]byte
		_, _ = rand.Read(b[:])
		return int64(binary.BigEndian.Uint64(b[:]) & (1<<62 - 1))
	}
	return n.Int64()
}

// Int63 returns a random non-negative 63-bit integer.
func Int63() int64 {
	mu.Lock()
	defer mu.Unlock()
	return source.Int63()
}

// Int31 returns a random non-negative 31-bit integer.
func Int31() int32 {
	mu.Lock()
	defer mu.Unlock()
	return source.Int31()
}
