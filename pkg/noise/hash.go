package noise

// Stateless seeded hashing for parameter derivation. Unlike a sequential
// PRNG, the result depends only on (seed, salt), so derivation order never
// changes the outcome.

// mix32 is an avalanche integer finalizer: small input deltas flip roughly
// half the output bits.
func mix32(x uint32) uint32 {
	x ^= x >> 16
	x += x << 3
	x ^= x >> 4
	x *= 0x27d4eb2d
	x ^= x >> 15
	return x
}

// Hash maps (seed, salt) to a float64 in [0,1). Same inputs always yield the
// same output regardless of call order or global state.
func Hash(seed, salt uint32) float64 {
	h := mix32(seed ^ salt*0x9e3779b9)
	// Low 24 bits as a fraction; strictly below 1.
	return float64(h&0xffffff) / float64(1<<24)
}

// Range maps (seed, salt) to a float64 in [a,b).
func Range(seed, salt uint32, a, b float64) float64 {
	return a + Hash(seed, salt)*(b-a)
}

// IntRange maps (seed, salt) to an integer in [a,b] inclusive.
func IntRange(seed, salt uint32, a, b int) int {
	return a + int(Hash(seed, salt)*float64(b-a+1))
}
