package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns a pseudo-random number in [-1, 1).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.float32Locked()
}

func (r *RNG) float32Locked() float32 {
	return r.rand.Float32()*2 - 1
}

// intLocked returns an integer-valued float in [-limit, limit].
func (r *RNG) intLocked(limit int) float32 {
	return float32(r.rand.Intn(2*limit+1) - limit)
}

// Vector2 returns a Vector2 with components in [-1, 1).
func (r *RNG) Vector2() vecmath.Vector2 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vecmath.Vector2{X: r.float32Locked(), Y: r.float32Locked()}
}

// Vector3 returns a Vector3 with components in [-1, 1).
func (r *RNG) Vector3() vecmath.Vector3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vecmath.Vector3{X: r.float32Locked(), Y: r.float32Locked(), Z: r.float32Locked()}
}

// Vector4 returns a Vector4 with components in [-1, 1).
func (r *RNG) Vector4() vecmath.Vector4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vecmath.Vector4{X: r.float32Locked(), Y: r.float32Locked(), Z: r.float32Locked(), W: r.float32Locked()}
}

// IntVector2 returns a Vector2 with integer components in [-limit, limit].
func (r *RNG) IntVector2(limit int) vecmath.Vector2 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vecmath.Vector2{X: r.intLocked(limit), Y: r.intLocked(limit)}
}

// IntVector3 returns a Vector3 with integer components in [-limit, limit].
func (r *RNG) IntVector3(limit int) vecmath.Vector3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vecmath.Vector3{X: r.intLocked(limit), Y: r.intLocked(limit), Z: r.intLocked(limit)}
}

// IntVector4 returns a Vector4 with integer components in [-limit, limit].
func (r *RNG) IntVector4(limit int) vecmath.Vector4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vecmath.Vector4{X: r.intLocked(limit), Y: r.intLocked(limit), Z: r.intLocked(limit), W: r.intLocked(limit)}
}

// Vector3s returns n random Vector3 values.
func (r *RNG) Vector3s(n int) []vecmath.Vector3 {
	out := make([]vecmath.Vector3, n)
	for i := range out {
		out[i] = r.Vector3()
	}
	return out
}

// Vector4s returns n random Vector4 values.
func (r *RNG) Vector4s(n int) []vecmath.Vector4 {
	out := make([]vecmath.Vector4, n)
	for i := range out {
		out[i] = r.Vector4()
	}
	return out
}

// ULPDistance returns the number of representable float32 values between a
// and b. +0 and -0 are 0 apart; a NaN operand yields math.MaxUint32.
func ULPDistance(a, b float32) uint32 {
	if a != a || b != b {
		return math.MaxUint32
	}
	ia, ib := ordered(a), ordered(b)
	if ia > ib {
		return uint32(ia - ib)
	}
	return uint32(ib - ia)
}

// ordered maps float32 bits onto a monotonic integer line.
func ordered(f float32) int64 {
	bits := int64(math.Float32bits(f))
	if bits&(1<<31) != 0 {
		return -(bits &^ (1 << 31))
	}
	return bits
}
