package particles

import (
	"math/rand/v2"
	"sync"
	"time"
	"unsafe"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ParticleBinding is the storage buffer binding the particle shaders read from.
const ParticleBinding = 0

// chunkSize is the number of particles one pool task fills. Each chunk draws from its
// own generator seeded by (seed, chunk index), so the output does not depend on the
// worker count.
const chunkSize = 1 << 16

// Particle is one GPU particle. Both fields are vec4 so the struct packs into a
// std430 array without padding.
// Size: 32 bytes.
type Particle struct {
	Position mgl32.Vec4 // offset  0, w = 1
	Velocity mgl32.Vec4 // offset 16
}

// Size returns the size of the Particle struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (p *Particle) Size() int {
	return int(unsafe.Sizeof(*p))
}

// Particles is a particle system's initial state, laid out exactly as the storage buffer.
type Particles []Particle

// Bytes returns a view of the particles suitable for a buffer upload.
// The slice shares memory with ps.
//
// Returns:
//   - []byte: the raw particle data, nil if ps is empty
func (ps Particles) Bytes() []byte {
	return common.SliceToBytes(ps)
}

// NewBall creates count particles at rest, positioned uniformly inside a ball of the
// given radius centered on the origin. Chunks are filled in parallel on a worker pool
// that is stopped before returning.
//
// Parameters:
//   - count: the number of particles
//   - radius: the ball radius
//   - seed: the random seed, the same seed always gives the same particles
//   - workers: the worker pool size, minimum 1
//
// Returns:
//   - Particles: the particles
func NewBall(count int, radius float32, seed uint64, workers int) Particles {
	if count <= 0 {
		return nil
	}
	ps := make(Particles, count)

	pool := worker.NewDynamicWorkerPool(max(workers, 1), 64, 1*time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	for chunk, start := 0, 0; start < count; chunk, start = chunk+1, start+chunkSize {
		end := min(start+chunkSize, count)
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: chunk,
			Do: func() (any, error) {
				defer wg.Done()
				rng := rand.New(rand.NewPCG(seed, uint64(chunk)))
				for i := start; i < end; i++ {
					ps[i].Position = ballPoint(rng, radius).Vec4(1)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
	return ps
}

// ballPoint samples a point uniformly inside a ball by rejection from the enclosing cube.
func ballPoint(rng *rand.Rand, radius float32) mgl32.Vec3 {
	for {
		p := mgl32.Vec3{
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
		}
		if p.LenSqr() <= 1 {
			return p.Mul(radius)
		}
	}
}
