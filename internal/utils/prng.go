// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"ender-sword/internal/errors"
)

// PRNGService wraps a seeded generator so that a whole run can be replayed
// from its seed. It also satisfies the rpg-toolkit dice.Roller interface.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService seeds from the clock when seed is 0.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between returns an integer in [min, max], both ends included.
func (s *PRNGService) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.rng.Intn(max-min+1)
}

// Angle returns a uniform angle in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Roll returns a value in [1, size].
func (s *PRNGService) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return s.rng.Intn(size) + 1, nil
}

func (s *PRNGService) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
