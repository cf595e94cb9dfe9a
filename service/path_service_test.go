package service

import (
	"testing"

	"cgpa-agent/domain"

	"github.com/stretchr/testify/assert"
)

// TestGeneratePathDeterminism checks that the same (path, variation) tuple
// always produces the same trajectory.
func TestGeneratePathDeterminism(t *testing.T) {
	scale := domain.DefaultScale()

	for _, path := range domain.AllPaths() {
		first, err := generatePath(path, 2.91, 10, 0, scale)
		assert.NoError(t, err, path)

		second, err := generatePath(path, 2.91, 10, 0, scale)
		assert.NoError(t, err, path)

		assert.Equal(t, first, second, "path %s should be deterministic", path)
	}
}

// TestGeneratePathBounds checks the shape and clamping of every generator.
func TestGeneratePathBounds(t *testing.T) {
	scale := domain.DefaultScale()
	const start = 2.91
	const steps = 10

	for _, path := range domain.AllPaths() {
		traj, err := generatePath(path, start, steps, 3, scale)
		assert.NoError(t, err, path)
		assert.Len(t, traj, steps, path)
		assert.Equal(t, start, traj[0], "first point must be the unclamped start")

		for i, v := range traj[1:] {
			assert.GreaterOrEqual(t, v, PathFloor, "%s point %d below floor", path, i+1)
			assert.LessOrEqual(t, v, scale.Max, "%s point %d above scale", path, i+1)
		}
	}
}

func TestGeneratePathSingleStep(t *testing.T) {
	traj, err := generatePath(domain.PathNoStudy, 3.4, 1, 0, domain.DefaultScale())
	assert.NoError(t, err)
	assert.Equal(t, []float64{3.4}, traj)
}

func TestGeneratePathUnknownPath(t *testing.T) {
	_, err := generatePath("Time Traveler", 3.0, 5, 0, domain.DefaultScale())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPathSeedVariesPerVariation(t *testing.T) {
	s0 := pathSeed(domain.PathChaotic, 0)
	s1 := pathSeed(domain.PathChaotic, 1)
	assert.NotEqual(t, s0, s1)

	other := pathSeed(domain.PathBurnout, 0)
	assert.NotEqual(t, s0, other, "different paths should seed differently")
}
