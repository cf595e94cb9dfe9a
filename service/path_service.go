package service

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"cgpa-agent/domain"
)

// pathFunc genera una trayectoria de CGPA semestre a semestre desde el punto
// inicial. El primer elemento es siempre el CGPA actual, sin recortar.
type pathFunc func(start float64, steps int, rng *rand.Rand, max float64) []float64

var pathFuncs = map[string]pathFunc{
	domain.PathBalancedGrowth:       balancedGrowth,
	domain.PathHighAchiever:         highAchiever,
	domain.PathDownfallRecovery:     downfallRecovery,
	domain.PathUpDown:               upDown,
	domain.PathPerfectionist:        perfectionist,
	domain.PathConsistentImprove:    consistentImprove,
	domain.PathChaotic:              chaotic,
	domain.PathLateBloomer:          lateBloomer,
	domain.PathSpikePlateau:         spikePlateau,
	domain.PathSenioritis:           senioritis,
	domain.PathNoStudy:              noStudy,
	domain.PathBurnout:              burnout,
	domain.PathTriumphOverAdversity: triumphOverAdversity,
}

// pathSeed derives the deterministic seed for one variation of a path.
func pathSeed(path string, variation int) int64 {
	h := fnv.New32a()
	h.Write([]byte(path))
	return int64((uint64(SeedBase) + uint64(h.Sum32()) + uint64(variation)) % (1 << 32))
}

// generatePath runs the named path generator with a deterministic seed.
func generatePath(path string, start float64, steps, variation int, scale domain.GradeScale) ([]float64, error) {
	fn, ok := pathFuncs[path]
	if !ok {
		return nil, fmt.Errorf("%w: path desconocido %q", ErrInvalidInput, path)
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: número de pasos inválido", ErrInvalidInput)
	}
	rng := rand.New(rand.NewSource(pathSeed(path, variation)))
	return fn(start, steps, rng, scale.Max), nil
}

// clampPath recorta al rango [PathFloor, max].
func clampPath(v, max float64) float64 {
	return math.Min(math.Max(PathFloor, v), max)
}

func balancedGrowth(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		nxt := traj[i-1] + 0.05*rng.NormFloat64() + 0.06
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func highAchiever(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		nxt := traj[i-1] + 0.10*rng.NormFloat64() + 0.09
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func downfallRecovery(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		var nxt float64
		if i < 4 {
			nxt = traj[i-1] - 0.1*rng.Float64()
		} else {
			nxt = traj[i-1] + 0.15*rng.Float64()
		}
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func upDown(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		direction := 1.0
		if rng.Float64() <= 0.5 {
			direction = -1.0
		}
		nxt := traj[i-1] + direction*(0.15+0.1*rng.Float64())
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func perfectionist(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		var nxt float64
		if i == 3 || i == 6 {
			// Caída puntual: ni los perfeccionistas son perfectos.
			nxt = traj[i-1] - 0.15*rng.Float64()
		} else {
			nxt = traj[i-1] + 0.08 + 0.07*rng.Float64()
		}
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func consistentImprove(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		nxt := traj[i-1] + 0.07 + 0.02*rng.NormFloat64()
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func chaotic(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		nxt := traj[i-1] + 0.2*rng.NormFloat64() + 0.05*sign
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func lateBloomer(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		var nxt float64
		if i < 5 {
			nxt = traj[i-1] - 0.02*rng.Float64()
		} else {
			nxt = traj[i-1] + 0.15 + 0.05*rng.Float64()
		}
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func spikePlateau(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		var nxt float64
		if i >= 3 && i <= 5 {
			nxt = traj[i-1] + 0.25 + 0.05*rng.NormFloat64()
		} else {
			nxt = traj[i-1] + 0.02*rng.NormFloat64()
		}
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func senioritis(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		var nxt float64
		if i < 7 {
			nxt = traj[i-1] + 0.08 + 0.02*rng.NormFloat64()
		} else {
			nxt = traj[i-1] - 0.1*rng.Float64()
		}
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func noStudy(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		nxt := traj[i-1] - (0.05 + 0.05*rng.Float64())
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func burnout(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		var nxt float64
		if i >= 3 && i <= 5 {
			nxt = traj[i-1] - (0.1 + 0.1*rng.Float64())
		} else {
			nxt = traj[i-1] + 0.05*rng.NormFloat64()
		}
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}

func triumphOverAdversity(start float64, steps int, rng *rand.Rand, max float64) []float64 {
	traj := []float64{start}
	for i := 1; i < steps; i++ {
		var nxt float64
		if i < 4 {
			nxt = traj[i-1] - 0.05*rng.Float64()
		} else {
			nxt = traj[i-1] + 0.12 + 0.08*rng.Float64()
		}
		traj = append(traj, clampPath(nxt, max))
	}
	return traj
}
