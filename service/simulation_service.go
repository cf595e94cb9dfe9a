package service

import (
	"encoding/json"
	"fmt"
	"log"

	"cgpa-agent/domain"
	"cgpa-agent/repository"
)

type SimulationService struct {
	insightService *InsightService
	aiService      *AIService
	cache          repository.CacheRepository
	scale          domain.GradeScale
}

func NewSimulationService(
	insightService *InsightService,
	cache repository.CacheRepository,
	scale domain.GradeScale,
) *SimulationService {
	return &SimulationService{
		insightService: insightService,
		aiService:      NewAIService(),
		cache:          cache,
		scale:          scale,
	}
}

// Simulate corre el multiverso: N variaciones por path seleccionado, con
// semillas deterministas, desde el semestre actual hasta el final del plan.
func (s *SimulationService) Simulate(
	input domain.SimulationInput,
) (domain.SimulationResult, error) {

	// Validaciones
	if input.Variations < 1 {
		return domain.SimulationResult{}, fmt.Errorf("%w: número de variaciones inválido", ErrInvalidInput)
	}
	if input.Variations > MaxVariationsPerPath {
		return domain.SimulationResult{}, fmt.Errorf("%w: número de variaciones excede el máximo de %d", ErrInvalidInput, MaxVariationsPerPath)
	}
	if input.CurrentSemester < MinSemester || input.CurrentSemester > MaxSemester {
		return domain.SimulationResult{}, fmt.Errorf("%w: semestre debe estar entre %d y %d", ErrInvalidInput, MinSemester, MaxSemester)
	}
	if !s.scale.Contains(input.CurrentCGPA) {
		return domain.SimulationResult{}, fmt.Errorf("%w: CGPA %.2f fuera de la escala %.1f-%.1f",
			ErrInvalidInput, input.CurrentCGPA, s.scale.Min, s.scale.Max)
	}

	// Sin selección explícita se exploran todos los paths.
	paths := input.Paths
	if len(paths) == 0 {
		paths = domain.AllPaths()
	}
	for _, p := range paths {
		if _, ok := pathFuncs[p]; !ok {
			return domain.SimulationResult{}, fmt.Errorf("%w: path desconocido %q", ErrInvalidInput, p)
		}
	}

	steps := 1
	if input.CurrentSemester < PlanHorizonSemesters {
		steps = PlanHorizonSemesters - input.CurrentSemester + 1
	}

	semesters := make([]int, steps)
	for i := range semesters {
		semesters[i] = input.CurrentSemester + i
	}

	trajectories := []domain.PathTrajectory{}
	outcomes := []domain.FinalOutcome{}
	finals := []float64{}

	for _, path := range paths {
		for v := 0; v < input.Variations; v++ {
			cgpas, err := s.trajectoryFor(path, input.CurrentCGPA, steps, v)
			if err != nil {
				return domain.SimulationResult{}, err
			}

			trajectories = append(trajectories, domain.PathTrajectory{
				Path:      path,
				Variation: v + 1,
				Semesters: semesters,
				CGPAs:     cgpas,
			})

			final := cgpas[len(cgpas)-1]
			finals = append(finals, final)
			outcomes = append(outcomes, domain.FinalOutcome{
				Path:      path,
				Variation: v + 1,
				FinalCGPA: final,
				Category:  s.insightService.Categorize(final),
				Advice:    s.insightService.Advice(final),
			})
		}
	}

	stats := s.insightService.Summarize(finals)

	result := domain.SimulationResult{
		Trajectories:   trajectories,
		Outcomes:       outcomes,
		Stats:          stats,
		CategoryCounts: s.insightService.CategoryCounts(finals),
	}

	// Generar comentario inteligente con IA
	result.Commentary = s.aiService.GenerateSimulationCommentary(input, stats, outcomes)

	return result, nil
}

// trajectoryFor computes one path variation, reusing the cache when the same
// (path, start, steps, variation) tuple was already simulated.
func (s *SimulationService) trajectoryFor(
	path string,
	start float64,
	steps, variation int,
) ([]float64, error) {

	key := fmt.Sprintf("sim:%s:%.4f:%d:%d", path, start, steps, variation)

	if raw, ok := s.cache.Get(key); ok {
		var cgpas []float64
		if err := json.Unmarshal([]byte(raw), &cgpas); err == nil && len(cgpas) == steps {
			return cgpas, nil
		}
		// Entrada corrupta: se recalcula y sobreescribe.
		log.Printf("Warning: discarding corrupt cache entry for %s", key)
	}

	cgpas, err := generatePath(path, start, steps, variation, s.scale)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(cgpas); err == nil {
		if err := s.cache.Set(key, string(raw)); err != nil {
			log.Printf("Warning: failed to cache trajectory for %s: %v", key, err)
		}
	}

	return cgpas, nil
}
