package service

import (
	"errors"
	"reflect"
	"testing"

	"cgpa-agent/domain"
	"cgpa-agent/repository"
)

func newTestSimulationService(t *testing.T, cache repository.CacheRepository) *SimulationService {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "") // comentario determinista de fallback
	return NewSimulationService(NewInsightService(), cache, domain.DefaultScale())
}

func TestSimulate_ShapeAndDeterminism(t *testing.T) {

	service := newTestSimulationService(t, repository.NewMockCache())

	input := domain.SimulationInput{
		Paths:           []string{domain.PathBalancedGrowth, domain.PathHighAchiever},
		Variations:      3,
		CurrentSemester: 8,
		CurrentCGPA:     2.91,
	}

	first, err := service.Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 paths x 3 variaciones
	if len(first.Trajectories) != 6 {
		t.Fatalf("expected 6 trajectories, got %d", len(first.Trajectories))
	}
	if len(first.Outcomes) != 6 {
		t.Fatalf("expected 6 outcomes, got %d", len(first.Outcomes))
	}

	// Semestre 8: se simulan los semestres 8, 9 y 10.
	traj := first.Trajectories[0]
	if len(traj.Semesters) != 3 || traj.Semesters[0] != 8 || traj.Semesters[2] != 10 {
		t.Errorf("unexpected semester axis: %v", traj.Semesters)
	}
	if len(traj.CGPAs) != 3 {
		t.Errorf("expected 3 CGPA points, got %d", len(traj.CGPAs))
	}

	fresh := newTestSimulationService(t, repository.NewMockCache())
	second, err := fresh.Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected deterministic simulation results")
	}
}

func TestSimulate_LastSemesterSingleStep(t *testing.T) {

	service := newTestSimulationService(t, repository.NewMockCache())

	result, err := service.Simulate(domain.SimulationInput{
		Paths:           []string{domain.PathSenioritis},
		Variations:      1,
		CurrentSemester: 10,
		CurrentCGPA:     3.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	traj := result.Trajectories[0]
	if len(traj.CGPAs) != 1 {
		t.Fatalf("expected a single point, got %d", len(traj.CGPAs))
	}
	if traj.CGPAs[0] != 3.5 {
		t.Errorf("expected trajectory to start at the current CGPA")
	}
}

func TestSimulate_DefaultsToAllPaths(t *testing.T) {

	service := newTestSimulationService(t, repository.NewMockCache())

	result, err := service.Simulate(domain.SimulationInput{
		Variations:      1,
		CurrentSemester: 9,
		CurrentCGPA:     3.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Trajectories) != len(domain.AllPaths()) {
		t.Errorf("expected one trajectory per known path, got %d", len(result.Trajectories))
	}
	if result.Stats == nil {
		t.Errorf("expected summary stats")
	}
	if result.Commentary == "" {
		t.Errorf("expected fallback commentary")
	}
}

func TestSimulate_OutcomesStayWithinScale(t *testing.T) {

	service := newTestSimulationService(t, repository.NewMockCache())

	result, err := service.Simulate(domain.SimulationInput{
		Variations:      5,
		CurrentSemester: 1,
		CurrentCGPA:     2.91,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, traj := range result.Trajectories {
		for i, v := range traj.CGPAs {
			if i == 0 {
				continue // el punto inicial es el CGPA actual, sin recortar
			}
			if v < PathFloor || v > 4.0 {
				t.Errorf("%s var %d: CGPA %.4f escaped [%.1f, 4.0]", traj.Path, traj.Variation, v, PathFloor)
			}
		}
	}
}

func TestSimulate_UsesCache(t *testing.T) {

	cache := repository.NewMockCache()
	service := newTestSimulationService(t, cache)

	input := domain.SimulationInput{
		Paths:           []string{domain.PathChaotic},
		Variations:      2,
		CurrentSemester: 7,
		CurrentCGPA:     3.1,
	}

	first, err := service.Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.Data) != 2 {
		t.Fatalf("expected 2 cached trajectories, got %d", len(cache.Data))
	}

	// Segunda corrida: mismas trayectorias vía cache.
	second, err := service.Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cache hit should not change results")
	}
}

func TestSimulate_InvalidInputs(t *testing.T) {

	service := newTestSimulationService(t, repository.NewMockCache())

	cases := []struct {
		name  string
		input domain.SimulationInput
	}{
		{"zero variations", domain.SimulationInput{Variations: 0, CurrentSemester: 1, CurrentCGPA: 3.0}},
		{"too many variations", domain.SimulationInput{Variations: MaxVariationsPerPath + 1, CurrentSemester: 1, CurrentCGPA: 3.0}},
		{"semester too low", domain.SimulationInput{Variations: 1, CurrentSemester: 0, CurrentCGPA: 3.0}},
		{"semester too high", domain.SimulationInput{Variations: 1, CurrentSemester: 11, CurrentCGPA: 3.0}},
		{"cgpa out of scale", domain.SimulationInput{Variations: 1, CurrentSemester: 1, CurrentCGPA: 4.2}},
		{"unknown path", domain.SimulationInput{Paths: []string{"Time Traveler"}, Variations: 1, CurrentSemester: 1, CurrentCGPA: 3.0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Simulate(tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
