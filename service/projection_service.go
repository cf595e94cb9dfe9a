package service

import (
	"fmt"
	"log"

	"cgpa-agent/domain"
	"cgpa-agent/repository"
)

type ProjectionService struct {
	repo  repository.ProjectionRepository
	ai    *AIService
	scale domain.GradeScale
}

// NewProjectionService creates a new ProjectionService with the given repository.
func NewProjectionService(repo repository.ProjectionRepository,
	scale domain.GradeScale,
) *ProjectionService {
	return &ProjectionService{repo: repo, ai: NewAIService(), scale: scale}
}

// Project computes one CGPA trajectory per scenario, seeded from the initial
// academic state. Scenarios are independent: an invalid scenario is reported
// inside its own ScenarioTrajectory and never aborts the siblings.
func (s *ProjectionService) Project(
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {

	// Validar el estado inicial
	if input.Initial.CreditHours < 0 {
		return domain.ProjectionResult{}, fmt.Errorf("%w: horas crédito negativas", ErrInvalidInput)
	}
	if input.Initial.CreditHours > MaxTotalCreditHours {
		return domain.ProjectionResult{}, fmt.Errorf("%w: horas crédito exceden el máximo de %.0f", ErrInvalidInput, MaxTotalCreditHours)
	}
	if !s.scale.Contains(input.Initial.CGPA) {
		return domain.ProjectionResult{}, fmt.Errorf("%w: CGPA %.2f fuera de la escala %.1f-%.1f",
			ErrInvalidInput, input.Initial.CGPA, s.scale.Min, s.scale.Max)
	}
	if len(input.Scenarios) == 0 {
		return domain.ProjectionResult{}, fmt.Errorf("%w: no se proporcionaron escenarios", ErrInvalidInput)
	}
	if len(input.Scenarios) > MaxScenariosPerRequest {
		return domain.ProjectionResult{}, fmt.Errorf("%w: número de escenarios excede el máximo de %d", ErrInvalidInput, MaxScenariosPerRequest)
	}

	trajectories := make([]domain.ScenarioTrajectory, 0, len(input.Scenarios))
	for i, scenario := range input.Scenarios {
		name := scenario.Name
		if name == "" {
			name = fmt.Sprintf("scenario %d", i+1)
		}

		points, err := s.ProjectScenario(input.Initial, scenario)
		if err != nil {
			trajectories = append(trajectories, domain.ScenarioTrajectory{
				Scenario: name,
				Error:    err.Error(),
			})
			continue
		}
		trajectories = append(trajectories, domain.ScenarioTrajectory{
			Scenario: name,
			Points:   points,
		})
	}

	result := domain.ProjectionResult{Trajectories: trajectories}
	result.Commentary = s.ai.GenerateProjectionCommentary(input.Initial, trajectories)

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save projection result: %v", err)
	}

	return result, nil
}

// ProjectScenario folds the scenario terms in order over the running
// grade-point and credit-hour totals and emits one TrajectoryPoint per term.
func (s *ProjectionService) ProjectScenario(
	initial domain.AcademicState,
	scenario domain.ProjectionScenario,
) ([]domain.TrajectoryPoint, error) {

	if len(scenario.Terms) == 0 {
		return nil, fmt.Errorf("%w: el escenario no tiene términos", ErrInvalidInput)
	}
	if len(scenario.Terms) > MaxTermsPerScenario {
		return nil, fmt.Errorf("%w: número de términos excede el máximo de %d", ErrInvalidInput, MaxTermsPerScenario)
	}

	totalHours := initial.CreditHours
	for _, term := range scenario.Terms {
		if term.CreditHours <= 0 {
			return nil, fmt.Errorf("%w: horas crédito del término deben ser positivas", ErrInvalidInput)
		}
		if term.CreditHours > MaxCreditHoursPerTerm {
			return nil, fmt.Errorf("%w: horas crédito del término exceden el máximo de %.0f", ErrInvalidInput, MaxCreditHoursPerTerm)
		}
		if !s.scale.Contains(term.GPA) {
			return nil, fmt.Errorf("%w: GPA %.2f fuera de la escala %.1f-%.1f",
				ErrInvalidInput, term.GPA, s.scale.Min, s.scale.Max)
		}
		totalHours += term.CreditHours
	}

	// Guardia de división: con términos validados es inalcanzable, pero una
	// división entre cero jamás debe llegar al cálculo.
	if totalHours <= 0 {
		return nil, ErrZeroCreditHours
	}

	gradePoints := initial.GradePoints()
	hours := initial.CreditHours

	points := make([]domain.TrajectoryPoint, 0, len(scenario.Terms))
	for i, term := range scenario.Terms {
		gradePoints += term.GPA * term.CreditHours
		hours += term.CreditHours

		points = append(points, domain.TrajectoryPoint{
			Term:        i + 1,
			CreditHours: hours,
			CGPA:        gradePoints / hours,
		})
	}

	return points, nil
}
