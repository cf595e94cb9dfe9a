package service

import (
	"fmt"

	"cgpa-agent/domain"
)

type PresetService struct {
	scale domain.GradeScale
}

func NewPresetService(scale domain.GradeScale) *PresetService {
	return &PresetService{scale: scale}
}

// Generate builds a ProjectionScenario from a built-in preset. Generated
// GPAs are clamped to the grade scale instead of rejected: a preset must
// never produce an out-of-range scenario.
func (s *PresetService) Generate(
	input domain.PresetInput,
) (domain.ProjectionScenario, error) {

	presets := map[string]bool{
		"maintain": true,
		"improve":  true,
		"decline":  true,
	}
	if !presets[input.Preset] {
		return domain.ProjectionScenario{}, fmt.Errorf("%w: preset desconocido %q", ErrInvalidInput, input.Preset)
	}

	if !s.scale.Contains(input.CurrentCGPA) {
		return domain.ProjectionScenario{}, fmt.Errorf("%w: CGPA %.2f fuera de la escala %.1f-%.1f",
			ErrInvalidInput, input.CurrentCGPA, s.scale.Min, s.scale.Max)
	}
	if input.RemainingTerms <= 0 || input.RemainingTerms > MaxTermsPerScenario {
		return domain.ProjectionScenario{}, fmt.Errorf("%w: número de términos restantes inválido", ErrInvalidInput)
	}
	if input.CreditHours <= 0 || input.CreditHours > MaxCreditHoursPerTerm {
		return domain.ProjectionScenario{}, fmt.Errorf("%w: horas crédito por término inválidas", ErrInvalidInput)
	}
	if input.Step < 0 {
		return domain.ProjectionScenario{}, fmt.Errorf("%w: paso negativo", ErrInvalidInput)
	}

	step := input.Step
	switch input.Preset {
	case "maintain":
		step = 0
	case "decline":
		step = -step
	}

	terms := make([]domain.FutureTerm, 0, input.RemainingTerms)
	for i := 1; i <= input.RemainingTerms; i++ {
		gpa := s.scale.Clamp(input.CurrentCGPA + step*float64(i))
		terms = append(terms, domain.FutureTerm{
			GPA:         gpa,
			CreditHours: input.CreditHours,
		})
	}

	return domain.ProjectionScenario{
		Name:  input.Preset,
		Terms: terms,
	}, nil
}
