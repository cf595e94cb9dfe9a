package repository

import "cgpa-agent/domain"

// ProjectionRepository guarda resultados de proyecciones calculadas.
type ProjectionRepository interface {
	Save(input domain.ProjectionInput, result domain.ProjectionResult) error
}
