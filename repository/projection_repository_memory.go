package repository

import "cgpa-agent/domain"

// ProjectionRepositoryMemory is an in-memory implementation of ProjectionRepository.
type ProjectionRepositoryMemory struct {
	data []domain.ProjectionResult
}

// NewProjectionRepositoryMemory creates a new in-memory projection repository.
func NewProjectionRepositoryMemory() *ProjectionRepositoryMemory {
	return &ProjectionRepositoryMemory{
		data: []domain.ProjectionResult{},
	}
}

// Save stores the projection result in memory.
func (r *ProjectionRepositoryMemory) Save(
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) error {
	r.data = append(r.data, result)
	return nil
}
