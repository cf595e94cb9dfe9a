package domain

// GradeScale define los límites válidos de la escala de calificaciones.
type GradeScale struct {
	Min float64
	Max float64
}

// DefaultScale is the common 0.0 - 4.0 grading scale.
func DefaultScale() GradeScale {
	return GradeScale{Min: 0.0, Max: 4.0}
}

// Contains reports whether a GPA value lies within the scale bounds.
func (g GradeScale) Contains(v float64) bool {
	return v >= g.Min && v <= g.Max
}

// Clamp limits a value to the scale bounds.
func (g GradeScale) Clamp(v float64) float64 {
	if v < g.Min {
		return g.Min
	}
	if v > g.Max {
		return g.Max
	}
	return v
}
