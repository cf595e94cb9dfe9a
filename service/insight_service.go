package service

import (
	"fmt"
	"math"
	"sort"

	"cgpa-agent/domain"
)

// Etiquetas de categoría por banda de CGPA.
const (
	CategoryVeryLow        = "🔴 Very Low"
	CategoryBelowThree     = "🟠 Below 3.0"
	CategorySafeZone       = "🟡 Safe Zone"
	CategoryStrong         = "🟢 Strong"
	CategoryDeansListRange = "🔵 Dean's List Range"
	CategoryNearPerfection = "💎 Near Perfection"
)

type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

// Categorize assigns a banded label based on the CGPA range.
func (s *InsightService) Categorize(cgpa float64) string {
	switch {
	case cgpa < 2.0:
		return CategoryVeryLow
	case cgpa < 3.0:
		return CategoryBelowThree
	case cgpa < 3.5:
		return CategorySafeZone
	case cgpa < 3.6:
		return CategoryStrong
	case cgpa < 3.8:
		return CategoryDeansListRange
	default:
		return CategoryNearPerfection
	}
}

// Advice returns the recruiter-style tip for a final CGPA.
func (s *InsightService) Advice(cgpa float64) string {
	switch {
	case cgpa < 3.0:
		return "Below 3.0: Could face interview filters. Tip: Boost fundamentals + real-world projects."
	case cgpa < 3.5:
		return "3.0-3.5: Safe for many roles. Tip: Strong projects/internships can stand out."
	case cgpa < 3.6:
		return "3.5-3.6: You stand out. Tip: Aim for advanced courses or certifications."
	case cgpa < 3.8:
		return "3.6-3.8: Dean's List territory. Tip: Leadership roles, hackathons, or research."
	default:
		return "3.8-4.0: Near perfection! Tip: Expand to open-source or specialized R&D."
	}
}

// Summarize returns extended statistics over a set of final CGPA values.
// Returns nil when there are no values.
func (s *InsightService) Summarize(finals []float64) *domain.SummaryStats {
	n := len(finals)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, finals)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	if n > 1 {
		for _, v := range sorted {
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(n - 1) // varianza muestral
	}
	std := math.Sqrt(variance)

	// Intervalo de confianza 95% para la media (aproximación normal).
	stdErr := std / math.Sqrt(float64(n))

	return &domain.SummaryStats{
		Count:    n,
		Mean:     mean,
		Median:   percentile(sorted, 50),
		Std:      std,
		Variance: variance,
		Min:      sorted[0],
		Max:      sorted[n-1],
		P25:      percentile(sorted, 25),
		P75:      percentile(sorted, 75),
		CILower:  mean - 1.96*stdErr,
		CIUpper:  mean + 1.96*stdErr,
	}
}

// CategoryCounts returns how many final CGPAs fall into each category.
func (s *InsightService) CategoryCounts(finals []float64) map[string]int {
	counts := map[string]int{
		CategoryVeryLow:        0,
		CategoryBelowThree:     0,
		CategorySafeZone:       0,
		CategoryStrong:         0,
		CategoryDeansListRange: 0,
		CategoryNearPerfection: 0,
	}
	for _, v := range finals {
		counts[s.Categorize(v)]++
	}
	return counts
}

// Insights labels every value and attaches the aggregate statistics.
func (s *InsightService) Insights(input domain.InsightsInput) (domain.InsightsResult, error) {
	if len(input.FinalCGPAs) == 0 {
		return domain.InsightsResult{}, fmt.Errorf("%w: no se proporcionaron valores de CGPA", ErrInvalidInput)
	}

	items := make([]domain.CGPAInsight, 0, len(input.FinalCGPAs))
	for _, v := range input.FinalCGPAs {
		items = append(items, domain.CGPAInsight{
			CGPA:     v,
			Category: s.Categorize(v),
			Advice:   s.Advice(v),
		})
	}

	return domain.InsightsResult{
		Items:          items,
		Stats:          s.Summarize(input.FinalCGPAs),
		CategoryCounts: s.CategoryCounts(input.FinalCGPAs),
	}, nil
}

// percentile interpola linealmente sobre una slice ya ordenada.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	idx := p / 100 * float64(n-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
