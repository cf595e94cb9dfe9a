package domain

// Nombres de los paths de evolución del multiverso de CGPA.
const (
	PathBalancedGrowth       = "Balanced Growth"
	PathHighAchiever         = "High Achiever"
	PathDownfallRecovery     = "Downfall & Recovery"
	PathUpDown               = "Up & Down"
	PathPerfectionist        = "Perfectionist"
	PathConsistentImprove    = "Consistent Improve"
	PathChaotic              = "Chaotic"
	PathLateBloomer          = "Late Bloomer"
	PathSpikePlateau         = "Spike Plateau"
	PathSenioritis           = "Senioritis"
	PathNoStudy              = "No Study"
	PathBurnout              = "Burnout"
	PathTriumphOverAdversity = "Triumph Over Adversity"
)

// AllPaths returns every known evolution path, in presentation order.
func AllPaths() []string {
	return []string{
		PathBalancedGrowth, PathHighAchiever, PathDownfallRecovery, PathUpDown,
		PathPerfectionist, PathConsistentImprove, PathChaotic, PathLateBloomer,
		PathSpikePlateau, PathSenioritis, PathNoStudy,
		PathBurnout, PathTriumphOverAdversity,
	}
}

type SimulationInput struct {
	Paths           []string // vacío = todos los paths
	Variations      int
	CurrentSemester int
	CurrentCGPA     float64
}

// PathTrajectory is one simulated CGPA walk for a path variation.
type PathTrajectory struct {
	Path      string
	Variation int
	Semesters []int
	CGPAs     []float64
}

// FinalOutcome is the end point of one trajectory plus its insight labels.
type FinalOutcome struct {
	Path      string
	Variation int
	FinalCGPA float64
	Category  string
	Advice    string
}

// SummaryStats mirrors the extended statistical summary of final CGPA values.
type SummaryStats struct {
	Count    int
	Mean     float64
	Median   float64
	Std      float64
	Variance float64
	Min      float64
	Max      float64
	P25      float64
	P75      float64
	CILower  float64
	CIUpper  float64
}

type SimulationResult struct {
	Trajectories   []PathTrajectory
	Outcomes       []FinalOutcome
	Stats          *SummaryStats  `json:",omitempty"`
	CategoryCounts map[string]int `json:",omitempty"`
	Commentary     string         `json:",omitempty"` // Explicación generada por IA
}

// CGPAInsight labels a single CGPA value.
type CGPAInsight struct {
	CGPA     float64
	Category string
	Advice   string
}

type InsightsInput struct {
	FinalCGPAs []float64
}

type InsightsResult struct {
	Items          []CGPAInsight
	Stats          *SummaryStats  `json:",omitempty"`
	CategoryCounts map[string]int `json:",omitempty"`
}
