package domain

// AcademicState representa el punto de partida académico del estudiante.
type AcademicState struct {
	CreditHours float64
	CGPA        float64
}

// GradePoints returns the total grade points accumulated so far.
func (s AcademicState) GradePoints() float64 {
	return s.CreditHours * s.CGPA
}

// FutureTerm is one hypothetical future term: its GPA and credit load.
type FutureTerm struct {
	GPA         float64
	CreditHours float64
}

// ProjectionScenario is a hypothesized sequence of future terms.
type ProjectionScenario struct {
	Name  string
	Terms []FutureTerm
}

type ProjectionInput struct {
	Initial   AcademicState
	Scenarios []ProjectionScenario
}

// TrajectoryPoint es un punto derivado de la trayectoria, nunca se edita directo.
type TrajectoryPoint struct {
	Term        int
	CreditHours float64
	CGPA        float64
}

// ScenarioTrajectory carries either the projected points for a scenario or
// the validation error that rejected it. One bad scenario never aborts its
// siblings.
type ScenarioTrajectory struct {
	Scenario string
	Points   []TrajectoryPoint `json:",omitempty"`
	Error    string            `json:",omitempty"`
}

type ProjectionResult struct {
	Trajectories []ScenarioTrajectory
	Commentary   string `json:",omitempty"`
}

// PresetInput describes a built-in scenario preset request.
type PresetInput struct {
	Preset         string // "maintain", "improve", "decline"
	CurrentCGPA    float64
	RemainingTerms int
	Step           float64
	CreditHours    float64 // carga de créditos por término
}
