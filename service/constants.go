package service

const (
	MaxScenariosPerRequest = 20     // máximo de escenarios por request
	MaxTermsPerScenario    = 40     // carreras realistas: decenas de términos
	MaxCreditHoursPerTerm  = 60.0   // carga máxima por término
	MaxTotalCreditHours    = 1000.0 // horas crédito acumuladas máximas

	MaxVariationsPerPath = 50
	MinSemester          = 1
	MaxSemester          = 10
	PlanHorizonSemesters = 10 // último semestre del plan de estudios

	// Los paths simulados nunca caen por debajo de 2.0.
	PathFloor = 2.0

	SeedBase = 42 // base para las semillas deterministas por variación

	DeansListLine = 3.6
	ProbationLine = 2.0
)
