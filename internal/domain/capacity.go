package domain

// PlanCapacity maps calendar availability to planable minutes for one
// (inputs, today) pair. Derived once per generation.
type PlanCapacity struct {
	TotalWeeks             int
	EffectivePlanningWeeks int
	AvailableEffectiveMin  int
	UnitsCount             int
	TheoryPlannedMin       int
	CasesPlannedMin        int
	ProgrammingPlannedMin  int
	PlannedMin             int
	BufferMin              int
	BufferRatio            float64
	BufferStatus           BufferStatus
	DaysUntilExam          int
}
