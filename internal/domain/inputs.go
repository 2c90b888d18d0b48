package domain

// FormInputs is the user-provided planning request, immutable per run.
type FormInputs struct {
	// ExamDate is an ISO YYYY-MM-DD calendar day.
	ExamDate string

	// AvailabilityHours holds weekly availability in hours,
	// index 0 = Monday .. 6 = Sunday. Fractional hours are allowed.
	AvailabilityHours [7]float64

	PresentedBefore bool
	AlreadyStudying bool

	Region string
	Stage  Stage

	// ThemeCount is the curriculum size; one of 15, 20, 25. Nil means 20.
	ThemeCount *int

	// PlanProgramming controls whether the programming stream is planned.
	// Nil means true.
	PlanProgramming *bool

	StudentType *StudentType
}

// UnitsCount resolves the effective curriculum size.
func (f FormInputs) UnitsCount() int {
	return IntFromPtrWithDefault(UnitDefaultCount, f.ThemeCount)
}

// WantsProgramming resolves the programming-stream flag.
func (f FormInputs) WantsProgramming() bool {
	return BoolFromPtrWithDefault(true, f.PlanProgramming)
}
