package domain

import (
	"fmt"
	"time"
)

// StudyBlock is one scheduled chunk of work inside a day.
type StudyBlock struct {
	ID              string
	Activity        Activity
	Unit            string // empty for cases; "Programación" for programming
	DurationMinutes int
	Phase           Phase
	Type            BlockType
	Format          BlockFormat
}

// BlockID builds the deterministic block identifier for a block emitted at
// position index within the day at dateISO.
func BlockID(dateISO string, index int, activity Activity, unit string) string {
	if unit == "" {
		unit = "NA"
	}
	return fmt.Sprintf("%s__%d__%s__%s", dateISO, index, activity, unit)
}

// DayPlan is one calendar day of the plan. Days outside the planning window
// or below the minimum block size carry an empty block list.
type DayPlan struct {
	Date    string // ISO YYYY-MM-DD
	Weekday int    // 0 = Sunday .. 6 = Saturday
	Hours   float64
	Blocks  []StudyBlock
}

// WeekSummary rolls one Monday-anchored week of days up for presentation.
type WeekSummary struct {
	StartDate   string // Monday of the week, ISO
	TotalHours  float64
	PhaseMinutes map[Phase]int
}

// PhaseDefinition describes one methodology phase for plan consumers.
type PhaseDefinition struct {
	Phase       Phase
	Title       string
	Description string
}

// WeeklyActual records what a completed planning week actually received.
type WeeklyActual struct {
	Week           int // 1-based
	TheoryMin      int
	CasesMin       int
	ProgrammingMin int
	// MissingStreams lists streams under the weekly floor while their
	// remaining budget was still positive.
	MissingStreams []Stream
}

// PlanDebug exposes generation internals for inspection and tests.
type PlanDebug struct {
	Capacity               PlanCapacity
	TheoryScheduledMin     int
	CasesScheduledMin      int
	ProgrammingScheduledMin int
	TotalScheduledMin      int
	WeeklyActuals          []WeeklyActual
	CasesStarvedWeeks      int
	ProgrammingStarvedWeeks int
}

// PlanMeta carries provenance for a generated plan.
type PlanMeta struct {
	GeneratedAt time.Time
	TodayISO    string
	ExamDate    string
	Region      string
	Stage       Stage
	TotalUnits  int
}

// Plan is the complete generated study plan. Immutable once returned.
type Plan struct {
	Meta         PlanMeta
	Phases       []PhaseDefinition
	Days         []DayPlan
	Weeks        []WeekSummary
	Explanations []string
	Debug        *PlanDebug
}
