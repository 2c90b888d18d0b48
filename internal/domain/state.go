package domain

import "fmt"

// UnitKey names curriculum unit k the way plans and feedback refer to it.
func UnitKey(k int) string {
	return fmt.Sprintf("Unidad %d", k)
}

// ActivityMinutes is a per-theory-activity minute ledger.
type ActivityMinutes struct {
	StudyTheme int
	Review     int
	Podcast    int
	Flashcard  int
	Quiz       int
}

// Total sums the ledger across activities.
func (m ActivityMinutes) Total() int {
	return m.StudyTheme + m.Review + m.Podcast + m.Flashcard + m.Quiz
}

// UnitLedger tracks required and completed minutes for one curriculum unit.
// Invariant: each Done field never exceeds its Required counterpart, and
// Required only grows (via feedback).
type UnitLedger struct {
	Unit     string
	Required ActivityMinutes
	Done     ActivityMinutes
}

// NewUnitLedger builds the default-envelope ledger for unit k.
func NewUnitLedger(k int) UnitLedger {
	return UnitLedger{
		Unit: UnitKey(k),
		Required: ActivityMinutes{
			StudyTheme: StudyThemeMinutes,
			Review:     ReviewMinutes,
			Podcast:    PodcastMinutes,
			Flashcard:  FlashcardMinutes,
			Quiz:       QuizMaxMinutes,
		},
	}
}

// GlobalLedger tracks the cases and programming streams, which are not
// attributed to curriculum units.
type GlobalLedger struct {
	CasesRequired       int
	CasesDone           int
	ProgrammingRequired int
	ProgrammingDone     int
}

// SlackInfo summarizes headroom between future capacity and remaining work.
type SlackInfo struct {
	EffectiveCapacityFuture int
	RequiredMinutesFuture   int
	SlackMinutes            int
	SlackRatio              float64
	Status                  BufferStatus
}

// StateMeta carries provenance for a StudentState snapshot.
type StateMeta struct {
	Version   int
	CreatedAt string
	TodayISO  string
	ExamDate  string
}

// StudentState is the full per-student planning state. It is created by
// deriving from inputs and mutated only by folding feedback events, which
// returns a new value; callers never share-mutate a state.
type StudentState struct {
	Meta        StateMeta
	Units       []UnitLedger
	Global      GlobalLedger
	Slack       SlackInfo
	Preferences Preferences
}

// UnitIndex returns the position of the named unit, or -1 when unknown.
func (s *StudentState) UnitIndex(unit string) int {
	for i := range s.Units {
		if s.Units[i].Unit == unit {
			return i
		}
	}
	return -1
}

// TotalRequired sums required minutes across units and the global ledger.
func (s *StudentState) TotalRequired() int {
	total := s.Global.CasesRequired + s.Global.ProgrammingRequired
	for i := range s.Units {
		total += s.Units[i].Required.Total()
	}
	return total
}

// TotalDone sums completed minutes across units and the global ledger.
func (s *StudentState) TotalDone() int {
	total := s.Global.CasesDone + s.Global.ProgrammingDone
	for i := range s.Units {
		total += s.Units[i].Done.Total()
	}
	return total
}

// Clone deep-copies the state so feedback folds never alias the input.
func (s StudentState) Clone() StudentState {
	out := s
	out.Units = make([]UnitLedger, len(s.Units))
	copy(out.Units, s.Units)
	out.Preferences = s.Preferences.Clone()
	return out
}
