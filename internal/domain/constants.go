package domain

// Curriculum envelope per unit, in minutes.
const (
	UnitDefaultCount  = 20
	StudyThemeMinutes = 240
	ReviewMinutes     = 60
	PodcastMinutes    = 60
	FlashcardMinutes  = 60
	QuizMaxMinutes    = 90

	// TheoryEnvelopeMinutes is the full per-unit theory workload:
	// 240 + 60 + 60 + 60 + 90.
	TheoryEnvelopeMinutes = 510
)

// Allocator gating thresholds, in minutes of cumulative STUDY_THEME.
const (
	StartNextUnitThreshold      = 120
	StudyThemeCompleteThreshold = 240
)

// Day-builder block bounds, in minutes.
const (
	MaxBlockDuration = 60
	MinBlockDuration = 15
)

// Weekly smoothing floor per stream, in minutes.
const WeeklyMinimumMinutes = 60

// Feedback tuning.
const (
	QuizFailThreshold   = 60
	ReviewBoostMinutes  = 30
	SessionFeedbackStep = 15
)

// ReserveWeeks is the tail window before the exam that receives no blocks.
const ReserveWeeks = 2

// CasePracticeShare is the fraction of planned case minutes spent on guided
// practice before mock exams take over.
const CasePracticeShare = 0.7

// ProgrammingUnitLabel attributes programming blocks in plan output.
const ProgrammingUnitLabel = "Programación"
