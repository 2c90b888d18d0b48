package domain

// Activity identifies one kind of study block.
type Activity string

const (
	ActivityStudyTheme   Activity = "STUDY_THEME"
	ActivityReview       Activity = "REVIEW"
	ActivityPodcast      Activity = "PODCAST"
	ActivityFlashcard    Activity = "FLASHCARD"
	ActivityQuiz         Activity = "QUIZ"
	ActivityCasePractice Activity = "CASE_PRACTICE"
	ActivityCaseMock     Activity = "CASE_MOCK"
	ActivityProgramming  Activity = "PROGRAMMING_BLOCK"
)

// ValidActivities is the canonical closed set of activity tags.
var ValidActivities = map[string]bool{
	"STUDY_THEME": true, "REVIEW": true, "PODCAST": true,
	"FLASHCARD": true, "QUIZ": true, "CASE_PRACTICE": true,
	"CASE_MOCK": true, "PROGRAMMING_BLOCK": true,
}

// Stream is a top-level allocation bucket with a 50/30/20 target split.
type Stream string

const (
	StreamTheory      Stream = "theory"
	StreamCases       Stream = "cases"
	StreamProgramming Stream = "programming"
)

// StreamOf maps an activity to its stream.
func StreamOf(a Activity) Stream {
	switch a {
	case ActivityCasePractice, ActivityCaseMock:
		return StreamCases
	case ActivityProgramming:
		return StreamProgramming
	default:
		return StreamTheory
	}
}

// Phase tags a block with its position in the study methodology.
type Phase string

const (
	PhaseContext    Phase = "P1_CONTEXT"
	PhaseDepth      Phase = "P2_DEPTH"
	PhaseEvalReview Phase = "P3_EVAL_REVIEW"
	PhasePractice   Phase = "P4_PRACTICE"
)

// AllPhases lists phases in methodology order.
var AllPhases = []Phase{PhaseContext, PhaseDepth, PhaseEvalReview, PhasePractice}

// PhaseOf maps an activity to its fixed phase tag.
func PhaseOf(a Activity) Phase {
	switch a {
	case ActivityStudyTheme, ActivityPodcast:
		return PhaseDepth
	case ActivityReview, ActivityFlashcard, ActivityQuiz:
		return PhaseEvalReview
	default:
		return PhasePractice
	}
}

// BlockType is the presentation-level category of a block.
type BlockType string

const (
	TypeNewContent BlockType = "new_content"
	TypeReview     BlockType = "review"
	TypeRecap      BlockType = "recap"
	TypeQuiz       BlockType = "quiz"
	TypePractice   BlockType = "practice"
	TypeEvaluation BlockType = "evaluation"
)

// BlockFormat is the presentation-level medium of a block.
type BlockFormat string

const (
	FormatRawContent BlockFormat = "raw_content"
	FormatFlashcards BlockFormat = "flashcards"
	FormatAudio      BlockFormat = "audio"
	FormatQuiz       BlockFormat = "quiz"
)

// TypeOf maps an activity to its presentation type.
func TypeOf(a Activity) BlockType {
	switch a {
	case ActivityStudyTheme, ActivityPodcast:
		return TypeNewContent
	case ActivityReview:
		return TypeReview
	case ActivityFlashcard:
		return TypeRecap
	case ActivityQuiz:
		return TypeQuiz
	case ActivityCaseMock:
		return TypeEvaluation
	default:
		return TypePractice
	}
}

// FormatOf maps an activity to its presentation format.
func FormatOf(a Activity) BlockFormat {
	switch a {
	case ActivityStudyTheme, ActivityProgramming:
		return FormatRawContent
	case ActivityReview, ActivityFlashcard:
		return FormatFlashcards
	case ActivityPodcast:
		return FormatAudio
	default:
		return FormatQuiz
	}
}

// Stage is the exam track the student prepares for.
type Stage string

const (
	StageInfantil Stage = "Infantil"
	StagePrimaria Stage = "Primaria"
)

// ValidStages is the canonical set of accepted stage strings.
var ValidStages = map[string]bool{
	"Infantil": true, "Primaria": true,
}

// ValidThemeCounts is the canonical set of accepted curriculum sizes.
var ValidThemeCounts = map[int]bool{15: true, 20: true, 25: true}

// StudentType distinguishes first-time candidates from repeaters.
type StudentType string

const (
	StudentNew    StudentType = "new"
	StudentRepeat StudentType = "repeat"
)

// BufferStatus collapses capacity or slack headroom into three tiers.
type BufferStatus string

const (
	BufferGood    BufferStatus = "good"
	BufferEdge    BufferStatus = "edge"
	BufferWarning BufferStatus = "warning"
)

// EventKind identifies a feedback event variant.
type EventKind string

const (
	EventQuizResult      EventKind = "QUIZ_RESULT"
	EventBlockCompleted  EventKind = "BLOCK_COMPLETED"
	EventSessionFeedback EventKind = "SESSION_FEEDBACK"
)

// ValidEventKinds is the canonical set of accepted event kind strings.
var ValidEventKinds = map[string]bool{
	"QUIZ_RESULT": true, "BLOCK_COMPLETED": true, "SESSION_FEEDBACK": true,
}

// Feel is the student's reaction to a session's block length.
type Feel string

const (
	FeelTooMuch Feel = "too_much"
	FeelOK      Feel = "ok"
	FeelMore    Feel = "more"
)

// ValidFeels is the canonical set of accepted session-feedback feels.
var ValidFeels = map[string]bool{
	"too_much": true, "ok": true, "more": true,
}
