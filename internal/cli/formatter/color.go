package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngimenez/opoplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders text in the bold foreground style.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// BufferColor returns the lipgloss style for a buffer or slack tier.
func BufferColor(status domain.BufferStatus) lipgloss.Style {
	switch status {
	case domain.BufferGood:
		return StyleGreen
	case domain.BufferEdge:
		return StyleYellow
	case domain.BufferWarning:
		return StyleRed
	default:
		return StyleDim
	}
}

// BufferIndicator returns a colored tier indicator such as "● GOOD".
func BufferIndicator(status domain.BufferStatus) string {
	switch status {
	case domain.BufferGood:
		return StyleGreen.Render("● GOOD")
	case domain.BufferEdge:
		return StyleYellow.Render("● EDGE")
	case domain.BufferWarning:
		return StyleRed.Render("● WARNING")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StreamColor returns the lipgloss style for an allocation stream.
func StreamColor(stream domain.Stream) lipgloss.Style {
	switch stream {
	case domain.StreamTheory:
		return StyleBlue
	case domain.StreamCases:
		return StylePurple
	case domain.StreamProgramming:
		return StyleAqua
	default:
		return StyleDim
	}
}

// ActivityBadge returns a colored short label for an activity tag.
func ActivityBadge(a domain.Activity) string {
	style := StreamColor(domain.StreamOf(a))
	switch a {
	case domain.ActivityStudyTheme:
		return style.Render("Study")
	case domain.ActivityReview:
		return style.Render("Review")
	case domain.ActivityPodcast:
		return style.Render("Podcast")
	case domain.ActivityFlashcard:
		return style.Render("Flashcards")
	case domain.ActivityQuiz:
		return style.Render("Quiz")
	case domain.ActivityCasePractice:
		return style.Render("Case practice")
	case domain.ActivityCaseMock:
		return style.Render("Case mock")
	case domain.ActivityProgramming:
		return style.Render("Programming")
	default:
		return StyleDim.Render(string(a))
	}
}
