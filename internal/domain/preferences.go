package domain

// durationBounds clamp user adjustments to an activity's block duration.
type durationBounds struct {
	Min, Max int
}

var preferenceBounds = map[Activity]durationBounds{
	ActivityStudyTheme:   {Min: 30, Max: 90},
	ActivityReview:       {Min: 15, Max: 60},
	ActivityPodcast:      {Min: 30, Max: 90},
	ActivityFlashcard:    {Min: 15, Max: 60},
	ActivityQuiz:         {Min: 15, Max: 45},
	ActivityCasePractice: {Min: 30, Max: 90},
	ActivityCaseMock:     {Min: 30, Max: 90},
	ActivityProgramming:  {Min: 30, Max: 90},
}

// Preferences maps each activity to its target block duration in minutes.
type Preferences map[Activity]int

// DefaultPreferences returns the starting target durations.
func DefaultPreferences() Preferences {
	return Preferences{
		ActivityStudyTheme:   60,
		ActivityReview:       30,
		ActivityPodcast:      60,
		ActivityFlashcard:    30,
		ActivityQuiz:         15,
		ActivityCasePractice: 60,
		ActivityCaseMock:     60,
		ActivityProgramming:  60,
	}
}

// Target returns the preferred block duration for a, falling back to the
// default when the map has no entry.
func (p Preferences) Target(a Activity) int {
	if v, ok := p[a]; ok {
		return v
	}
	return DefaultPreferences()[a]
}

// Adjust shifts a's target by delta minutes and clamps into the activity's
// bounds. Unknown activities are ignored.
func (p Preferences) Adjust(a Activity, delta int) {
	b, ok := preferenceBounds[a]
	if !ok {
		return
	}
	v := p.Target(a) + delta
	if v < b.Min {
		v = b.Min
	}
	if v > b.Max {
		v = b.Max
	}
	p[a] = v
}

// Clone copies the preference map.
func (p Preferences) Clone() Preferences {
	out := make(Preferences, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
