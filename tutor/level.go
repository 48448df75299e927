package tutor

// Level controls how much guidance the tutor gives during a run.
type Level string

const (
	// LevelNovice gets step-by-step explanations, tips and quizzes.
	LevelNovice Level = "novice"
	// LevelIntermediate gets short one-line explanations.
	LevelIntermediate Level = "intermediate"
	// LevelExpert gets no explanations at all.
	LevelExpert Level = "expert"
)

// ParseLevel validates a level name from flags or the preference file.
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelNovice, LevelIntermediate, LevelExpert:
		return Level(s), true
	}
	return "", false
}

// DetectLevel maps the user's own commit count to an experience level.
// Heavy committers need no hand-holding.
func DetectLevel(commitCount int) Level {
	switch {
	case commitCount > 100:
		return LevelExpert
	case commitCount > 20:
		return LevelIntermediate
	default:
		return LevelNovice
	}
}
