package tutor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gyongyosigabor/gghelper/catalog"
)

// Quiz is a three-option multiple-choice question.
type Quiz struct {
	Question    string
	Options     []string
	Correct     int // zero-based index into Options
	Explanation string
}

// ConflictQuiz returns the question asked after an integration conflict.
func ConflictQuiz(locale catalog.Locale) Quiz {
	if locale == catalog.LocaleHungarian {
		return Quiz{
			Question:    "Mi az első lépés konfliktus feloldásakor?",
			Options:     []string{"git push --force", "git status", "git commit --amend"},
			Correct:     1,
			Explanation: "Először nézd meg, mely fájlokban van konfliktus: git status",
		}
	}
	return Quiz{
		Question:    "What's the first step in conflict resolution?",
		Options:     []string{"git push --force", "git status", "git commit --amend"},
		Correct:     1,
		Explanation: "First check which files have conflicts: git status",
	}
}

// ShouldQuiz reports whether the cadence allows a quiz right now:
// novices only, and only on every third explanation.
func (t *Tutor) ShouldQuiz() bool {
	return t.level == LevelNovice && len(t.given)%3 == 0
}

// AskQuiz poses q when the cadence allows it, reading one answer line
// from in. A quiz is reinforcement, never a gate: any answer, skip or
// EOF lets the workflow continue.
func (t *Tutor) AskQuiz(q Quiz, in io.Reader) {
	if !t.ShouldQuiz() {
		return
	}

	fmt.Fprintf(t.out, "\n%s\n", t.msgs.Getf(catalog.MsgQuizHeader, q.Question))
	for i, option := range q.Options {
		fmt.Fprintf(t.out, "  %d. %s\n", i+1, option)
	}
	fmt.Fprint(t.out, t.msgs.Get(catalog.MsgQuizPrompt))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return
	}
	answer := strings.TrimSpace(line)

	n, convErr := strconv.Atoi(answer)
	switch {
	case convErr == nil && n >= 1 && n <= len(q.Options):
		if n == q.Correct+1 {
			fmt.Fprintln(t.out, t.msgs.Get(catalog.MsgQuizCorrect))
		} else {
			fmt.Fprintln(t.out, t.msgs.Getf(catalog.MsgQuizWrong, q.Explanation))
		}
	case strings.EqualFold(answer, "skip"):
		// Skipping is silent.
	default:
		fmt.Fprintln(t.out, t.msgs.Getf(catalog.MsgQuizReveal, q.Correct+1, q.Explanation))
	}
}
