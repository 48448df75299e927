// Package tutor explains git concepts at a depth matched to the user's
// experience level and quizzes novices to reinforce what they just saw.
package tutor

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/gyongyosigabor/gghelper/catalog"
)

// Concept identifies a git idea the tutor can explain.
type Concept string

const (
	ConceptStaging         Concept = "git_add"
	ConceptCommit          Concept = "git_commit"
	ConceptPush            Concept = "git_push"
	ConceptPullRebase      Concept = "git_pull_rebase"
	ConceptActionsConflict Concept = "github_actions_conflict"
	ConceptMergeVsRebase   Concept = "merge_vs_rebase"
)

// explanations holds one line per concept, locale and level. Experts
// have no entries on purpose.
var explanations = map[Concept]map[catalog.Locale]map[Level]string{
	ConceptStaging: {
		catalog.LocaleHungarian: {
			LevelNovice:       "📚 A 'git add .' parancs hozzáadja az ÖSSZES változást a 'staging area'-hoz.",
			LevelIntermediate: "📦 Staging: változások előkészítése commitolásra",
		},
		catalog.LocaleEnglish: {
			LevelNovice:       "📚 The 'git add .' command adds ALL changes to the 'staging area'.",
			LevelIntermediate: "📦 Staging: preparing changes for commit",
		},
	},
	ConceptCommit: {
		catalog.LocaleHungarian: {
			LevelNovice:       "💾 A commit egy pillanatkép a változásokról. Mindig írj értelmes üzenetet!",
			LevelIntermediate: "💾 Commit: változások rögzítése történetbe",
		},
		catalog.LocaleEnglish: {
			LevelNovice:       "💾 A commit is a snapshot of your changes. Always write meaningful messages!",
			LevelIntermediate: "💾 Commit: recording changes to history",
		},
	},
	ConceptPush: {
		catalog.LocaleHungarian: {
			LevelNovice:       "🚀 A push feltölti a commitjaidat a távoli szerverre (pl. GitHub).",
			LevelIntermediate: "🚀 Push: lokális commitok feltöltése távolira",
		},
		catalog.LocaleEnglish: {
			LevelNovice:       "🚀 Push uploads your commits to the remote server (e.g., GitHub).",
			LevelIntermediate: "🚀 Push: uploading local commits to remote",
		},
	},
	ConceptPullRebase: {
		catalog.LocaleHungarian: {
			LevelNovice:       "🔄 A 'git pull --rebase' letölti a távoli változásokat, majd újraalkalmazza a tiédet.",
			LevelIntermediate: "🔄 Rebase: újraalapozás a legfrissebb változásokra",
		},
		catalog.LocaleEnglish: {
			LevelNovice:       "🔄 'git pull --rebase' downloads remote changes, then reapplies yours on top.",
			LevelIntermediate: "🔄 Rebase: reapplying changes on newest base",
		},
	},
	ConceptActionsConflict: {
		catalog.LocaleHungarian: {
			LevelNovice:       "🤖 A GitHub Action is módosította a repót. Ezért kell először pull-olni!",
			LevelIntermediate: "🤖 GitHub Action módosított - szinkronizálás szükséges",
		},
		catalog.LocaleEnglish: {
			LevelNovice:       "🤖 GitHub Action also modified the repo. That's why we need to pull first!",
			LevelIntermediate: "🤖 GitHub Action modified - synchronization needed",
		},
	},
	ConceptMergeVsRebase: {
		catalog.LocaleHungarian: {
			LevelNovice:       "🔀 Merge vs Rebase: merge létrehoz egy új commitot, rebase átrendezi a történetet",
			LevelIntermediate: "🔀 Merge: új commit, Rebase: történet átrendezése",
		},
		catalog.LocaleEnglish: {
			LevelNovice:       "🔀 Merge vs Rebase: merge creates new commit, rebase reorders history",
			LevelIntermediate: "🔀 Merge: new commit, Rebase: history reordering",
		},
	},
}

// tipScenario links a concept to the tip pool shown right under its
// explanation.
var tipScenario = map[Concept]string{
	ConceptActionsConflict: ScenarioGitHubActions,
	ConceptMergeVsRebase:   ScenarioConflictResolution,
	ConceptPush:            ScenarioMultiUserConflict,
}

// Tutor writes explanations for one workflow run. Each concept is
// explained at most once; the count of explanations drives the quiz
// cadence.
type Tutor struct {
	out   io.Writer
	msgs  *catalog.Catalog
	level Level
	rng   *rand.Rand
	given []Concept
}

// New creates a tutor writing to out. A nil rng makes tip selection
// deterministic.
func New(out io.Writer, msgs *catalog.Catalog, level Level, rng *rand.Rand) *Tutor {
	return &Tutor{out: out, msgs: msgs, level: level, rng: rng}
}

// Level returns the level the tutor was created with.
func (t *Tutor) Level() Level {
	return t.level
}

// Explain prints a one-line explanation for the concept, at most once
// per run, followed by a related tip when one exists. It returns the
// tip scenario that was shown so the caller can record it, or empty
// when nothing was printed.
func (t *Tutor) Explain(concept Concept) string {
	if t.level == LevelExpert {
		return ""
	}
	text := explanations[concept][t.msgs.Locale()][t.level]
	if text == "" || t.explained(concept) {
		return ""
	}

	fmt.Fprintf(t.out, "\n%s\n", text)
	t.given = append(t.given, concept)

	scenario := tipScenario[concept]
	if scenario == "" {
		return ""
	}
	tip := Tip(scenario, t.msgs.Locale(), t.rng)
	if tip == "" {
		return ""
	}
	fmt.Fprintf(t.out, "   %s\n", tip)
	return scenario
}

func (t *Tutor) explained(concept Concept) bool {
	for _, c := range t.given {
		if c == concept {
			return true
		}
	}
	return false
}
