package tutor

import (
	"math/rand"

	"github.com/gyongyosigabor/gghelper/catalog"
)

// Tip scenario names. They are recorded in the progress file, so they
// stay stable across releases.
const (
	ScenarioMultiUserConflict  = "multi_user_conflict"
	ScenarioGitHubActions      = "github_actions"
	ScenarioBranchManagement   = "branch_management"
	ScenarioConflictResolution = "conflict_resolution"
)

var tips = map[string]map[catalog.Locale][]string{
	ScenarioMultiUserConflict: {
		catalog.LocaleHungarian: {
			"💡 TIPP: Ha több ember dolgozik egy repón, gyakrabban pull-olj!",
			"🧠 AJÁNLAT: Mielőtt pusholsz, mindig futtass `git fetch`-et",
			"⚡ TRÜKK: Használd a `git log --oneline --graph --all` parancsot a történet megjelenítésére",
		},
		catalog.LocaleEnglish: {
			"💡 TIP: When multiple people work on a repo, pull more frequently!",
			"🧠 ADVICE: Always run `git fetch` before pushing",
			"⚡ TRICK: Use `git log --oneline --graph --all` to visualize history",
		},
	},
	ScenarioGitHubActions: {
		catalog.LocaleHungarian: {
			"🤖 MEGJEGYZÉS: A GitHub Action automatikusan módosítja a repót",
			"⏰ TIMING: Dolgozz lokálisan, commitolj, majd futtasd a gghelper-t",
			"🔄 WORKFLOW: GitHub Action → változás → gghelper → push",
		},
		catalog.LocaleEnglish: {
			"🤖 NOTE: GitHub Action automatically modifies the repository",
			"⏰ TIMING: Work locally, commit, then run gghelper",
			"🔄 WORKFLOW: GitHub Action → changes → gghelper → push",
		},
	},
	ScenarioBranchManagement: {
		catalog.LocaleHungarian: {
			"🌿 STRATÉGIA: Használj feature brancheket új funkciókhoz",
			"🔀 MERGE: `git merge` vs `git rebase` - a rebase tisztább történetet ad",
			"🏷️ TAG: Fontos release-ekhez használj tag-eket",
		},
		catalog.LocaleEnglish: {
			"🌿 STRATEGY: Use feature branches for new features",
			"🔀 MERGE: `git merge` vs `git rebase` - rebase gives cleaner history",
			"🏷️ TAG: Use tags for important releases",
		},
	},
	ScenarioConflictResolution: {
		catalog.LocaleHungarian: {
			"⚔️ KONFLIKTUS: Két ember ugyanazt a sort módosította",
			"🔧 MEGOLDÁS: Nyisd meg a fájlt, nézd meg a <<<<<<< és >>>>>>> jeleket",
			"✅ JELÖLÉS: Konfliktus feloldása után `git add .`",
		},
		catalog.LocaleEnglish: {
			"⚔️ CONFLICT: Two people modified the same line",
			"🔧 SOLUTION: Open the file, look for <<<<<<< and >>>>>>> markers",
			"✅ MARKING: After resolving conflict, `git add .`",
		},
	},
}

// Tip returns a random tip for the scenario, empty when the scenario or
// locale has none. A nil rng picks the first tip.
func Tip(scenario string, locale catalog.Locale, rng *rand.Rand) string {
	pool := tips[scenario][locale]
	if len(pool) == 0 {
		return ""
	}
	if rng == nil {
		return pool[0]
	}
	return pool[rng.Intn(len(pool))]
}
