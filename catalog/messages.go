package catalog

// Message IDs. The workflow refers to these; the text lives only here.
const (
	MsgWelcome     ID = "welcome"
	MsgNoviceIntro ID = "novice_intro"

	MsgStepCheckRepo ID = "step_check_repo"
	MsgStepStage     ID = "step_stage"
	MsgStepCommit    ID = "step_commit"
	MsgStepRemote    ID = "step_remote"
	MsgStepReconcile ID = "step_reconcile"
	MsgStepPush      ID = "step_push"

	MsgResolveOnly ID = "resolve_only"
	MsgUsingMerge  ID = "using_merge"
	MsgUsingRebase ID = "using_rebase"
	MsgFetching    ID = "fetching"
	MsgClassifying ID = "classifying"

	MsgCaptureHeader       ID = "capture_header"
	MsgCaptureInstructions ID = "capture_instructions"
	MsgCaptureCancelled    ID = "capture_cancelled"
	MsgEmptyMessage        ID = "empty_message"
	MsgPreview             ID = "preview"
	MsgConfirmOptions      ID = "confirm_options"
	MsgGoodPractice        ID = "good_practice"
	MsgBtnYes              ID = "btn_yes"
	MsgBtnEdit             ID = "btn_edit"
	MsgBtnNo               ID = "btn_no"
	MsgEditTitle           ID = "edit_title"
	MsgEditHint            ID = "edit_hint"

	MsgNotARepository  ID = "not_a_repository"
	MsgNothingToCommit ID = "nothing_to_commit"
	MsgCommitted       ID = "committed"

	MsgSyncConfirm      ID = "sync_confirm"
	MsgSynced           ID = "synced"
	MsgDeclined         ID = "declined"
	MsgConflict         ID = "conflict"
	MsgConflictSteps    ID = "conflict_steps"
	MsgDiverged         ID = "diverged"
	MsgDivergedSteps    ID = "diverged_steps"
	MsgUpstreamMissing  ID = "upstream_missing"
	MsgUpstreamSetHint  ID = "upstream_set_hint"
	MsgUpstreamForced   ID = "upstream_forced"
	MsgPushFailed       ID = "push_failed"
	MsgPushFailedAdvice ID = "push_failed_advice"

	MsgCancelled   ID = "cancelled"
	MsgErrorPrefix ID = "error_prefix"
	MsgMilestone   ID = "milestone"

	MsgQuizHeader  ID = "quiz_header"
	MsgQuizPrompt  ID = "quiz_prompt"
	MsgQuizCorrect ID = "quiz_correct"
	MsgQuizWrong   ID = "quiz_wrong"
	MsgQuizReveal  ID = "quiz_reveal"

	MsgDryRunTitle          ID = "dry_run_title"
	MsgDryRunState          ID = "dry_run_state"
	MsgDryRunWouldStage     ID = "dry_run_would_stage"
	MsgDryRunWouldCommit    ID = "dry_run_would_commit"
	MsgDryRunWouldIntegrate ID = "dry_run_would_integrate"
	MsgDryRunWouldPush      ID = "dry_run_would_push"
	MsgDryRunManual         ID = "dry_run_manual"

	MsgLangSaved  ID = "lang_saved"
	MsgLevelSaved ID = "level_saved"

	MsgStatsTitle        ID = "stats_title"
	MsgStatsTotal        ID = "stats_total"
	MsgStatsLastUsed     ID = "stats_last_used"
	MsgStatsCommands     ID = "stats_commands"
	MsgStatsCommandEntry ID = "stats_command_entry"
	MsgStatsNextStep     ID = "stats_next_step"

	MsgHelpHeader      ID = "help_header"
	MsgHelpNoChanges   ID = "help_no_changes"
	MsgHelpBehind      ID = "help_behind"
	MsgHelpStats       ID = "help_stats"
	MsgHelpNextHeader  ID = "help_next_header"
	MsgHelpFirstSteps  ID = "help_first_steps"
	MsgHelpBasics      ID = "help_basics"
	MsgHelpAdvanced    ID = "help_advanced"
	MsgHelpExpert      ID = "help_expert"
	MsgHelpCommands    ID = "help_commands"
	MsgHelpResources   ID = "help_resources"
)

var messages = map[ID]map[Locale]string{
	MsgWelcome: {
		LocaleHungarian: "🎉 Üdv a gghelper-ben! (Szint: %s)",
		LocaleEnglish:   "🎉 Welcome to gghelper! (Level: %s)",
	},
	MsgNoviceIntro: {
		LocaleHungarian: "Ez a program segít megtanulni a Git használatát. Figyelj az útmutatásokra!",
		LocaleEnglish:   "This program helps you learn Git. Pay attention to the guidance!",
	},

	MsgStepCheckRepo: {
		LocaleHungarian: "1. 🔍 Mappa ellenőrzése...",
		LocaleEnglish:   "1. 🔍 Checking repository...",
	},
	MsgStepStage: {
		LocaleHungarian: "2. 📦 Változások hozzáadása...",
		LocaleEnglish:   "2. 📦 Adding changes...",
	},
	MsgStepCommit: {
		LocaleHungarian: "3. 💾 Commit készítése...",
		LocaleEnglish:   "3. 💾 Creating commit...",
	},
	MsgStepRemote: {
		LocaleHungarian: "4. 🌐 Távoli repo ellenőrzése...",
		LocaleEnglish:   "4. 🌐 Checking remote...",
	},
	MsgStepReconcile: {
		LocaleHungarian: "5. ⚙️  Konfliktusok kezelése...",
		LocaleEnglish:   "5. ⚙️  Handling conflicts...",
	},
	MsgStepPush: {
		LocaleHungarian: "6. 🚀 Push GitHubra...",
		LocaleEnglish:   "6. 🚀 Pushing to GitHub...",
	},

	MsgResolveOnly: {
		LocaleHungarian: "ℹ️  Csak szinkronizálás mód...",
		LocaleEnglish:   "ℹ️  Sync-only mode...",
	},
	MsgUsingMerge: {
		LocaleHungarian: "🔀 Biztonságos merge használata...",
		LocaleEnglish:   "🔀 Using safe merge...",
	},
	MsgUsingRebase: {
		LocaleHungarian: "🔄 Rebase használata...",
		LocaleEnglish:   "🔄 Using rebase...",
	},
	MsgFetching: {
		LocaleHungarian: "Letöltés a távoli repóból…",
		LocaleEnglish:   "Fetching from origin…",
	},
	MsgClassifying: {
		LocaleHungarian: "Szinkron állapot meghatározása…",
		LocaleEnglish:   "Determining sync state…",
	},

	MsgCaptureHeader: {
		LocaleHungarian: "✍️  COMMIT ÜZENET MEGADÁSA",
		LocaleEnglish:   "✍️  ENTER COMMIT MESSAGE",
	},
	MsgCaptureInstructions: {
		LocaleHungarian: "• Írd vagy másold be az üzenetet\n• Egy üres sor, majd Ctrl+D a befejezéshez\n• Ctrl+C a megszakításhoz",
		LocaleEnglish:   "• Type or paste your message\n• Empty line + Ctrl+D to finish\n• Ctrl+C to cancel",
	},
	MsgCaptureCancelled: {
		LocaleHungarian: "❌ Megszakítva",
		LocaleEnglish:   "❌ Cancelled",
	},
	MsgEmptyMessage: {
		LocaleHungarian: "❌ Üres üzenet!",
		LocaleEnglish:   "❌ Empty message!",
	},
	MsgPreview: {
		LocaleHungarian: "🔍 Előnézet (ezt fogom commitolni):",
		LocaleEnglish:   "🔍 Preview (this will be committed):",
	},
	MsgConfirmOptions: {
		LocaleHungarian: "Opciók: [i]gen / [e]dit / [n]em: ",
		LocaleEnglish:   "Options: [y]es / [e]dit / [n]o: ",
	},
	MsgGoodPractice: {
		LocaleHungarian: "💡 JÓ GYAKORLAT: Használj rövid, leíró commit üzeneteket!",
		LocaleEnglish:   "💡 GOOD PRACTICE: Use short, descriptive commit messages!",
	},
	MsgBtnYes: {
		LocaleHungarian: "Igen",
		LocaleEnglish:   "Yes",
	},
	MsgBtnEdit: {
		LocaleHungarian: "Edit",
		LocaleEnglish:   "Edit",
	},
	MsgBtnNo: {
		LocaleHungarian: "Nem",
		LocaleEnglish:   "No",
	},
	MsgEditTitle: {
		LocaleHungarian: "✏️  Üzenet szerkesztése:",
		LocaleEnglish:   "✏️  Edit message:",
	},
	MsgEditHint: {
		LocaleHungarian: "Enter: mentés / Esc: mégse",
		LocaleEnglish:   "Enter: save / Esc: cancel",
	},

	MsgNotARepository: {
		LocaleHungarian: "❌ Ez a mappa nem Git repó.\nFuttasd a 'git init' parancsot, vagy lépj be egy repó mappájába.",
		LocaleEnglish:   "❌ This directory is not a Git repository.\nRun 'git init' to create one, or move into a repository directory.",
	},
	MsgNothingToCommit: {
		LocaleHungarian: "📭 Nincs mit commitolni, a munkamappa tiszta.",
		LocaleEnglish:   "📭 Nothing to commit, the working tree is clean.",
	},
	MsgCommitted: {
		LocaleHungarian: "✅ Commit elkészült",
		LocaleEnglish:   "✅ Commit created",
	},

	MsgSyncConfirm: {
		LocaleHungarian: "A távoli ágon új commitok vannak. Lehúzzuk őket most?",
		LocaleEnglish:   "The remote branch has new commits. Pull them in now?",
	},
	MsgSynced: {
		LocaleHungarian: "✅ Szinkronizálva a távoli ággal",
		LocaleEnglish:   "✅ Synchronized with the remote branch",
	},
	MsgDeclined: {
		LocaleHungarian: "ℹ️  Push kihagyva: előbb húzd le a távoli változásokat, aztán futtasd újra a gghelper-t.",
		LocaleEnglish:   "ℹ️  Push skipped: pull the remote changes first, then run gghelper again.",
	},
	MsgConflict: {
		LocaleHungarian: "❌ Konfliktus! A tutor segít megoldani.",
		LocaleEnglish:   "❌ Conflict! Tutor will help resolve.",
	},
	MsgConflictSteps: {
		LocaleHungarian: "Kézi lépések:\n  1. git status  (nézd meg a konfliktusos fájlokat)\n  2. nyisd meg a fájlokat, oldd fel a <<<<<<< és >>>>>>> jeleket\n  3. git add .\n  4. git rebase --continue  (merge után: git commit)\n  5. futtasd újra a gghelper-t a pushhoz",
		LocaleEnglish:   "Manual steps:\n  1. git status  (see which files conflict)\n  2. open each file, resolve the <<<<<<< and >>>>>>> markers\n  3. git add .\n  4. git rebase --continue  (after a merge: git commit)\n  5. run gghelper again to push",
	},
	MsgDiverged: {
		LocaleHungarian: "⚠️  A lokális és a távoli történet szétvált.",
		LocaleEnglish:   "⚠️  The local and remote histories have diverged.",
	},
	MsgDivergedSteps: {
		LocaleHungarian: "Az automatikus szinkron itt nem biztonságos. Oldd meg kézzel:\n  1. git status\n  2. git pull --rebase origin %s  (vagy --no-rebase merge-hez)\n  3. oldd fel a konfliktusokat, majd git add .\n  4. git rebase --continue  (merge esetén: git commit)\n  5. futtasd újra a gghelper-t",
		LocaleEnglish:   "Automatic sync is not safe here. Resolve it by hand:\n  1. git status\n  2. git pull --rebase origin %s  (or --no-rebase for a merge)\n  3. resolve the conflicts, then git add .\n  4. git rebase --continue  (for a merge: git commit)\n  5. run gghelper again",
	},
	MsgUpstreamMissing: {
		LocaleHungarian: "⚠️  Nincs beállítva upstream ág, a távoli állapot nem ellenőrizhető.",
		LocaleEnglish:   "⚠️  No upstream branch is configured, the remote state cannot be checked.",
	},
	MsgUpstreamSetHint: {
		LocaleHungarian: "Állítsd be: git push -u origin %s\nVagy futtasd újra a --force kapcsolóval a push kikényszerítéséhez.",
		LocaleEnglish:   "Set one with: git push -u origin %s\nOr re-run with --force to push anyway.",
	},
	MsgUpstreamForced: {
		LocaleHungarian: "⚠️  Az upstream állapota ismeretlen, a --force miatt folytatom.",
		LocaleEnglish:   "⚠️  Upstream state unknown, continuing because --force was given.",
	},
	MsgPushFailed: {
		LocaleHungarian: "❌ A push nem sikerült.",
		LocaleEnglish:   "❌ Push failed.",
	},
	MsgPushFailedAdvice: {
		LocaleHungarian: "Közben változhatott a távoli ág. Futtasd a 'gghelper --resolve-only' parancsot a szinkronizáláshoz, majd próbáld újra.",
		LocaleEnglish:   "The remote may have changed in the meantime. Run 'gghelper --resolve-only' to synchronize, then try again.",
	},

	MsgCancelled: {
		LocaleHungarian: "⏹️  Megszakítva",
		LocaleEnglish:   "⏹️  Cancelled",
	},
	MsgErrorPrefix: {
		LocaleHungarian: "❌ Hiba:",
		LocaleEnglish:   "❌ Error:",
	},
	MsgMilestone: {
		LocaleHungarian: "🎯 Mérföldkő: %d alkalommal használtad a gghelper-t!",
		LocaleEnglish:   "🎯 Milestone: You've used gghelper %d times!",
	},

	MsgQuizHeader: {
		LocaleHungarian: "🧠 QUICK QUIZ: %s",
		LocaleEnglish:   "🧠 QUICK QUIZ: %s",
	},
	MsgQuizPrompt: {
		LocaleHungarian: "Válasz (1-3 vagy 'skip'): ",
		LocaleEnglish:   "Answer (1-3 or 'skip'): ",
	},
	MsgQuizCorrect: {
		LocaleHungarian: "✅ Helyes!",
		LocaleEnglish:   "✅ Correct!",
	},
	MsgQuizWrong: {
		LocaleHungarian: "❌ Majd legközelebb! %s",
		LocaleEnglish:   "❌ Maybe next time! %s",
	},
	MsgQuizReveal: {
		LocaleHungarian: "ℹ️  A helyes válasz: %d. %s",
		LocaleEnglish:   "ℹ️  The correct answer: %d. %s",
	},

	MsgDryRunTitle: {
		LocaleHungarian: "🔎 DRY RUN - semmi nem módosul",
		LocaleEnglish:   "🔎 DRY RUN - nothing will be changed",
	},
	MsgDryRunState: {
		LocaleHungarian: "Szinkron állapot: %s",
		LocaleEnglish:   "Sync state: %s",
	},
	MsgDryRunWouldStage: {
		LocaleHungarian: "• Hozzáadnám az összes változást (git add .)",
		LocaleEnglish:   "• Would stage all changes (git add .)",
	},
	MsgDryRunWouldCommit: {
		LocaleHungarian: "• Bekérném a commit üzenetet és commitolnék",
		LocaleEnglish:   "• Would ask for a commit message and commit",
	},
	MsgDryRunWouldIntegrate: {
		LocaleHungarian: "• Integrálnám a távoli változásokat (%s)",
		LocaleEnglish:   "• Would integrate remote changes via %s",
	},
	MsgDryRunWouldPush: {
		LocaleHungarian: "• Pusholnék a távoli repóba",
		LocaleEnglish:   "• Would push to the remote",
	},
	MsgDryRunManual: {
		LocaleHungarian: "• Push előtt kézi feloldásra lenne szükség",
		LocaleEnglish:   "• Manual resolution would be required before pushing",
	},

	MsgLangSaved: {
		LocaleHungarian: "✅ Nyelvi beállítás elmentve: %s",
		LocaleEnglish:   "✅ Language preference saved: %s",
	},
	MsgLevelSaved: {
		LocaleHungarian: "✅ Szint elmentve: %s",
		LocaleEnglish:   "✅ Level preference saved: %s",
	},

	MsgStatsTitle: {
		LocaleHungarian: "📊 GGHELPER STATISZTIKÁID",
		LocaleEnglish:   "📊 YOUR GGHELPER STATISTICS",
	},
	MsgStatsTotal: {
		LocaleHungarian: "Összes használat: %d",
		LocaleEnglish:   "Total uses: %d",
	},
	MsgStatsLastUsed: {
		LocaleHungarian: "Utoljára használva: %s",
		LocaleEnglish:   "Last used: %s",
	},
	MsgStatsCommands: {
		LocaleHungarian: "Leggyakoribb parancsok:",
		LocaleEnglish:   "Most used commands:",
	},
	MsgStatsCommandEntry: {
		LocaleHungarian: "  %s: %d alkalommal",
		LocaleEnglish:   "  %s: %d times",
	},
	MsgStatsNextStep: {
		LocaleHungarian: "🎯 Következő tanulási lépés: %s",
		LocaleEnglish:   "🎯 Next learning step: %s",
	},

	MsgHelpHeader: {
		LocaleHungarian: "🤔 HELYZETFÜGGŐ SEGÍTSÉG",
		LocaleEnglish:   "🤔 CONTEXTUAL HELP BASED ON YOUR SITUATION",
	},
	MsgHelpNoChanges: {
		LocaleHungarian: "📭 Nincs commitolatlan változás.\n   Módosíts valamit, aztán futtasd a 'gghelper'-t",
		LocaleEnglish:   "📭 No uncommitted changes detected.\n   Try making some changes first, then run 'gghelper'",
	},
	MsgHelpBehind: {
		LocaleHungarian: "🔄 A távoli repóban újabb változások vannak.\n   Először futtasd a 'gghelper --resolve-only' parancsot",
		LocaleEnglish:   "🔄 Remote repository has newer changes.\n   Use 'gghelper --resolve-only' to sync first",
	},
	MsgHelpStats: {
		LocaleHungarian: "📊 STATISZTIKA: %d alkalommal használtad",
		LocaleEnglish:   "📊 YOUR STATS: Used %d times",
	},
	MsgHelpNextHeader: {
		LocaleHungarian: "🎓 KÖVETKEZŐ TANULÁSI LÉPÉS:",
		LocaleEnglish:   "🎓 NEXT LEARNING STEP:",
	},
	MsgHelpFirstSteps: {
		LocaleHungarian: "   • Készítsd el az első commitodat a 'gghelper'-rel\n   • Ismerd meg a 'git add', 'git commit', 'git push' parancsokat",
		LocaleEnglish:   "   • Try making your first commit with 'gghelper'\n   • Learn about 'git add', 'git commit', 'git push'",
	},
	MsgHelpBasics: {
		LocaleHungarian: "   • Próbáld ki a 'gghelper --resolve-only' parancsot\n   • Ismerd meg a merge konfliktusokat",
		LocaleEnglish:   "   • Experiment with 'gghelper --resolve-only'\n   • Learn about merge conflicts",
	},
	MsgHelpAdvanced: {
		LocaleHungarian: "   • Próbáld ki a 'gghelper --safe' kapcsolót a merge vs rebase miatt\n   • Ismerd meg a branch stratégiákat",
		LocaleEnglish:   "   • Try 'gghelper --safe' to see merge vs rebase\n   • Learn about branching strategies",
	},
	MsgHelpExpert: {
		LocaleHungarian: "   • Remekül haladsz! Segíts másoknak megtanulni a Gitet",
		LocaleEnglish:   "   • You're doing great! Consider helping others learn Git",
	},
	MsgHelpCommands: {
		LocaleHungarian: "💡 GYORS PARANCSOK:\n   gghelper                    # Normál munkafolyamat\n   gghelper --resolve-only     # Szinkron a távolival\n   gghelper --safe             # Merge a rebase helyett\n   gghelper --lang hu          # Magyar felület",
		LocaleEnglish:   "💡 QUICK COMMANDS:\n   gghelper                    # Normal workflow\n   gghelper --resolve-only     # Sync with remote\n   gghelper --safe             # Use merge instead of rebase\n   gghelper --lang hu          # Hungarian interface",
	},
	MsgHelpResources: {
		LocaleHungarian: "📚 TANULÁSI FORRÁSOK:\n   https://git-scm.com/book      # Pro Git könyv (ingyenes!)\n   https://ohmygit.org/          # Git tanulójáték",
		LocaleEnglish:   "📚 LEARNING RESOURCES:\n   https://git-scm.com/book      # Pro Git book (free!)\n   https://ohmygit.org/          # Git learning game",
	},
}

var successMessages = map[Locale][]string{
	LocaleHungarian: {
		"✅ SIKER! Jó munka!",
		"✅ Kész! Egyre jobb leszel!",
		"✅ Nagyszerű! Következő alkalommal próbáld ki a --resolve-only opciót!",
	},
	LocaleEnglish: {
		"✅ SUCCESS! Great job!",
		"✅ Done! You're getting better!",
		"✅ Excellent! Next time try the --resolve-only option!",
	},
}
