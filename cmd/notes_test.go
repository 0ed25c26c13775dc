package cmd

import (
	"strings"
	"testing"
)

// resetNotesFlags clears the notes flags between invocations.
func resetNotesFlags(t *testing.T, temp, clear bool) {
	t.Helper()
	set := func(name string, v bool) {
		value := "false"
		if v {
			value = "true"
		}
		if err := notesCmd.Flags().Set(name, value); err != nil {
			t.Fatalf("setting --%s: %v", name, err)
		}
	}
	set("temp", temp)
	set("clear", clear)
}

func TestNotesCommand_ShowEmpty(t *testing.T) {
	env := setupTestDeps(t)
	resetNotesFlags(t, false, false)

	notesCmd.Run(notesCmd, []string{})

	if !strings.Contains(env.stdout.String(), "No notes") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestNotesCommand_SetAndShow(t *testing.T) {
	env := setupTestDeps(t)
	resetNotesFlags(t, false, false)

	notesCmd.Run(notesCmd, []string{"Drink", "more", "water"})
	if !strings.Contains(env.stdout.String(), "Notes updated") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	resetNotesFlags(t, true, false)
	notesCmd.Run(notesCmd, []string{"Call", "back"})

	env.stdout.Reset()
	resetNotesFlags(t, false, false)
	notesCmd.Run(notesCmd, []string{})

	out := env.stdout.String()
	if !strings.Contains(out, "Notes: Drink more water") {
		t.Errorf("permanent note missing: %s", out)
	}
	if !strings.Contains(out, "Temporary (24h): Call back") {
		t.Errorf("temporary note missing: %s", out)
	}
}

func TestNotesCommand_Clear(t *testing.T) {
	env := setupTestDeps(t)

	resetNotesFlags(t, false, false)
	notesCmd.Run(notesCmd, []string{"Drink water"})

	env.stdout.Reset()
	resetNotesFlags(t, false, true)
	notesCmd.Run(notesCmd, []string{})
	if !strings.Contains(env.stdout.String(), "Notes cleared") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	env.stdout.Reset()
	resetNotesFlags(t, false, false)
	notesCmd.Run(notesCmd, []string{})
	if !strings.Contains(env.stdout.String(), "No notes") {
		t.Errorf("note not cleared: %s", env.stdout.String())
	}
}

func TestThemeCommand_Show(t *testing.T) {
	env := setupTestDeps(t)

	themeCmd.Run(themeCmd, []string{})

	out := env.stdout.String()
	if !strings.Contains(out, "Theme: simple") {
		t.Errorf("theme line missing: %s", out)
	}
	if !strings.Contains(out, "simple, space, abstract, gradient") {
		t.Errorf("available list missing: %s", out)
	}
}

func TestThemeCommand_Set(t *testing.T) {
	env := setupTestDeps(t)

	themeCmd.Run(themeCmd, []string{"Space"})
	if !strings.Contains(env.stdout.String(), `Theme set to "space"`) {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	env.stdout.Reset()
	themeCmd.Run(themeCmd, []string{})
	if !strings.Contains(env.stdout.String(), "Theme: space") {
		t.Errorf("theme not persisted: %s", env.stdout.String())
	}
}

func TestThemeCommand_Unknown(t *testing.T) {
	env := setupTestDeps(t)

	themeCmd.Run(themeCmd, []string{"neon"})

	if !env.exitCalled {
		t.Error("unknown theme should exit non-zero")
	}
	if !strings.Contains(env.stderr.String(), `Unknown theme "neon"`) {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}

func TestResetDayCommand(t *testing.T) {
	env := setupTestDeps(t)

	addRoutine(t, "Morning", "6:00 Run")
	selectCmd.Run(selectCmd, []string{"Morning"})
	env.stdout.Reset()

	resetDayCmd.Run(resetDayCmd, []string{})
	if !strings.Contains(env.stdout.String(), "Day reset") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	// The day is open for a new selection now.
	env.stdout.Reset()
	selectCmd.Run(selectCmd, []string{"Morning"})
	if !strings.Contains(env.stdout.String(), `Selected "Morning"`) {
		t.Errorf("selection after reset failed: %s", env.stdout.String())
	}
}

func TestResetStatsCommand(t *testing.T) {
	env := setupTestDeps(t)

	addRoutine(t, "Morning", "6:00 Run")
	selectCmd.Run(selectCmd, []string{"Morning"})
	doneCmd.Run(doneCmd, []string{"Run"})
	env.stdout.Reset()

	resetStatsCmd.Run(resetStatsCmd, []string{})
	if !strings.Contains(env.stdout.String(), "All stats have been reset to zero") {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}

	env.stdout.Reset()
	statsCmd.Run(statsCmd, []string{})
	if !strings.Contains(env.stdout.String(), "Current streak: 0 days") {
		t.Errorf("stats not reset: %s", env.stdout.String())
	}
}
