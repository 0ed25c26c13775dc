package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/halvard/tend/internal/habit"
)

var rootCmd = &cobra.Command{
	Use:   "tend",
	Short: "A habit and routine tracking application",
	Long: `tend tracks named routines of timed habits, daily completion,
ad-hoc tasks and the statistics derived from them.

Usage:
  tend                                  Show today's routine, notes and tasks
  tend select <routine>                 Choose the routine for today
  tend done <habit>                     Mark a habit completed for today
  tend skip <habit>                     Mark a habit neutral (intentional skip)
  tend undo <habit>                     Clear today's mark for a habit
  tend routine add <name> --habit '07:00 Read'
                                        Define a routine (repeat --habit)
  tend task add <title> [--for 3days]   Track an ad-hoc task
  tend dayoff                           Take a day off from the budget
  tend stats                            Streaks, tallies and day-off budget
  tend cal [YYYY-MM]                    Month calendar of day statuses
  tend tui                              Interactive terminal interface`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showToday()
	},
}

// selectCmd represents the select command
var selectCmd = &cobra.Command{
	Use:   "select <routine>",
	Short: "Choose the routine for today",
	Long: `Select the routine to follow today. Only one routine can be active
per day; use 'tend reset day' before switching.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		r, err := services.Today.SelectRoutine(args[0])
		if err != nil {
			fail("Failed to select routine", err, "List routines with 'tend routine list'")
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Selected %q for today (%d %s)\n",
			r.Name, len(r.Tasks), pluralize("habit", len(r.Tasks)))
	},
}

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done <habit>",
	Short: "Mark a habit completed for today",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		markHabit(strings.Join(args, " "), habit.StatusCompleted)
	},
}

// skipCmd represents the skip command
var skipCmd = &cobra.Command{
	Use:   "skip <habit>",
	Short: "Mark a habit neutral for today",
	Long: `Mark a habit as intentionally skipped. Neutral habits do not break
streaks, unlike habits left unmarked.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		markHabit(strings.Join(args, " "), habit.StatusNeutral)
	},
}

// undoCmd represents the undo command
var undoCmd = &cobra.Command{
	Use:   "undo <habit>",
	Short: "Clear today's mark for a habit",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		name := strings.Join(args, " ")
		if err := services.Today.UndoMark(name); err != nil {
			fail("Failed to undo mark", err, "Run 'tend' to see today's habits")
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Cleared today's mark for %q\n", name)
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(undoCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tend version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// markHabit records today's outcome for one habit on the selected routine.
func markHabit(name string, status habit.Status) {
	services, ok := getServices()
	if !ok {
		return
	}

	if err := services.Today.Mark(name, status); err != nil {
		fail("Failed to mark habit", err, "Run 'tend' to see today's habits")
		return
	}

	verb := "completed"
	if status == habit.StatusNeutral {
		verb = "skipped (neutral)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Marked %q %s\n", name, verb)
	_, _ = fmt.Fprintf(deps.Stdout, "Current streak: %d %s\n",
		services.Stats.Combined(), pluralize("day", services.Stats.Combined()))
}

// showToday renders the selected routine, notes and today's tasks.
func showToday() {
	services, ok := getServices()
	if !ok {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s\n", time.Now().Format("Monday, January 2, 2006"))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	sel := services.Today.Selected()
	if sel == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No routine selected for today")
		_, _ = fmt.Fprintln(deps.Stdout, "Select one with 'tend select <routine>'")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Routine: %s\n\n", sel.Name)
		for _, t := range sel.Tasks {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s %-8s %s\n", stateGlyph(t.State), t.Time, t.Habit)
			if t.Notes != "" {
				_, _ = fmt.Fprintf(deps.Stdout, "    %s\n", t.Notes)
			}
		}
	}

	notes := services.Today.Notes()
	if notes.Permanent != "" || notes.Temporary != "" {
		_, _ = fmt.Fprintln(deps.Stdout)
		if notes.Permanent != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "Notes: %s\n", notes.Permanent)
		}
		if notes.Temporary != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "Temporary (24h): %s\n", notes.Temporary)
		}
	}

	lists := services.Tasks.List()
	if len(lists.Today) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "\nToday's tasks:")
		printTaskList(lists.Today)
	}
	if len(lists.LongTerm) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "\nLong-term tasks:")
		printTaskList(lists.LongTerm)
	}
}

func printTaskList(tasks []habit.Task) {
	for i, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  [%d] [%s] %s", i+1, mark, t.Title)
		if !t.Duration.IsToday() {
			_, _ = fmt.Fprintf(deps.Stdout, " (due %s)", t.DueDate.Format("Jan 2"))
		}
		_, _ = fmt.Fprintln(deps.Stdout)
		if t.Description != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "      %s\n", t.Description)
		}
	}
}

// stateGlyph renders a habit task state as a single-cell marker.
func stateGlyph(s habit.Status) string {
	switch s {
	case habit.StatusCompleted:
		return "✓"
	case habit.StatusNeutral:
		return "○"
	default:
		return "·"
	}
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// resolveTaskByIndex maps a 1-based index within one of the task lists
// to the task itself.
func resolveTaskByIndex(tasks []habit.Task, userIndex int) (habit.Task, error) {
	if userIndex < 1 || userIndex > len(tasks) {
		return habit.Task{}, fmt.Errorf("index %d is out of range (1-%d)", userIndex, len(tasks))
	}
	return tasks[userIndex-1], nil
}
