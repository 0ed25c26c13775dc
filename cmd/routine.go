package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// routineCmd represents the routine command group
var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage routine definitions",
	Long: `Create, list, rename and delete routines.

A routine is a named, ordered set of timed habits. Habits are given as
'HH:MM Habit name' specs:

  tend routine add Morning --habit '07:00 Read' --habit '07:30 Stretch'
  tend routine rename Morning 'Early Morning'
  tend routine delete Morning`,
}

// routineAddCmd represents the routine add command
var routineAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Define a new routine",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		specs, _ := cmd.Flags().GetStringArray("habit")
		if len(specs) == 0 {
			fail("A routine needs at least one habit", nil,
				"Add habits with --habit '07:00 Read' (repeatable)")
			return
		}

		r, err := services.Routines.Create(args[0], specs)
		if err != nil {
			fail("Failed to create routine", err, "Habit specs look like '07:00 Read'")
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Created routine %q with %d %s\n",
			r.Name, len(r.Tasks), pluralize("habit", len(r.Tasks)))
	},
}

// routineListCmd represents the routine list command
var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all routines",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		routines := services.Routines.List()
		if len(routines) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "No routines defined")
			_, _ = fmt.Fprintln(deps.Stdout, "Create one with 'tend routine add <name> --habit \"07:00 Read\"'")
			return
		}

		sel := services.Today.Selected()
		for _, r := range routines {
			marker := " "
			if sel != nil && sel.ID == r.ID {
				marker = "*"
			}
			_, _ = fmt.Fprintf(deps.Stdout, "%s %s (%d %s)\n",
				marker, r.Name, len(r.Tasks), pluralize("habit", len(r.Tasks)))
			for _, t := range r.Tasks {
				_, _ = fmt.Fprintf(deps.Stdout, "    %-9s %s\n", t.Time, t.Habit)
			}
		}
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		_, _ = fmt.Fprintf(deps.Stdout, "%d %s\n", len(routines), pluralize("routine", len(routines)))
	},
}

// routineRenameCmd represents the routine rename command
var routineRenameCmd = &cobra.Command{
	Use:   "rename <routine> <new name>",
	Short: "Rename a routine",
	Long: `Rename a routine. Its habit history stays attached: entries are keyed
by the routine's id, not its name.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		r, err := services.Routines.Rename(args[0], args[1])
		if err != nil {
			fail("Failed to rename routine", err, "List routines with 'tend routine list'")
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Renamed routine to %q\n", r.Name)
	},
}

// routineDeleteCmd represents the routine delete command
var routineDeleteCmd = &cobra.Command{
	Use:   "delete <routine>",
	Short: "Delete a routine",
	Long: `Delete a routine by name or id. If it was selected for today, the
selection is cleared. History entries it produced are kept.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		if err := services.Routines.Delete(args[0]); err != nil {
			fail("Failed to delete routine", err, "List routines with 'tend routine list'")
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Deleted routine %q\n", args[0])
	},
}

func init() {
	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineRenameCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	rootCmd.AddCommand(routineCmd)

	routineAddCmd.Flags().StringArray("habit", nil, "Habit spec 'HH:MM Habit name' (repeatable)")
}
