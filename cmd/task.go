package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/service"
)

// taskCmd represents the task command group
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage ad-hoc tasks",
	Long: `Track short- and long-term tasks outside your routines.

  tend task add 'Buy groceries'                 Task for today
  tend task add 'File taxes' --for 30days       Long-term task
  tend task add 'Trip prep' --for 5 --desc 'pack, book hotel'
  tend task done 2                              Complete by list index
  tend task rm 2 --long                         Remove a long-term task

Tasks never expire on their own; remove them explicitly.`,
}

// taskAddCmd represents the task add command
var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		durationStr, _ := cmd.Flags().GetString("for")
		description, _ := cmd.Flags().GetString("desc")

		var (
			t   habit.Task
			err error
		)
		if durationStr == "" || durationStr == string(habit.DurationToday) {
			t, err = services.Tasks.AddToday(args[0])
		} else {
			t, err = services.Tasks.AddLongTerm(args[0], durationStr, description)
		}
		if err != nil {
			fail("Failed to add task", err, "Durations look like 'today', '3days' or a number 2-60")
			return
		}

		if t.Duration.IsToday() {
			_, _ = fmt.Fprintf(deps.Stdout, "Added task %q for today\n", t.Title)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "Added task %q, due %s\n", t.Title, t.DueDate.Format("Jan 2, 2006"))
		}
	},
}

// taskListCmd represents the task list command
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		lists := services.Tasks.List()
		if len(lists.Today) == 0 && len(lists.LongTerm) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "No tasks")
			return
		}

		if len(lists.Today) > 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "Today's tasks:")
			printTaskList(lists.Today)
		}
		if len(lists.LongTerm) > 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "Long-term tasks:")
			printTaskList(lists.LongTerm)
		}
	},
}

// taskDoneCmd represents the task done command
var taskDoneCmd = &cobra.Command{
	Use:   "done <index>",
	Short: "Complete a task by list index",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTaskAtIndex(cmd, args[0], func(services *service.Services, t habit.Task) error {
			if err := services.Tasks.Complete(t.ID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(deps.Stdout, "Completed %q\n", t.Title)
			return nil
		})
	},
}

// taskRmCmd represents the task rm command
var taskRmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Remove a task by list index",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTaskAtIndex(cmd, args[0], func(services *service.Services, t habit.Task) error {
			if err := services.Tasks.Delete(t.ID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(deps.Stdout, "Removed %q\n", t.Title)
			return nil
		})
	},
}

// withTaskAtIndex resolves a 1-based index in the today list (or the
// long-term list with --long) and applies fn to the task.
func withTaskAtIndex(cmd *cobra.Command, indexArg string, fn func(*service.Services, habit.Task) error) {
	services, ok := getServices()
	if !ok {
		return
	}

	userIndex, err := strconv.Atoi(indexArg)
	if err != nil {
		fail(fmt.Sprintf("Invalid index %q", indexArg), nil, "List tasks with 'tend task list' to see indices")
		return
	}

	lists := services.Tasks.List()
	tasks := lists.Today
	if long, _ := cmd.Flags().GetBool("long"); long {
		tasks = lists.LongTerm
	}

	t, err := resolveTaskByIndex(tasks, userIndex)
	if err != nil {
		fail("No task at that index", err, "List tasks with 'tend task list'")
		return
	}

	if err := fn(services, t); err != nil {
		fail("Failed to update task", err, "")
	}
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
	rootCmd.AddCommand(taskCmd)

	taskAddCmd.Flags().String("for", "", "Task duration: 'today', 'Ndays' or a number of days (2-60)")
	taskAddCmd.Flags().String("desc", "", "Optional description for long-term tasks")
	taskDoneCmd.Flags().Bool("long", false, "Index into the long-term list instead of today's")
	taskRmCmd.Flags().Bool("long", false, "Index into the long-term list instead of today's")
}
