package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// notesCmd represents the notes command
var notesCmd = &cobra.Command{
	Use:   "notes [text]",
	Short: "Show or set today's notes",
	Long: `Show today's notes, or set them when text is given.

  tend notes                       Show notes
  tend notes 'Drink more water'    Set the permanent note
  tend notes --temp 'Call back'    Set the temporary (24h) note
  tend notes --clear               Clear the permanent note
  tend notes --temp --clear        Clear the temporary note`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		temp, _ := cmd.Flags().GetBool("temp")
		clear, _ := cmd.Flags().GetBool("clear")

		if len(args) == 0 && !clear {
			notes := services.Today.Notes()
			if notes.Permanent == "" && notes.Temporary == "" {
				_, _ = fmt.Fprintln(deps.Stdout, "No notes")
				return
			}
			if notes.Permanent != "" {
				_, _ = fmt.Fprintf(deps.Stdout, "Notes: %s\n", notes.Permanent)
			}
			if notes.Temporary != "" {
				_, _ = fmt.Fprintf(deps.Stdout, "Temporary (24h): %s\n", notes.Temporary)
			}
			return
		}

		text := strings.Join(args, " ")
		if clear {
			text = ""
		}

		var err error
		if temp {
			err = services.Today.SetNotes(nil, &text)
		} else {
			err = services.Today.SetNotes(&text, nil)
		}
		if err != nil {
			fail("Failed to update notes", err, "")
			return
		}

		if text == "" {
			_, _ = fmt.Fprintln(deps.Stdout, "Notes cleared")
		} else {
			_, _ = fmt.Fprintln(deps.Stdout, "Notes updated")
		}
	},
}

func init() {
	notesCmd.Flags().Bool("temp", false, "Target the temporary (24h) note")
	notesCmd.Flags().Bool("clear", false, "Clear the targeted note")
	rootCmd.AddCommand(notesCmd)
}
