// Package views contains the individual tab views of the TUI.
package views

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
