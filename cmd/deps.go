package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/halvard/tend/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services func() (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: service.NewServices,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// getServices builds the service layer, reporting a snapshot warning to
// stderr when the persisted state had to be replaced with the default.
func getServices() (*service.Services, bool) {
	services, err := deps.Services()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open the tend data store")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil, false
	}

	if services.Warning != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: snapshot at %s could not be read and was replaced with defaults\n", services.Warning.Path)
		_, _ = fmt.Fprintf(deps.Stderr, "  (%s)\n", services.Warning.Error)
	}

	return services, true
}

// fail prints an error with an optional hint and exits with status 1.
func fail(message string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", message)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}
