package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner.
// Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Spinner output would interleave with streamed debug lines.
	if !IsTTY() || IsVerbose() {
		return action()
	}

	var actionErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		actionErr = action()
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Action(func() {
			select {
			case <-ctx.Done():
			case <-done:
			}
		}).
		Run()

	// Wait for the action even if the spinner quit early.
	<-done

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	return actionErr
}
