package output

import (
	"context"
)

// ProgressFunc receives incremental progress lines from a running step.
type ProgressFunc func(line string)

// RunStep runs action under a spinner titled with title, then prints a
// checkmark or a failure line. Progress lines are logged at debug level.
func RunStep(ctx context.Context, title string, action func(progress ProgressFunc) error) error {
	stepLog := StepLogger(title)
	progress := func(line string) {
		stepLog.Debug(line)
	}

	err := RunWithSpinner(ctx, func() error {
		return action(progress)
	}, WithTitle(title))
	if err != nil {
		Println(FormatFailure(title))
		return err
	}

	Println(FormatCheckmark(title))
	return nil
}

// SkipStep prints a dimmed line for a step that did not need to run.
func SkipStep(title string) {
	Println(StyleDim.Render("- " + title + " skipped"))
}
