package cli

import "github.com/yaklabco/mdslim/pkg/runner"

// Exit codes for mdslim.
const (
	// ExitSuccess indicates successful execution with no file failures.
	ExitSuccess = 0

	// ExitFileErrors indicates the run completed but some files failed.
	ExitFileErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors outside per-file processing.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a run result.
// Per-file failures never abort the batch, but they are surfaced here.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitFileErrors
	}
	return ExitSuccess
}
