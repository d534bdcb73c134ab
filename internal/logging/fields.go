// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldSource     = "source"
	FieldDest       = "dest"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldJobs         = "jobs"
	FieldPreserveCode = "preserve_code"
	FieldFormat       = "format"
	FieldIgnore       = "ignore"

	// Per-file fields.
	FieldTitle      = "title"
	FieldBytesIn    = "bytes_in"
	FieldBytesOut   = "bytes_out"
	FieldCodeBlocks = "code_blocks"
	FieldLanguages  = "languages"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesErrored    = "files_errored"
	FieldFilesWritten    = "files_written"
	FieldReduction       = "reduction"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
