package runner

import "github.com/yaklabco/mdslim/pkg/slim"

// FileOutcome pairs a processed file with its result or error.
type FileOutcome struct {
	// Path is the source file path.
	Path string

	// Result is the pipeline result. Nil when the file errored.
	Result *slim.FileResult

	// Error is set if the file could not be processed. A file error
	// never aborts the batch.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully slimmed.
	FilesProcessed int

	// FilesErrored is the number of files that failed to read or write.
	FilesErrored int

	// FilesWritten is the number of destination files created or updated.
	FilesWritten int

	// FilesUnchanged is the number of destinations already up to date.
	FilesUnchanged int

	// BytesIn and BytesOut total the source and output sizes.
	BytesIn  int
	BytesOut int

	// CodeBlocks is the total number of fenced blocks encountered.
	CodeBlocks int
}

// Reduction returns the overall size reduction as a fraction in [0, 1].
func (s Stats) Reduction() float64 {
	if s.BytesIn == 0 {
		return 0
	}
	return 1 - float64(s.BytesOut)/float64(s.BytesIn)
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file errored.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Result.Written {
		r.Stats.FilesWritten++
	} else {
		r.Stats.FilesUnchanged++
	}
	r.Stats.BytesIn += outcome.Result.BytesIn
	r.Stats.BytesOut += outcome.Result.BytesOut
	r.Stats.CodeBlocks += outcome.Result.CodeBlocks
}
