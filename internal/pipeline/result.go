package pipeline

import "time"

const (
	StatusOK      = "OK"
	StatusFailed  = "FAILED"
	StatusSkipped = "SKIPPED"
)

// Job is one schema file to convert.
type Job struct {
	Source      string
	Destination string
}

// Result is the per-file report entry.
type Result struct {
	Job
	Rows       int
	Types      int
	Status     string
	Err        error
	CreatedDir string
	Elapsed    time.Duration
}

func (r Result) OK() bool { return r.Status == StatusOK }

// ErrorMsg is the error text or "" for successful jobs.
func (r Result) ErrorMsg() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
