package domain

// TargetResult is the outcome of generating library documentation for one platform.
type TargetResult struct {
	Target string
	Err    error
}

// Succeeded reports whether generation for the target completed.
func (r TargetResult) Succeeded() bool {
	return r.Err == nil
}

// LibraryReport collects the per-target results of the library documentation step.
type LibraryReport struct {
	Results []TargetResult
}

// Failed returns the results that did not succeed, in target order.
func (r LibraryReport) Failed() []TargetResult {
	var failed []TargetResult
	for _, res := range r.Results {
		if !res.Succeeded() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Artifact is a generated file below the output directory.
type Artifact struct {
	// Path is relative to the output directory, using forward slashes.
	Path   string
	Size   int64
	Digest string
}
