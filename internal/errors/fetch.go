package errors

import "fmt"

// FetchError reports a collection fetch that could not complete.
// Fetched carries the number of releases already delivered so callers
// can tell "nothing fetched" apart from "partial results, then failed".
type FetchError struct {
	Page    int
	Fetched int
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching collection page %d failed after %d releases: %v", e.Page, e.Fetched, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Partial reports whether any releases were delivered before the failure.
func (e *FetchError) Partial() bool {
	return e.Fetched > 0
}
