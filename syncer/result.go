package syncer

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned for a sync action the syncer does not know.
var ErrUnknownAction = errors.New("unknown sync action")

// Result contains the outcome of a sync run
type Result struct {
	Requested int
	Succeeded []Item
	Rejected  []Item // the service answered with a failure status
	Skipped   []Item // no usable identifier
	Failed    []ItemError
}

// Err joins the per-item failures, or returns nil when there were none.
func (r Result) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// ItemError contains information about a failed item
type ItemError struct {
	Item Item
	Err  error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("failed to sync movie %s: %v", e.Item, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}
