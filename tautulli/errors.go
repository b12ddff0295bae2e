package tautulli

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidResponse is returned for non-200 answers and bodies that are not the v2 envelope.
	ErrInvalidResponse = errors.New("invalid response from Tautulli")

	// ErrAPIFailure matches every *ResultError.
	ErrAPIFailure = errors.New("tautulli command failed")
)

// ResultError is a v2 envelope whose result is not "success".
type ResultError struct {
	Cmd     string
	Result  string
	Message string
}

func (e *ResultError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tautulli %s: result %q", e.Cmd, e.Result)
	}
	return fmt.Sprintf("tautulli %s: %s", e.Cmd, e.Message)
}

func (e *ResultError) Unwrap() error {
	return ErrAPIFailure
}
