package commands

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientArguments = errors.New("not enough arguments")
	ErrInvalidAnswerIndex    = errors.New("answer index must be an integer")
	ErrInvalidPollID         = errors.New("poll ID too long")
	ErrUnterminatedQuote     = errors.New("unterminated quote")
)

// ParseError reports which command failed to parse and, where relevant, the
// offending argument.
type ParseError struct {
	Command string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %v: %q", e.Command, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
