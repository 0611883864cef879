package source

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDay is returned for a document key outside the active calendar.
	ErrUnknownDay = errors.New("unknown day")
	// ErrDuplicateDay is returned when two keys name the same calendar day.
	ErrDuplicateDay = errors.New("day listed more than once")
	// ErrInvertedInterval is returned when a block does not end after it starts.
	ErrInvertedInterval = errors.New("block must end after it starts")
	// ErrNotPair is returned when a block is not exactly [start, end].
	ErrNotPair = errors.New("block must be a [start, end] pair")
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("model returned no content")
)

// ValidationError locates a rejected part of a schedule document.
// Block is -1 when the problem concerns the day key itself.
type ValidationError struct {
	Day   string
	Block int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Block < 0 {
		return fmt.Sprintf("day %q: %v", e.Day, e.Err)
	}
	return fmt.Sprintf("day %q block %d: %v", e.Day, e.Block, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
