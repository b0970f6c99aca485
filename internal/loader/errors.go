package loader

import (
	"errors"
	"fmt"
)

// Kind classifies why a spreadsheet could not be loaded
type Kind int

const (
	WrongColumnCount Kind = iota + 1
	EmptyAfterCleaning
	FileUnreadable
)

// Sentinels for errors.Is matching against a *LoadError
var (
	ErrWrongColumnCount   = errors.New("wrong column count")
	ErrEmptyAfterCleaning = errors.New("no bookings left after cleaning")
	ErrFileUnreadable     = errors.New("file unreadable")
)

func (k Kind) String() string {
	switch k {
	case WrongColumnCount:
		return "WrongColumnCount"
	case EmptyAfterCleaning:
		return "EmptyAfterCleaning"
	case FileUnreadable:
		return "FileUnreadable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case WrongColumnCount:
		return ErrWrongColumnCount
	case EmptyAfterCleaning:
		return ErrEmptyAfterCleaning
	case FileUnreadable:
		return ErrFileUnreadable
	default:
		return nil
	}
}

// LoadError is returned for any spreadsheet that cannot become a booking list.
// It is terminal: callers report it and stop.
type LoadError struct {
	Kind   Kind
	Path   string
	Detail string
	Err    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("loading %s: %s", e.Path, e.Kind.sentinel())
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *LoadError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind Kind, path, detail string, err error) *LoadError {
	return &LoadError{Kind: kind, Path: path, Detail: detail, Err: err}
}
