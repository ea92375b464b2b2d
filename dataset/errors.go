package dataset

import "fmt"

// LoadError reports a source that is missing, unreadable or unparseable.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErrorf(source, format string, args ...interface{}) *LoadError {
	return &LoadError{Source: source, Err: fmt.Errorf(format, args...)}
}

// MissingColumnWarning records an optional column absent from the source.
// It is never returned as a failure; the features built on the column are
// disabled instead.
type MissingColumnWarning struct {
	Column string
}

func (w MissingColumnWarning) Error() string {
	return fmt.Sprintf("optional column %q not present", w.Column)
}
