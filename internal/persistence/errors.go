package persistence

import "fmt"

// ParseError reports a structurally invalid data file. It is distinct from
// "file absent", which Load treats as an empty collection.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse data file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
