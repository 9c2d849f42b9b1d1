package loader

import (
	"fmt"
	"io/fs"
)

// NotFoundError is returned when the configuration source does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// Is lets errors.Is(err, fs.ErrNotExist) match.
func (e *NotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// ParseError is returned when the configuration is not well-formed in its
// detected format.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}
	return fmt.Sprintf("parse %s config %s: %v", e.Format, src, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
