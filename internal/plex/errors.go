// internal/plex/errors.go
package plex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the server answered 404 for the requested resource.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the token was rejected.
	ErrUnauthorized = errors.New("unauthorized: check the Plex token")

	// ErrNoLibraries indicates the server has no movie or show sections.
	ErrNoLibraries = errors.New("no movie or show libraries available")

	// ErrLibraryNotFound indicates a library name matched no section.
	ErrLibraryNotFound = errors.New("library not found")
)

// LibraryNotFoundError carries the closest section title, if any.
type LibraryNotFoundError struct {
	Name       string
	Suggestion string
	Available  []string
}

func (e *LibraryNotFoundError) Error() string {
	msg := fmt.Sprintf("library %q not found", e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	if len(e.Available) > 0 {
		msg += "; available: " + strings.Join(e.Available, ", ")
	}
	return msg
}

func (e *LibraryNotFoundError) Unwrap() error {
	return ErrLibraryNotFound
}
