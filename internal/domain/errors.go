package domain

import (
	"errors"
	"fmt"
)

// Sentinel outcomes that callers branch on. Cancellation exits quietly,
// no-results explains itself; neither is a hard failure.
var (
	ErrCancelled = errors.New("selection cancelled")
	ErrNoResults = errors.New("no results")
	ErrNoHistory = errors.New("history is empty")
)

// ToolMissingError reports a required external program absent from PATH.
// It is raised eagerly, before any network or filesystem work.
type ToolMissingError struct {
	Tool string
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("required tool not found in PATH: %s", e.Tool)
}

// ResourceError reports a path that could not be created, read, or written.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource failure at %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// ProviderError reports a failed or malformed response from the search
// backend. There is no fallback data, so it is terminal for that search.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
