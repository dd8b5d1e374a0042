// Package remote talks to the job site API and substitutes built-in data when it fails.
package remote

import (
	"fmt"
)

// NetworkError describes a failed remote call: a transport error, a
// non-success status, or a response body that could not be understood.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Result holds either a value or the NetworkError that prevented it.
type Result[T any] struct {
	Value T
	Err   *NetworkError
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps a failure.
func Fail[T any](err *NetworkError) Result[T] {
	return Result[T]{Err: err}
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Or returns the value, or fallback when the call failed. The bool reports
// whether fallback was used.
func (r Result[T]) Or(fallback T) (T, bool) {
	if r.Err != nil {
		return fallback, true
	}
	return r.Value, false
}
