package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when requested product, user or notification doesn't exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when owner already tracks product with the same URL.
	ErrAlreadyExists = errors.New("already exists")
	// ErrLimitExceeded is returned when unverified user can't track more products.
	ErrLimitExceeded = errors.New("products limit exceeded")
	// ErrExtractionFailed is returned when extraction service call failed.
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrInvalidExtraction is returned when extraction service returned result without title or price.
	ErrInvalidExtraction = errors.New("extraction result is invalid")
)

// LimitExceededError is returned when owner reached products limit.
// It matches ErrLimitExceeded with errors.Is.
type LimitExceededError struct {
	Limit int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("verify your email to track more than %d products", e.Limit)
}

// Is makes errors.Is(err, ErrLimitExceeded) true for LimitExceededError.
func (e *LimitExceededError) Is(target error) bool {
	return target == ErrLimitExceeded
}
