package domain

import "errors"

var (
	// ErrMissingStartTime is returned when a slot is built without a start time.
	ErrMissingStartTime = errors.New("start time is required")

	// ErrUnderspecifiedInterval is returned when neither an end time nor a
	// positive duration is supplied, so the occupied interval cannot be derived.
	ErrUnderspecifiedInterval = errors.New("neither end time nor duration given")

	// ErrInconsistentTiming is returned when a supplied end time and a supplied
	// duration disagree. The wrapped message carries the implied duration.
	ErrInconsistentTiming = errors.New("end time and duration do not match")

	// ErrInvalidInterval is returned when a recompute finds the start instant
	// after the end instant.
	ErrInvalidInterval = errors.New("invalid time interval")
)
