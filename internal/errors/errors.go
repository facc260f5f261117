package errors

import (
	"errors"
)

// Sentinel errors for the rejection taxonomy
var (
	// ErrNotObject - record is not a non-null JSON object (skipped before any payload work)
	ErrNotObject = errors.New("not an object")

	// ErrMissingSurfaceID - envelope lacks a string surface_id
	ErrMissingSurfaceID = errors.New("missing surface_id")

	// ErrMissingTitle - envelope lacks a string title
	ErrMissingTitle = errors.New("missing title")

	// ErrUnknownKind - kind tag is absent or not one of the supported surface kinds
	ErrUnknownKind = errors.New("unknown kind")

	// ErrInvalidPayload - envelope fields are fine but the kind-specific payload failed validation
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrEmptyAfterFilter - a required list lost every element to per-element checks
	ErrEmptyAfterFilter = errors.New("empty after filtering")
)
