package domain

import "errors"

var (
	// ErrValidation is returned when an input record is missing a required
	// field or carries an unparseable price. Fatal to the pipeline run.
	ErrValidation = errors.New("product record validation failed")

	// ErrCapabilityNotFound is returned when no registered agent satisfies a
	// requested task identifier. Indicates a misconfigured registry.
	ErrCapabilityNotFound = errors.New("no agent registered for capability")

	// ErrComparison is returned when the comparison engine is given a product
	// count other than two.
	ErrComparison = errors.New("comparison requires exactly two products")

	// ErrExternalService is returned when the narrative text service is
	// unreachable, times out, or returns empty content. Always recovered
	// locally with deterministic fallback text; never surfaced to callers of
	// the pipeline.
	ErrExternalService = errors.New("text generation service failed")

	// ErrInvalidInput is returned when an agent receives input of an
	// unexpected type.
	ErrInvalidInput = errors.New("invalid agent input")

	// ErrPageNotFound is returned when a requested run artifact has not been
	// generated yet.
	ErrPageNotFound = errors.New("generated page not found")
)
