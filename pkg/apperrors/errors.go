package apperrors

import "errors"

var (
	// ErrEmptyCatalog means a prompt could not be built because the catalog
	// sample was empty. Callers surface this as an empty result, not a crash.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrParseDegraded means every parsing strategy in the cascade produced
	// zero records for a non-empty completion.
	ErrParseDegraded = errors.New("no records extracted from completion")

	// ErrCompletionUnavailable means the completion collaborator failed; the
	// request is answered with an empty result and never retried by the core.
	ErrCompletionUnavailable = errors.New("completion service unavailable")

	// ErrEmptySource means a source produced no usable rows at all, which
	// aborts catalog construction.
	ErrEmptySource = errors.New("source contains no usable rows")
)
