package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned from use cases and adapters.
var (
	// ErrPredictorUnreachable means the scoring endpoint could not be reached
	// at the transport level. Callers may suggest that the backend is not
	// running and retry later.
	ErrPredictorUnreachable = errors.New("prediction endpoint unreachable")

	// ErrStorageUnavailable means the durable key/value storage could not be
	// accessed. History features degrade; the triggering operation itself
	// must not fail because of it.
	ErrStorageUnavailable = errors.New("history storage unavailable")

	// ErrCorruptRecord means a single persisted history element failed to
	// decode. Recoverable: the element is skipped, the load goes on.
	ErrCorruptRecord = errors.New("corrupt history record")

	// ErrInvalidInput marks request validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// PredictionRejectedError means the scoring endpoint was reached but rejected
// the request, carrying the server-supplied message.
type PredictionRejectedError struct {
	Reason string
}

func (e *PredictionRejectedError) Error() string {
	return fmt.Sprintf("prediction rejected by endpoint: %s", e.Reason)
}

// EndpointError means the scoring endpoint answered with a non-success HTTP
// status.
type EndpointError struct {
	StatusCode int
	Body       string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("prediction endpoint returned status %d: %s", e.StatusCode, e.Body)
}
