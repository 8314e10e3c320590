package service

import "errors"

// ErrSubmissionInFlight rejects a re-entrant submit while one is pending
// for the same user. It does not deduplicate by content: two completed
// identical submissions still create two posts.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// PersistenceError wraps a store failure. The store's message is surfaced
// verbatim and the operation is not retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// UploadError wraps an object-store failure. Image attachment is optional,
// so an upload failure never blocks a caption-only submission.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return e.Err.Error() }

func (e *UploadError) Unwrap() error { return e.Err }
