package service

import "errors"

var (
	// ErrMalformedRecord rejects a concept whose label or definition is
	// empty after curation edits.
	ErrMalformedRecord = errors.New("concept and definition must be non-empty")
	// ErrSessionNotFound means the quiz session id is unknown or expired.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrQuestionNotFound means the question id is unknown for the
	// session or was already answered.
	ErrQuestionNotFound = errors.New("question not found or already answered")
	// ErrUnknownCategory rejects a category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")
)
