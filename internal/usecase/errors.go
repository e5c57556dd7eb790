package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Stable error codes returned inside bulk-operation results. The web client
// maps them to translated messages, so they must not change.
const (
	CodeUnauthorized          = "scoreGenerator.unauthorized"
	CodeRequireGroupOrPlayoff = "scoreGenerator.requireGroupOrPlayoff"
	CodeGroupNotFound         = "scoreGenerator.groupNotFound"
	CodePlayoffRoundNotFound  = "scoreGenerator.playoffRoundNotFound"
)
