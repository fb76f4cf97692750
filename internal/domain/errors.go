package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidTeam   = "invalid team"
	ErrMsgInvalidPlayer = "invalid player count"
	ErrMsgDuplicateTeam = "duplicate team"
	ErrMsgEmptyRoster   = "roster has no teams"
)

// Common domain errors
var (
	ErrInvalidTeam   = errors.New(ErrMsgInvalidTeam)
	ErrInvalidPlayer = errors.New(ErrMsgInvalidPlayer)
	ErrDuplicateTeam = errors.New(ErrMsgDuplicateTeam)
	ErrEmptyRoster   = errors.New(ErrMsgEmptyRoster)
)
