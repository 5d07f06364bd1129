// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidInput is the root error for malformed conjugation requests.
	// More specific input errors wrap it so callers can match with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidVerb is returned when a verb is empty or does not end in -ar, -er, or -ir.
	ErrInvalidVerb = fmt.Errorf("%w: verb must end in -ar, -er, or -ir", ErrInvalidInput)

	// ErrInvalidTense is returned when a tense is not a recognized subjunctive tense.
	ErrInvalidTense = fmt.Errorf("%w: unrecognized tense", ErrInvalidInput)

	// ErrInvalidPerson is returned when a grammatical person is not recognized.
	ErrInvalidPerson = fmt.Errorf("%w: unrecognized grammatical person", ErrInvalidInput)

	// ErrInvalidQuality is returned when an SM-2 quality score is outside [0,5].
	ErrInvalidQuality = errors.New("quality score must be between 0 and 5")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
