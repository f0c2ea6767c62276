package domain

import "errors"

var (
	// ErrIdentityNotFound is returned when the identity provider has no
	// identity for the given id or email.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrProfileNotFound is returned when no profile row exists for the
	// given user id.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrKratosUnavailable is returned when the identity provider cannot
	// be reached or answers with an unexpected status.
	ErrKratosUnavailable = errors.New("kratos unavailable")
)
