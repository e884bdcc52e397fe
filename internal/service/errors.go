package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing a
	// required field or carries an empty value where content is mandatory.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. The two cases are deliberately indistinguishable to
	// the caller so responses carry no account-enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Token verification failures. Every one of them is rejected identically by
// the access guard; the distinction exists for diagnostics only.
var (
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenSignatureInvalid is returned when the token's signature does
	// not verify against the server sign key.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenInvalid is returned for any other verification failure
	// (e.g. wrong issuer, missing subject).
	ErrTokenInvalid = errors.New("token is invalid")
)
