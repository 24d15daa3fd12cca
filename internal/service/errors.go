package service

import "errors"

var ( // Define custom errors
	// ErrDuplicateAccount: the store rejected the registration because the
	// username or email is already taken.
	ErrDuplicateAccount = errors.New("a user with this username or email already exists")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so that login responses do not reveal which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmailNotVerified: credentials checked out up to the verification
	// gate, but the account's email has not been confirmed.
	ErrEmailNotVerified = errors.New("email address is not verified")

	// ErrTokenNotRedeemed: the verification token is unknown, expired or
	// already consumed. Deliberately one error for all three cases.
	ErrTokenNotRedeemed = errors.New("verification token is invalid or already used")

	// ErrProfileNotFound: the account referenced by a valid session token no
	// longer resolves to a profile row.
	ErrProfileNotFound = errors.New("profile not found")
)
