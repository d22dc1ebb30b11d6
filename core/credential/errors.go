package credential

import "errors"

var (
	// ErrNoCredential is returned when the request carries no session
	// credential at all. Callers typically treat this as an anonymous request.
	ErrNoCredential = errors.New("no session credential in request")

	// ErrInvalidCredential is returned when a credential is present but fails
	// verification or decoding. Callers should reject the session.
	ErrInvalidCredential = errors.New("invalid session credential")

	// ErrEmptySigningKey is returned when constructing a JWT transport
	// without a signing key.
	ErrEmptySigningKey = errors.New("signing key is required")
)
