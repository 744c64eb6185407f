// Package errs defines the error categories the API sorts failures into.
// Handlers match against these sentinels with errors.Is to pick a status
// code; lower layers wrap them with fmt.Errorf("%w: ...") to add detail.
package errs

import "errors"

var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication marks a missing or unusable session token.
	ErrAuthentication = errors.New("authentication required")

	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPaymentGateway marks any failure talking to the payment processor.
	ErrPaymentGateway = errors.New("payment gateway failure")

	// ErrPersistence marks a database failure.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotification marks a failed email send. Never surfaced as a
	// request failure, only logged.
	ErrNotification = errors.New("notification failure")

	// ErrUniqueness marks a unique-index violation on create.
	ErrUniqueness = errors.New("uniqueness violation")

	// ErrConfiguration marks missing required environment configuration.
	ErrConfiguration = errors.New("configuration error")
)
