package credential

import "errors"

// The error set is open. Handlers of the credential protocol may
// produce errors not listed here, so callers should match with
// [errors.Is] and treat unknown errors as fatal to the exchange.
var (
	// ErrInvalidLine indicates an attribute line without a key=value
	// separator was received.
	ErrInvalidLine = errors.New("invalid credential attribute line")
	// ErrLineTooLong indicates an attribute line exceeded
	// [MaxLineLength].
	ErrLineTooLong = errors.New("credential attribute line too long")
	// ErrInvalidURL indicates a url attribute value could not be
	// parsed as an absolute URL.
	ErrInvalidURL = errors.New("invalid url attribute")
)
