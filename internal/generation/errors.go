package generation

import "errors"

// ErrInvalidInput is returned when the prompt or message is missing.
var ErrInvalidInput = errors.New("invalid input")
