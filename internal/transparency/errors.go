package transparency

import "errors"

// ErrInvalidInput is returned when a request carries no answers.
var ErrInvalidInput = errors.New("invalid input")
