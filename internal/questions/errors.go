package questions

import "errors"

// ErrInvalidInput is returned when neither a category nor a description is given.
var ErrInvalidInput = errors.New("category or description is required")
