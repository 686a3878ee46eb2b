package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates that a monetary amount string does not match the
// recognized grammar (stray hyphen inside the number, too many distinct
// separator characters, etc.).
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnsupportedValueType indicates that a non-string amount value was not a
// recognized numeric kind.
var ErrUnsupportedValueType = errors.New("unsupported value type")
