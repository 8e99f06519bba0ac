package mdd

import "errors"

// ErrInvalidWidth indicates a CompilationInput.MaxWidth below 1.
var ErrInvalidWidth = errors.New("mdd: maxWidth must be >= 1")
