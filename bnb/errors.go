package bnb

import "errors"

// ErrInvalidThreads indicates a Config with NbThreads < 1.
var ErrInvalidThreads = errors.New("bnb: nbThreads must be >= 1")

// ErrNilFrontier indicates a Config with a nil Frontier.
var ErrNilFrontier = errors.New("bnb: frontier must not be nil")
