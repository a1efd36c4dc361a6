package pkg

import "errors"

var (
	ErrInvalidPairing = errors.New("invalid bracket pairing")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrTargetNotFound = errors.New("target not found")
	ErrUnbalanced     = errors.New("unbalanced brackets")
)
