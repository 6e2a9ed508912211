package config

import "errors"

var (
	ErrLoadEnvFile = errors.New("config: failed to load env file")
	ErrParse       = errors.New("config: failed to parse environment")
	ErrInvalid     = errors.New("config: invalid configuration")
)
