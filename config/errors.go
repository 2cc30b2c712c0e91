package config

import "errors"

var (
	// ErrInvalid indicates a configuration value out of range or unknown
	ErrInvalid = errors.New("config: invalid value")
	// ErrRead indicates the configuration file could not be read or decoded
	ErrRead = errors.New("config: cannot load file")
)
