package config

import "errors"

// Resolution errors. They are returned wrapped with the offending profile
// or option name; match them with errors.Is.
var (
	ErrUnknownProfile      = errors.New("unknown profile")
	ErrInvalidProfileShape = errors.New("profile is not a mapping")
	ErrInvalidIncludeList  = errors.New("include list (*) is not a list of profile names")
	ErrUnknownOption       = errors.New("unknown option")
	ErrInvalidOptionValue  = errors.New("invalid option value")
	ErrIncludeCycle        = errors.New("include cycle")
)
