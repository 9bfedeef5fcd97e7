package deploys

import "errors"

var (
	// ErrFileNotFound is returned when the deployment record does not exist.
	ErrFileNotFound = errors.New("deployment record not found")
	// ErrParse is returned when the deployment record is not a YAML mapping.
	ErrParse = errors.New("parse deployment record")
	// ErrMissingKey is returned when the app or its versions mapping is absent.
	ErrMissingKey = errors.New("missing key")
)
