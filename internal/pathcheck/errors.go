package pathcheck

import (
	"errors"
)

var (
	ErrInvalidInputType  = errors.New("invalid input type")
	ErrPathNotFound      = errors.New("path not found")
	ErrExtensionMismatch = errors.New("extension mismatch")
	ErrMissingArgument   = errors.New("missing argument")
)

// ArgError reports a problem with one path argument. Its message is meant to
// be shown to the user as is; Kind is one of the sentinel errors above.
type ArgError struct {
	ArgName string
	Path    string
	Kind    error
	msg     string
}

func (e *ArgError) Error() string {
	return e.msg
}

func (e *ArgError) Unwrap() error {
	return e.Kind
}
