package formconfig

import "errors"

var (
	ErrUnknownField      = errors.New("unknown form field key")
	ErrMissingLabel      = errors.New("visible field must have a label")
	ErrMissingCopy       = errors.New("page copy must not be empty")
	ErrMissingSuccessURL = errors.New("redirect requires a success url")
)
