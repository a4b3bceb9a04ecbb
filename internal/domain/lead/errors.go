package lead

import "errors"

var (
	ErrLeadNotFound          = errors.New("lead not found")
	ErrEmptyNote             = errors.New("note content is empty")
	ErrInvalidStatus         = errors.New("unknown lead status")
	ErrInvalidClassification = errors.New("unknown lead classification")
)
