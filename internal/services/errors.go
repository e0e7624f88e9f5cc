package services

import "errors"

var (
	// ErrUnsupportedMediaType rejects upload content types other than PDF and JSON.
	ErrUnsupportedMediaType = errors.New("only PDF or JSON files are supported")

	// ErrInvalidDocument marks an upload that could not be opened or parsed.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrModelOutputInvalid means the model never produced schema-valid JSON
	// within the attempt budget.
	ErrModelOutputInvalid = errors.New("model output invalid")
)
