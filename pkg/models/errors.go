package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")

	// ErrMissingLinguisticResource is returned when a tokenizer, stopword or
	// lemmatizer resource cannot be loaded. It is fatal at startup.
	ErrMissingLinguisticResource = errors.New("missing linguistic resource")
	// ErrDegenerateCorpus is returned when fitting yields an empty vocabulary.
	ErrDegenerateCorpus = errors.New("degenerate corpus: empty vocabulary")
	// ErrInvalidCorpus is returned when intents or default responses break the corpus invariants.
	ErrInvalidCorpus = errors.New("invalid corpus")
)

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}
