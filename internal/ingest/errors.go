package ingest

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine readable class of a terminal ingestion failure.
type ErrorKind string

const (
	KindSchema   ErrorKind = "SchemaError"
	KindEncoding ErrorKind = "EncodingError"
	KindStorage  ErrorKind = "StorageError"
)

var (
	ErrMissingColumns = errors.New("required columns missing")
	ErrBinaryContent  = errors.New("header line contains NUL bytes, input is not text")
)

// IngestionError aborts a whole upload. Inserted is the number of rows
// durably committed before the failure.
type IngestionError struct {
	Kind     ErrorKind
	Err      error
	Inserted int64
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a terminal error, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var ingestErr *IngestionError
	if errors.As(err, &ingestErr) {
		return ingestErr.Kind
	}
	return ""
}

func schemaError(err error) error {
	return &IngestionError{Kind: KindSchema, Err: err}
}

func encodingError(err error) error {
	return &IngestionError{Kind: KindEncoding, Err: err}
}
