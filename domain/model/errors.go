package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the metadata pipeline
type ErrorKind string

const (
	KindExtractionFailed  ErrorKind = "ExtractionFailed"
	KindMissingCredential ErrorKind = "MissingCredential"
	KindNotFound          ErrorKind = "NotFound"
	KindUpstream          ErrorKind = "UpstreamError"
	KindBothSourcesFailed ErrorKind = "BothSourcesFailed"
)

var (
	ErrExtractionFailed  = errors.New("metadata: video ID not extractable")
	ErrMissingCredential = errors.New("metadata: missing API credential")
	ErrNotFound          = errors.New("metadata: video not found")
	ErrUpstream          = errors.New("metadata: upstream error")
	ErrBothSourcesFailed = errors.New("metadata: both sources failed")
)

var kindSentinels = map[ErrorKind]error{
	KindExtractionFailed:  ErrExtractionFailed,
	KindMissingCredential: ErrMissingCredential,
	KindNotFound:          ErrNotFound,
	KindUpstream:          ErrUpstream,
	KindBothSourcesFailed: ErrBothSourcesFailed,
}

// FetchError is the typed error returned by adapters and the source selector.
// errors.Is matches it against the sentinel of its Kind and against anything in the Err chain.
type FetchError struct {
	Kind    ErrorKind
	Source  Source
	Status  int // upstream HTTP status, 0 when unknown
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return kindSentinels[e.Kind].Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// NewFetchError builds a FetchError with a formatted message
func NewFetchError(kind ErrorKind, source Source, err error, format string, args ...interface{}) *FetchError {
	return &FetchError{
		Kind:    kind,
		Source:  source,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// KindOf reports the ErrorKind of err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
