package wcError

import (
	"errors"
	"fmt"
)

const (
	CODEC_ERROR_SEVERITY_ERROR = "error"
	CODEC_ERROR_SEVERITY_INFO  = "info"
)

// Error kinds: stream errors mean a handle was unusable before any byte
// moved; corrupt data means a structurally broken record was detected.
const (
	CODEC_ERROR_KIND_STREAM       = "stream"
	CODEC_ERROR_KIND_CORRUPT_DATA = "corrupt data"
)

type CodecError struct {
	Severity string
	Kind     string
	Message  string
}

func (ce *CodecError) Error() string {
	if ce.Kind == "" {
		return fmt.Sprintf("(%s) %s", ce.Severity, ce.Message)
	}

	return fmt.Sprintf("(%s) %s: %s", ce.Severity, ce.Kind, ce.Message)
}

func NewStreamError(message string) *CodecError {
	return &CodecError{
		Severity: CODEC_ERROR_SEVERITY_ERROR,
		Kind:     CODEC_ERROR_KIND_STREAM,
		Message:  message,
	}
}

func NewCorruptDataError(message string) *CodecError {
	return &CodecError{
		Severity: CODEC_ERROR_SEVERITY_ERROR,
		Kind:     CODEC_ERROR_KIND_CORRUPT_DATA,
		Message:  message,
	}
}

func IsStreamError(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce) && ce.Kind == CODEC_ERROR_KIND_STREAM
}

func IsCorruptData(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce) && ce.Kind == CODEC_ERROR_KIND_CORRUPT_DATA
}
