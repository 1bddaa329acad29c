package extractor

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrDocumentDecode       = errors.New("document decode failed")
)

// UnsupportedMediaTypeError is returned before any decoding is attempted.
type UnsupportedMediaTypeError struct {
	MediaType MediaType
}

func (e *UnsupportedMediaTypeError) Error() string {
	if e.MediaType == "" {
		return "unsupported media type: none declared, only PDF and DOCX are accepted"
	}
	return fmt.Sprintf("unsupported media type %q: only PDF and DOCX are accepted", string(e.MediaType))
}

func (e *UnsupportedMediaTypeError) Is(target error) bool {
	return target == ErrUnsupportedMediaType
}

// DocumentDecodeError wraps the decoder's own diagnostic. No text is ever
// returned alongside it.
type DocumentDecodeError struct {
	MediaType MediaType
	Err       error
}

func (e *DocumentDecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document: %v", e.MediaType.Label(), e.Err)
}

func (e *DocumentDecodeError) Unwrap() error {
	return e.Err
}

func (e *DocumentDecodeError) Is(target error) bool {
	return target == ErrDocumentDecode
}
