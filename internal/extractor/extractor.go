// Package extractor turns uploaded resume documents into plain text.
//
// Each supported format has a Decoder. The Extractor gates on the declared
// media type, runs the matching decoder and reports failures as
// DocumentDecodeError. It keeps no state between calls, so one Extractor can
// serve concurrent requests.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Decoder converts a raw document buffer into plain text.
type Decoder interface {
	Decode(data []byte) (string, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(data []byte) (string, error)

func (f DecoderFunc) Decode(data []byte) (string, error) {
	return f(data)
}

// Document is a single upload. Data is not retained after Extract returns.
type Document struct {
	Data      []byte
	MediaType MediaType
	Filename  string
}

type Extractor struct {
	decoders map[MediaType]Decoder
	logger   *slog.Logger
}

// New returns an Extractor wired with the PDF and DOCX decoders.
func New(logger *slog.Logger) *Extractor {
	return NewWithDecoders(logger, map[MediaType]Decoder{
		MediaTypePDF:  PDFDecoder{},
		MediaTypeDOCX: DOCXDecoder{},
	})
}

// NewWithDecoders returns an Extractor that only accepts the given media types.
func NewWithDecoders(logger *slog.Logger, decoders map[MediaType]Decoder) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	d := make(map[MediaType]Decoder, len(decoders))
	for mt, dec := range decoders {
		d[mt] = dec
	}
	return &Extractor{decoders: d, logger: logger}
}

type decodeResult struct {
	text string
	err  error
}

// Extract decodes doc into plain text.
//
// It fails with *UnsupportedMediaTypeError if no decoder is registered for
// doc.MediaType and with *DocumentDecodeError if decoding fails. If ctx ends
// before the decoder returns, the context error is returned and the decoder's
// eventual result is dropped.
func (e *Extractor) Extract(ctx context.Context, doc Document) (string, error) {
	dec, ok := e.decoders[doc.MediaType]
	if !ok {
		e.logger.Debug("rejecting document", "filename", doc.Filename, "media_type", string(doc.MediaType))
		return "", &UnsupportedMediaTypeError{MediaType: doc.MediaType}
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("extract %s: %w", doc.MediaType.Label(), err)
	}

	start := time.Now()
	done := make(chan decodeResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- decodeResult{err: fmt.Errorf("decoder panic: %v", r)}
			}
		}()
		text, err := dec.Decode(doc.Data)
		done <- decodeResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		e.logger.Warn("extraction abandoned",
			"filename", doc.Filename,
			"media_type", doc.MediaType.Label(),
			"elapsed", time.Since(start),
			"error", ctx.Err())
		return "", fmt.Errorf("extract %s: %w", doc.MediaType.Label(), ctx.Err())
	case res := <-done:
		if res.err != nil {
			e.logger.Debug("decode failed", "filename", doc.Filename, "media_type", doc.MediaType.Label(), "error", res.err)
			return "", &DocumentDecodeError{MediaType: doc.MediaType, Err: res.err}
		}
		text := norm.NFC.String(res.text)
		e.logger.Debug("document decoded",
			"filename", doc.Filename,
			"media_type", doc.MediaType.Label(),
			"text_length", len(text),
			"elapsed", time.Since(start))
		return text, nil
	}
}
