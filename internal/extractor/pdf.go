package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// wordGap is the TJ displacement, in thousandths of an em, from which a gap
// inside a kerned array reads as a space rather than kerning.
const wordGap = 100

// PDFDecoder reads every page in order. Each text-showing operator yields one
// item; items on a page are joined with single spaces and pages are
// concatenated without a separator, so words at a page break can run together.
type PDFDecoder struct{}

func (PDFDecoder) Decode(data []byte) (string, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			return "", fmt.Errorf("page %d of %d is missing", i, numPages)
		}

		items, err := pageItems(page)
		if err != nil {
			return "", fmt.Errorf("failed to read text on page %d: %w", i, err)
		}

		textBuilder.WriteString(strings.Join(items, " "))
	}

	return textBuilder.String(), nil
}

// rawEncoding passes string bytes through when no font has been selected.
type rawEncoding struct{}

func (rawEncoding) Decode(raw string) string { return raw }

// pageItems walks the page's content streams in order and returns one item
// per Tj, TJ, ' or " operator. The strings of a TJ array form a single item;
// only displacements of at least wordGap become spaces.
func pageItems(page pdf.Page) (items []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, err = nil, fmt.Errorf("malformed content stream: %v", r)
		}
	}()

	fonts := make(map[string]pdf.Font)
	for _, name := range page.Fonts() {
		fonts[name] = page.Font(name)
	}

	var enc pdf.TextEncoding = rawEncoding{}
	show := func(s string) {
		if s != "" {
			items = append(items, s)
		}
	}

	interpret := func(strm pdf.Value) {
		pdf.Interpret(strm, func(stk *pdf.Stack, op string) {
			n := stk.Len()
			args := make([]pdf.Value, n)
			for i := n - 1; i >= 0; i-- {
				args[i] = stk.Pop()
			}

			switch op {
			case "Tf":
				if n != 2 {
					panic("bad Tf")
				}
				if font, ok := fonts[args[0].Name()]; ok {
					enc = font.Encoder()
				} else {
					enc = rawEncoding{}
				}
			case "Tj", "'":
				if n < 1 {
					panic("bad " + op)
				}
				show(enc.Decode(args[n-1].RawString()))
			case "\"":
				if n != 3 {
					panic("bad \"")
				}
				show(enc.Decode(args[2].RawString()))
			case "TJ":
				if n != 1 {
					panic("bad TJ")
				}
				show(kernedText(args[0], enc))
			}
		})
	}

	contents := page.V.Key("Contents")
	switch contents.Kind() {
	case pdf.Array:
		for i := 0; i < contents.Len(); i++ {
			interpret(contents.Index(i))
		}
	case pdf.Stream:
		interpret(contents)
	}

	return items, nil
}

// kernedText joins the strings of a TJ array.
func kernedText(arr pdf.Value, enc pdf.TextEncoding) string {
	var b strings.Builder
	for i := 0; i < arr.Len(); i++ {
		v := arr.Index(i)
		switch v.Kind() {
		case pdf.String:
			b.WriteString(enc.Decode(v.RawString()))
		case pdf.Integer, pdf.Real:
			// Negative displacements move the pen right.
			if -v.Float64() >= wordGap && b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
