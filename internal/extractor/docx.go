package extractor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const wordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// DOCXDecoder extracts the raw text of the document body in a single pass.
// Paragraphs end in a newline; tabs and line breaks inside runs are kept.
type DOCXDecoder struct{}

func (DOCXDecoder) Decode(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer doc.Close()

	return bodyText(doc.Editable().GetContent())
}

// bodyText walks word/document.xml and collects the text of w:t elements.
func bodyText(documentXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		textBuilder strings.Builder
		runDepth    int
		inText      bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingML {
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = true
			case "tab":
				// w:tab also appears under w:pPr/w:tabs as a tab stop.
				if runDepth > 0 {
					textBuilder.WriteByte('\t')
				}
			case "br", "cr":
				if runDepth > 0 {
					textBuilder.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingML {
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth--
			case "t":
				inText = false
			case "p":
				textBuilder.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(t)
			}
		}
	}

	return strings.TrimRight(textBuilder.String(), "\n"), nil
}
