package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// readTextLayer reads the embedded text layer of a PDF, page by page.
// Non-empty page texts are joined with a newline. The pdf package is known to
// panic on some malformed inputs, so panics are converted to errors here; the
// caller treats any error as "no text layer available".
func readTextLayer(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf text layer: panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("pdf text layer: %w", err)
	}

	pages = reader.NumPage()
	var chunks []string
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// one unreadable page does not invalidate the rest
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			chunks = append(chunks, pageText)
		}
	}
	return strings.Join(chunks, "\n"), pages, nil
}
