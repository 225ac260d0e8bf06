package ingest

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageCount probes the upload with pdfcpu and reports its page count.
// A failure here means the bytes are not a readable PDF; callers log it as a
// warning and continue, since extraction degrades gracefully on its own.
func PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdf probe: %w", err)
	}
	return n, nil
}
