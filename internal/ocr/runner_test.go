package ocr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStderrTailShortOutputVerbatim(t *testing.T) {
	assert.Equal(t, "tesseract: boom", stderrTail([]byte("tesseract: boom")))
	assert.Equal(t, "", stderrTail(nil))
}

func TestStderrTailTruncatesLongOutput(t *testing.T) {
	noise := bytes.Repeat([]byte("w"), 4096)
	tail := []byte("Error: could not initialize tesseract")
	got := stderrTail(append(noise, tail...))

	assert.True(t, strings.HasPrefix(got, "...(truncated) "))
	assert.True(t, strings.HasSuffix(got, string(tail)), "the end of stderr must survive truncation")
	assert.Less(t, len(got), 4096+len(tail))
}
