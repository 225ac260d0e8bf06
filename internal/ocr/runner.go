package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner lets tests stand in for the poppler and tesseract binaries.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner shells out to the OCR toolchain, logging each invocation with
// the extractor's logger.
type execRunner struct {
	logger *slog.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()

	if err != nil {
		r.logger.Error("ocr tool failed",
			"tool", name,
			"args", args,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
			"stderr", stderrTail(errb.Bytes()),
		)
	} else {
		r.logger.Debug("ocr tool ok",
			"tool", name,
			"duration_ms", time.Since(start).Milliseconds(),
			"stdout_bytes", out.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

// stderrTail keeps the end of the tool's stderr; tesseract front-loads pages
// of warnings before the message that explains the failure.
func stderrTail(b []byte) string {
	const max = 2 << 10
	if len(b) <= max {
		return string(b)
	}
	return "...(truncated) " + string(b[len(b)-max:])
}
