package manifest

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/vikwalker/precheck/internal/pack"
)

// Service renders an XLSX manifest for a run: one row per document with its
// classification and extraction summary. The manifest is an operator aid and
// is not part of the LLM input artifact.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const sheet = "Documents"

// BuildXLSX returns an XLSX workbook (as bytes) describing the run.
func (s *Service) BuildXLSX(run pack.RunResult) ([]byte, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"#",
		"Filename",
		"Client ID",
		"Doc Type",
		"Label",
		"Method",
		"Pages",
		"Characters",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, d := range run.Documents {
		res := run.Extractions[i]
		row := []any{
			i + 1,
			d.Filename,
			d.ClientID,
			d.DocType,
			d.Label,
			res.Method,
			res.Pages,
			len(d.Text),
		}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	s.logger.Debug("manifest.xlsx.built", "run_id", run.RunID, "documents", len(run.Documents), "bytes", buf.Len())
	return buf.Bytes(), nil
}
