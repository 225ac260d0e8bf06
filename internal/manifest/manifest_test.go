package manifest_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vikwalker/precheck/internal/extract"
	"github.com/vikwalker/precheck/internal/manifest"
	"github.com/vikwalker/precheck/internal/pack"
)

func TestBuildXLSX(t *testing.T) {
	run := pack.RunResult{
		ClientID: "SC",
		Documents: []pack.Document{
			{
				Filename: "SC_payslip_2025-03.pdf",
				ClientID: "SC",
				DocType:  "payslip",
				Label:    "2025-03",
				Text:     "net pay 1234.56",
			},
		},
		Extractions: []extract.Result{
			{Method: extract.MethodPDFText, Pages: 2},
		},
	}

	data, err := manifest.NewService(nil).BuildXLSX(run)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Documents")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"#", "Filename", "Client ID", "Doc Type", "Label", "Method", "Pages", "Characters"}, rows[0])
	assert.Equal(t, "SC_payslip_2025-03.pdf", rows[1][1])
	assert.Equal(t, "payslip", rows[1][3])
	assert.Equal(t, "2025-03", rows[1][4])
	assert.Equal(t, "pdf-text", rows[1][5])
}
