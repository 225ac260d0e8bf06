package pack_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikwalker/precheck/internal/pack"
)

func payslip(client, label string) pack.Document {
	return pack.Document{
		Filename: fmt.Sprintf("%s_payslip_%s.pdf", client, label),
		ClientID: client,
		DocType:  "payslip",
		Label:    label,
		Text:     "net pay " + label,
	}
}

func TestClassifySortsByLabel(t *testing.T) {
	docs := []pack.Document{
		payslip("SC", "2025-04"),
		payslip("SC", "2025-02"),
		payslip("SC", "2025-03"),
	}

	a := pack.Classify(docs)

	require.Len(t, a.Payslips, 3)
	assert.Equal(t, "2025-02", a.Payslips[0].Label)
	assert.Equal(t, "2025-03", a.Payslips[1].Label)
	assert.Equal(t, "2025-04", a.Payslips[2].Label)
	assert.Empty(t, a.Statements)
	assert.Empty(t, a.Others)
	assert.Empty(t, a.Warnings)
	assert.Equal(t, "SC", a.ClientID)
}

func TestClassifyResolvesUnknownClient(t *testing.T) {
	a := pack.Classify([]pack.Document{
		{Filename: "randomfile.pdf", DocType: "unknown", Label: "randomfile"},
	})
	assert.Equal(t, "UNKNOWN_CLIENT", a.ClientID)
	require.Len(t, a.Others, 1)
}

func TestClassifyWarnsOnMixedClientIDs(t *testing.T) {
	a := pack.Classify([]pack.Document{
		payslip("SC", "2025-02"),
		payslip("JD", "2025-03"),
	})

	// first-seen id wins, processing continues
	assert.Equal(t, "SC", a.ClientID)
	require.Len(t, a.Warnings, 1)
	assert.Contains(t, a.Warnings[0], "SC and JD")
	assert.Len(t, a.Payslips, 2)
}

func TestClassifyWarnsPerMismatchingFile(t *testing.T) {
	a := pack.Classify([]pack.Document{
		payslip("SC", "2025-02"),
		payslip("JD", "2025-03"),
		payslip("JD", "2025-04"),
	})
	assert.Len(t, a.Warnings, 2)
}

func TestClassifyOthersKeepUploadOrder(t *testing.T) {
	a := pack.Classify([]pack.Document{
		{Filename: "b.pdf", DocType: "unknown", Label: "zz"},
		{Filename: "a.pdf", DocType: "unknown", Label: "aa"},
	})
	require.Len(t, a.Others, 2)
	assert.Equal(t, "b.pdf", a.Others[0].Filename)
	assert.Equal(t, "a.pdf", a.Others[1].Filename)
}

func TestRenderLayout(t *testing.T) {
	docs := []pack.Document{
		payslip("SC", "2025-03"),
		payslip("SC", "2025-02"),
		{
			Filename: "SC_statement_2025-03-08_2025-04-08.pdf",
			ClientID: "SC",
			DocType:  "statement",
			Label:    "2025-03-08_2025-04-08",
			Text:     "salary deposit",
		},
		{Filename: "randomfile.pdf", DocType: "unknown", Label: "randomfile", Text: ""},
	}

	out := pack.Classify(docs).Render()

	assert.True(t, strings.HasPrefix(out, "CLIENT_ID: SC\n"))
	assert.Contains(t, out, "\n\n[PAYSLIP 1 – LABEL: 2025-02 – FILE: SC_payslip_2025-02.pdf]\nnet pay 2025-02\n")
	assert.Contains(t, out, "\n\n[PAYSLIP 2 – LABEL: 2025-03 – FILE: SC_payslip_2025-03.pdf]\nnet pay 2025-03\n")
	assert.Contains(t, out, "\n\n[BANK STATEMENT 1 – LABEL: 2025-03-08_2025-04-08 – FILE: SC_statement_2025-03-08_2025-04-08.pdf]\nsalary deposit\n")
	// empty text still gets its block
	assert.Contains(t, out, "\n\n[OTHER DOC 1 – LABEL: randomfile – FILE: randomfile.pdf]\n\n")

	// group order: payslips, then statements, then others
	assert.Less(t, strings.Index(out, "[PAYSLIP 2"), strings.Index(out, "[BANK STATEMENT 1"))
	assert.Less(t, strings.Index(out, "[BANK STATEMENT 1"), strings.Index(out, "[OTHER DOC 1"))
}

func TestOutputFilename(t *testing.T) {
	assert.Equal(t, "SC_precheck_input.txt", pack.OutputFilename("SC"))
	assert.Equal(t, "UNKNOWN_CLIENT_precheck_input.txt", pack.OutputFilename("UNKNOWN_CLIENT"))
}

func TestPreviewHeader(t *testing.T) {
	d := payslip("SC", "2025-03")
	assert.Equal(t, "PAYSLIP – 2025-03 – SC_payslip_2025-03.pdf", pack.PreviewHeader(d))
}

func TestPreviewTruncates(t *testing.T) {
	d := pack.Document{Text: strings.Repeat("x", pack.PreviewMaxChars+100)}
	assert.Len(t, pack.Preview(d), pack.PreviewMaxChars)

	short := pack.Document{Text: "short"}
	assert.Equal(t, "short", pack.Preview(short))
}
