package pack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vikwalker/precheck/constants"
)

// PreviewMaxChars caps the per-document preview shown to the operator.
const PreviewMaxChars = 4000

// Assembly is the classified, ordered view of one run's documents.
type Assembly struct {
	ClientID   string // first non-empty client id in upload order, or UNKNOWN_CLIENT
	Payslips   []Document
	Statements []Document
	Others     []Document
	Warnings   []string
}

// Classify resolves the run client id, flags mixed client ids, and partitions
// documents into the three groups. Payslips and statements are sorted
// ascending by raw label; with the YYYY-MM / YYYY-MM-DD convention the
// lexicographic order is chronological. Labels that are not zero-padded ISO
// dates (2025-9 vs 2025-10) sort incorrectly; that is a known limitation of
// the naming convention, not corrected with date parsing. Others keep upload
// order.
func Classify(docs []Document) Assembly {
	var a Assembly

	// fold over upload order: first non-empty id wins, later differing ids warn
	for _, d := range docs {
		switch {
		case d.ClientID == "":
		case a.ClientID == "":
			a.ClientID = d.ClientID
		case d.ClientID != a.ClientID:
			a.Warnings = append(a.Warnings,
				fmt.Sprintf("mixed client IDs detected in filenames: %s and %s", a.ClientID, d.ClientID))
		}
	}
	if a.ClientID == "" {
		a.ClientID = constants.UnknownClientID
	}

	for _, d := range docs {
		switch d.DocType {
		case constants.DocTypePayslip:
			a.Payslips = append(a.Payslips, d)
		case constants.DocTypeStatement:
			a.Statements = append(a.Statements, d)
		default:
			a.Others = append(a.Others, d)
		}
	}

	sort.SliceStable(a.Payslips, func(i, j int) bool { return a.Payslips[i].Label < a.Payslips[j].Label })
	sort.SliceStable(a.Statements, func(i, j int) bool { return a.Statements[i].Label < a.Statements[j].Label })

	return a
}

// Render builds the single structured text artifact: a CLIENT_ID header line,
// then numbered payslip, bank statement and other-document blocks. Each block
// is preceded by a blank line and its text is followed by a newline, keeping
// blocks visually distinct in one flat string.
func (a Assembly) Render() string {
	var b strings.Builder
	b.WriteString("CLIENT_ID: " + a.ClientID + "\n")

	for i, d := range a.Payslips {
		writeBlock(&b, "PAYSLIP", i+1, d)
	}
	for i, d := range a.Statements {
		writeBlock(&b, "BANK STATEMENT", i+1, d)
	}
	for i, d := range a.Others {
		writeBlock(&b, "OTHER DOC", i+1, d)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, section string, n int, d Document) {
	fmt.Fprintf(b, "\n\n[%s %d – LABEL: %s – FILE: %s]\n%s\n", section, n, d.Label, d.Filename, d.Text)
}

// OutputFilename is the suggested download name for the rendered artifact.
func OutputFilename(clientID string) string {
	return clientID + "_precheck_input.txt"
}

// PreviewHeader is the human-facing one-line summary of a document.
func PreviewHeader(d Document) string {
	return fmt.Sprintf("%s – %s – %s", strings.ToUpper(d.DocType), d.Label, d.Filename)
}

// Preview returns the first PreviewMaxChars characters of a document's text.
func Preview(d Document) string {
	runes := []rune(d.Text)
	if len(runes) <= PreviewMaxChars {
		return d.Text
	}
	return string(runes[:PreviewMaxChars])
}
