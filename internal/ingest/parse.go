package ingest

import (
	"strings"

	"github.com/vikwalker/precheck/constants"
)

// ParseName parses the upload naming convention
// <CLIENT_ID>_<DOC_TYPE>_<LABEL>.pdf, e.g. SC_payslip_2025-03.pdf.
//
// The label keeps any further underscores, so statement ranges like
// SC_statement_2025-03-08_2025-04-08.pdf parse to label
// "2025-03-08_2025-04-08". A name with fewer than three segments degrades to
// doc type "unknown" with the whole stem as label.
func ParseName(filename string) (clientID, docType, label string) {
	stem := filename
	if i := strings.LastIndex(stem, "."); i >= 0 {
		stem = stem[:i]
	}

	parts := strings.Split(stem, "_")
	if len(parts) < 3 {
		return "", constants.DocTypeUnknown, stem
	}
	return parts[0], parts[1], strings.Join(parts[2:], "_")
}
