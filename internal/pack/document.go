package pack

// Document is one uploaded file plus everything derived from it. It is built
// once at the start of a run and read-only afterwards; nothing outlives the
// run that produced the final text artifact.
type Document struct {
	Filename string
	ClientID string // empty when the filename does not match the convention
	DocType  string // constants.DocTypePayslip, DocTypeStatement, or free-form
	Label    string // sort key within a doc-type group (month or date range)
	Text     string // extracted text, possibly empty on total extraction failure
}
