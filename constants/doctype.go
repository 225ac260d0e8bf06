package constants

// Doc types derived from filename position two. Classification is an exact
// string match; anything else lands in the "other" group.
const (
	DocTypePayslip   = "payslip"
	DocTypeStatement = "statement"
	DocTypeUnknown   = "unknown"
)

// UnknownClientID is the resolved client id when no filename carried one.
const UnknownClientID = "UNKNOWN_CLIENT"
