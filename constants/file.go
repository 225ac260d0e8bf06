package constants

import "strings"

// AllowedExtensions holds the allowed file extensions for document intake.
// This tool consumes PDFs only; payslip photos must be converted upstream.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
