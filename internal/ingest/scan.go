package ingest

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vikwalker/precheck/constants"
)

// File is one uploaded or scanned input, held fully in memory for the run.
type File struct {
	Filename string
	Data     []byte
}

// AllowedExt checks if a file extension is in the allowed set (pdf only).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// ScanDir collects the PDF files directly under root and in subdirectories,
// skipping hidden entries. Walk order (lexical) defines upload order.
func ScanDir(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && IsHidden(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsHidden(path) || !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, File{Filename: filepath.Base(path), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
