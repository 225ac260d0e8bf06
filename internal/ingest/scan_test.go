package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikwalker/precheck/internal/ingest"
)

func TestScanDir(t *testing.T) {
	root := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}
	write("SC_payslip_2025-03.pdf", "a")
	write("SC_payslip_2025-02.pdf", "b")
	write(".hidden.pdf", "c")
	write("notes.txt", "d")

	files, err := ingest.ScanDir(root)
	require.NoError(t, err)

	require.Len(t, files, 2)
	// lexical walk order defines upload order
	assert.Equal(t, "SC_payslip_2025-02.pdf", files[0].Filename)
	assert.Equal(t, "SC_payslip_2025-03.pdf", files[1].Filename)
	assert.Equal(t, []byte("b"), files[0].Data)
}

func TestScanDirSkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "x.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "JD_statement_2025-01-01_2025-02-01.pdf"), []byte("y"), 0o644))

	files, err := ingest.ScanDir(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "JD_statement_2025-01-01_2025-02-01.pdf", files[0].Filename)
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, ingest.AllowedExt(".pdf"))
	assert.True(t, ingest.AllowedExt(".PDF"))
	assert.False(t, ingest.AllowedExt(".png"))
	assert.False(t, ingest.AllowedExt(""))
}

func TestPageCountRejectsGarbage(t *testing.T) {
	_, err := ingest.PageCount([]byte("definitely not a pdf"))
	assert.Error(t, err)
}
