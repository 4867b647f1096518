package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bindery-cli/internal/adapters/driven/pdfio/plaindoc"
)

func TestSliceCmd_Use(t *testing.T) {
	assert.Equal(t, "slice [input-file]", sliceCmd.Use)
}

func TestSliceCmd_EndPageDefaultsToDocumentEnd(t *testing.T) {
	flag := sliceCmd.Flags().Lookup("end-page")
	require.NotNil(t, flag, "end-page flag should exist")
	assert.Equal(t, "-1", flag.DefValue)
}

func TestSliceCmd_CopiesRange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.pdf")
	require.NoError(t, plaindoc.WriteDoc(in, []string{"p0", "p1", "p2", "p3", "p4"}))

	_, err := execute(t, "slice", in,
		"--start-page", "2",
		"--end-page", "4",
		"--output-name", "middle.pdf")

	require.NoError(t, err)

	// Default output dir is the input file's directory.
	pages, err := plaindoc.ReadPages(filepath.Join(dir, "middle.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p3"}, pages)
}

func TestSliceCmd_InvalidRangeFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.pdf")
	require.NoError(t, plaindoc.WriteDoc(in, []string{"p0", "p1"}))

	_, err := execute(t, "slice", in, "--start-page", "4", "--end-page", "2")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid page range")
}
