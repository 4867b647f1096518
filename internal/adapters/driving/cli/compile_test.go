package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bindery-cli/internal/adapters/driven/pdfio/plaindoc"
)

func TestCompileFinalCmd_Use(t *testing.T) {
	assert.Equal(t, "compile-final [clean-oa] [signed-dir] [investor-sig-page] [manager-sig-page]", compileFinalCmd.Use)
}

func TestCompileFinalCmd_RequiresFourArgs(t *testing.T) {
	_, err := execute(t, "compile-final", "clean.pdf", "signed")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 4 arg(s)")
}

func TestCompileFinalCmd_RejectsNonNumericPage(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "compile-final", "clean.pdf", "signed", "four", "3")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid investor signature page")
}

func compileCmdFixture(t *testing.T) (cleanPath, signedDir string) {
	t.Helper()
	root := t.TempDir()
	cleanPath = filepath.Join(root, "OA.pdf")
	signedDir = filepath.Join(root, "signed")
	require.NoError(t, os.Mkdir(signedDir, 0755))

	require.NoError(t, plaindoc.WriteDoc(cleanPath, []string{"c0", "c1", "mgr-sig", "inv-sig", "c4"}))
	require.NoError(t, plaindoc.WriteDoc(filepath.Join(signedDir, "a.pdf"), []string{"a0", "a1", "a2", "signed-a", "a4"}))
	return cleanPath, signedDir
}

func TestCompileFinalCmd_AssemblesFinalDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	cleanPath, signedDir := compileCmdFixture(t)

	out, err := execute(t, "compile-final", cleanPath, signedDir, "3", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Created:")

	final := filepath.Join(filepath.Dir(cleanPath), "OA FINAL COMBINED.pdf")
	pages, err := plaindoc.ReadPages(final)
	require.NoError(t, err)
	assert.Equal(t, []string{"c0", "c1", "mgr-sig", "signed-a", "c4"}, pages)
}

func TestCompileFinalCmd_WithRecipeFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	cleanPath, signedDir := compileCmdFixture(t)

	recipePath := filepath.Join(t.TempDir(), "recipe.toml")
	recipe := `
[[segment]]
source = "signatures"
start = 0
end = -1

[[segment]]
source = "clean"
start = 0
end = -1
`
	require.NoError(t, os.WriteFile(recipePath, []byte(recipe), 0600))

	_, err := execute(t, "compile-final", cleanPath, signedDir, "3", "2",
		"--recipe", recipePath,
		"--output-name", "sigs-first.pdf")

	require.NoError(t, err)

	pages, err := plaindoc.ReadPages(filepath.Join(filepath.Dir(cleanPath), "sigs-first.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []string{"signed-a", "c0", "c1", "mgr-sig", "inv-sig", "c4"}, pages)
}
