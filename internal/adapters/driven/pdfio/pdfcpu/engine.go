// Package pdfcpu implements driven.DocumentIO on top of the pdfcpu
// library. Documents are processed through pdfcpu's file-level API, so
// every call opens, reads, and releases its inputs itself. Outputs are
// written to a temporary sibling path and renamed into place on
// success, so a failure mid-write never leaves a truncated document.
package pdfcpu

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/bindery-cli/internal/core/domain"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.DocumentIO = (*Engine)(nil)

// Engine is the pdfcpu-backed DocumentIO.
type Engine struct {
	conf *model.Configuration
}

// NewEngine creates a DocumentIO backed by pdfcpu. Validation is
// relaxed: signed agreements frequently come back from scanners and
// e-sign services with minor spec violations that strict validation
// would reject.
func NewEngine() *Engine {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Engine{conf: conf}
}

// PageCount returns the number of pages in the document at path.
func (e *Engine) PageCount(_ context.Context, path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrNotPDF, path, err)
	}
	return count, nil
}

// CopyPages writes the given zero-based pages of inPath, in order, to
// a new document at outPath.
func (e *Engine) CopyPages(_ context.Context, inPath, outPath string, pages []int) error {
	tmp := tempPath(outPath)
	// Collect preserves the order of the selection, unlike trim.
	// Page bounds are validated by the caller, so a failure here means
	// the input could not be read as a PDF.
	if err := api.CollectFile(inPath, tmp, pageSelection(pages), e.conf); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %s: %v", domain.ErrNotPDF, inPath, err)
	}
	return commit(tmp, outPath)
}

// Merge writes every page of every input, in input order, to a new
// document at outPath.
func (e *Engine) Merge(_ context.Context, inPaths []string, outPath string) error {
	if len(inPaths) == 1 {
		// pdfcpu's merge wants two or more inputs; a single input is a
		// straight copy, but only once it proves to be a PDF. Merging
		// two or more inputs validates them as a side effect; the copy
		// path must not skip that check.
		if err := api.ValidateFile(inPaths[0], e.conf); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrNotPDF, inPaths[0], err)
		}
		tmp := tempPath(outPath)
		if err := copyFile(inPaths[0], tmp); err != nil {
			_ = os.Remove(tmp)
			return err
		}
		return commit(tmp, outPath)
	}

	tmp := tempPath(outPath)
	if err := api.MergeCreateFile(inPaths, tmp, false, e.conf); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", domain.ErrNotPDF, err)
	}
	return commit(tmp, outPath)
}

// pageSelection converts zero-based page indices to the one-based
// selection strings pdfcpu expects.
func pageSelection(pages []int) []string {
	sel := make([]string, len(pages))
	for i, p := range pages {
		sel[i] = strconv.Itoa(p + 1)
	}
	return sel
}

// tempPath returns a unique sibling path for staging outPath.
func tempPath(outPath string) string {
	return outPath + ".tmp-" + uuid.NewString()
}

// commit moves a staged file into its final location.
func commit(tmp, outPath string) error {
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to finalise %s: %w", outPath, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrNotPDF, src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return nil
}
