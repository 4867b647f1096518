// Package plaindoc implements driven.DocumentIO over plain text files
// holding one "page" per line. It exists so service and CLI behaviour
// can be tested without real PDF fixtures: page ordering, counts, and
// atomic writes are all observable from file content.
package plaindoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/bindery-cli/internal/core/domain"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.DocumentIO = (*Engine)(nil)

// Engine is a text-file DocumentIO for tests.
type Engine struct{}

// NewEngine creates a plain-text DocumentIO.
func NewEngine() *Engine {
	return &Engine{}
}

// WriteDoc writes a document with the given pages to path.
func WriteDoc(path string, pages []string) error {
	return os.WriteFile(path, []byte(strings.Join(pages, "\n")+"\n"), 0644)
}

// ReadPages returns the pages of the document at path.
func ReadPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotPDF, path, err)
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// PageCount returns the number of pages in the document at path.
func (e *Engine) PageCount(_ context.Context, path string) (int, error) {
	pages, err := ReadPages(path)
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}

// CopyPages writes the given zero-based pages of inPath, in order, to
// a new document at outPath.
func (e *Engine) CopyPages(_ context.Context, inPath, outPath string, pages []int) error {
	src, err := ReadPages(inPath)
	if err != nil {
		return err
	}

	out := make([]string, 0, len(pages))
	for _, p := range pages {
		if p < 0 || p >= len(src) {
			return fmt.Errorf("%w: page %d of %d-page document %s", domain.ErrPageOutOfRange, p, len(src), inPath)
		}
		out = append(out, src[p])
	}
	return writeAtomic(outPath, out)
}

// Merge writes every page of every input, in input order, to a new
// document at outPath.
func (e *Engine) Merge(_ context.Context, inPaths []string, outPath string) error {
	var out []string
	for _, in := range inPaths {
		pages, err := ReadPages(in)
		if err != nil {
			return err
		}
		out = append(out, pages...)
	}
	return writeAtomic(outPath, out)
}

func writeAtomic(outPath string, pages []string) error {
	tmp := outPath + ".tmp"
	if err := WriteDoc(tmp, pages); err != nil {
		return err
	}
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to finalise %s: %w", outPath, err)
	}
	return nil
}
