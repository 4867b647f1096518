package driven

import "context"

// DocumentIO performs page-level I/O on PDF documents.
// It is the external Document I/O collaborator: documents are opened,
// read, and released within each call, and outputs are written
// atomically so a failed call never leaves a truncated file behind.
type DocumentIO interface {
	// PageCount returns the number of pages in the document at path.
	// Returns domain.ErrNotPDF (wrapped) if the file cannot be opened
	// as a PDF.
	PageCount(ctx context.Context, path string) (int, error)

	// CopyPages writes a new document at outPath containing the given
	// zero-based pages of inPath, in the order given.
	CopyPages(ctx context.Context, inPath, outPath string, pages []int) error

	// Merge writes a new document at outPath containing every page of
	// every input, in the order the inputs are given.
	Merge(ctx context.Context, inPaths []string, outPath string) error
}
