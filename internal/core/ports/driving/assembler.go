package driving

import (
	"context"

	"github.com/custodia-labs/bindery-cli/internal/core/domain"
)

// ExtractRequest selects one page from every PDF in a directory.
type ExtractRequest struct {
	// InputDir is scanned non-recursively for PDF files.
	InputDir string

	// PageNumber is the zero-based page to extract; negative values
	// count from the end of each document.
	PageNumber int

	// OutputDir receives one single-page document per input, created
	// if absent.
	OutputDir string

	// Prefix is prepended to each input's filename to form its output
	// filename.
	Prefix string
}

// CombineRequest concatenates every PDF in a directory.
type CombineRequest struct {
	InputDir   string
	OutputDir  string
	OutputName string
}

// SliceRequest copies a contiguous page range of one document.
// StartPage is inclusive, EndPage exclusive; negative values resolve
// against the page count (EndPage -1 means "through the last page").
type SliceRequest struct {
	InputFile  string
	StartPage  int
	EndPage    int
	OutputDir  string
	OutputName string
}

// CombineListRequest concatenates an explicit ordered list of PDFs.
type CombineListRequest struct {
	InputFiles []string
	OutputDir  string
	OutputName string
}

// CompileRequest assembles a final signed agreement from a clean
// agreement and a directory of individually signed copies.
type CompileRequest struct {
	// CleanPath is the unsigned agreement.
	CleanPath string

	// SignedDir holds one signed copy per signer.
	SignedDir string

	// InvestorSigPage and ManagerSigPage are zero-based page indices
	// of the two signature pages within the clean agreement.
	InvestorSigPage int
	ManagerSigPage  int

	// Recipe overrides the default assembly template when non-nil.
	Recipe *domain.Recipe

	// OutputName defaults to "<clean stem> FINAL COMBINED.pdf".
	OutputName string
}

// Assembler is the page-assembly service: the five operations of the
// tool. Every operation validates its inputs, fails on the first
// error, and writes outputs atomically.
type Assembler interface {
	// ExtractPage extracts one page from every PDF in a directory and
	// returns the created file paths in directory order.
	ExtractPage(ctx context.Context, req ExtractRequest) ([]string, error)

	// CombineDir concatenates every PDF in a directory into one
	// document and returns its path.
	CombineDir(ctx context.Context, req CombineRequest) (string, error)

	// Slice copies a page range of one document into a new document
	// and returns its path.
	Slice(ctx context.Context, req SliceRequest) (string, error)

	// CombineList concatenates the given files, in the order given,
	// into one document and returns its path.
	CombineList(ctx context.Context, req CombineListRequest) (string, error)

	// CompileFinal assembles the final signed agreement and returns
	// its path.
	CompileFinal(ctx context.Context, req CompileRequest) (string, error)
}
