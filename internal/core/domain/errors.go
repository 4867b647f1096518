package domain

import "errors"

// Domain errors represent assembly failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotPDF indicates a file could not be opened as a PDF document.
	ErrNotPDF = errors.New("not a PDF document")

	// ErrPageOutOfRange indicates a resolved page index falls outside
	// the document's page count.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrInvalidRange indicates a page range is inverted or out of
	// bounds after negative indices are resolved.
	ErrInvalidRange = errors.New("invalid page range")

	// ErrEmptyDirectory indicates a directory operation found no PDF files.
	ErrEmptyDirectory = errors.New("no PDF files in directory")

	// ErrEmptyList indicates an explicit file list was empty.
	ErrEmptyList = errors.New("no input files given")

	// ErrMissingSignaturePage indicates a signed copy has no page at the
	// configured signature page index.
	ErrMissingSignaturePage = errors.New("missing signature page")

	// ErrInvalidRecipe indicates a recipe references an unknown source
	// or has no segments.
	ErrInvalidRecipe = errors.New("invalid recipe")
)
