package domain

import "fmt"

// SegmentSource names where a recipe segment's pages come from.
type SegmentSource string

const (
	// SourceClean draws pages from the clean (unsigned) agreement.
	SourceClean SegmentSource = "clean"

	// SourceSignatures draws pages from the collected signature pages,
	// one per signed copy, in signed-directory order.
	SourceSignatures SegmentSource = "signatures"
)

// Segment is one entry of an assembly recipe: a page range taken from a
// named source. Start and End follow the slice convention (inclusive
// start, exclusive end, negative indices counting from the document
// end, End=-1 meaning "through the last page") and are resolved
// against the source's page count at assembly time.
type Segment struct {
	Source SegmentSource `toml:"source"`
	Start  int           `toml:"start"`
	End    int           `toml:"end"`
}

// Resolve resolves the segment's bounds against the source's page
// count. Unlike ResolveRange, an empty resolved range is not an error:
// a recipe segment may legitimately cover zero pages (a signature page
// that is the last page of the document leaves no trailing body), in
// which case ok is false and the segment contributes nothing.
func (s Segment) Resolve(count int) (PageRange, bool, error) {
	start := s.Start
	if start < 0 {
		start = count + start
	}
	end := s.End
	if end < 0 {
		end = count + end + 1
	}
	if end > count {
		end = count
	}
	if start >= end {
		return PageRange{}, false, nil
	}
	if start < 0 {
		return PageRange{}, false, fmt.Errorf("%w: segment start %d of %d-page document", ErrInvalidRange, s.Start, count)
	}
	return PageRange{Start: start, End: end}, true, nil
}

// Recipe is a declarative page-sequence template for compiling a final
// signed agreement: the output is the concatenation of its segments in
// order. Making the interleave rule data rather than code keeps it
// testable and overridable from a TOML file.
type Recipe struct {
	Segments []Segment `toml:"segment"`
}

// Validate checks that the recipe has at least one segment and that
// every segment names a known source.
func (r Recipe) Validate() error {
	if len(r.Segments) == 0 {
		return fmt.Errorf("%w: no segments", ErrInvalidRecipe)
	}
	for i, seg := range r.Segments {
		switch seg.Source {
		case SourceClean, SourceSignatures:
		default:
			return fmt.Errorf("%w: segment %d has unknown source %q", ErrInvalidRecipe, i, seg.Source)
		}
	}
	return nil
}

// DefaultRecipe reproduces the standard operating-agreement assembly:
// the clean body up to the first signature page, then the manager
// signature page and the collected signature pages in the order the two
// signature pages appear in the clean document, then the remaining body.
// investorSig and managerSig are zero-based page indices into the clean
// document and must differ.
func DefaultRecipe(investorSig, managerSig int) Recipe {
	first := investorSig
	if managerSig < first {
		first = managerSig
	}
	last := investorSig
	if managerSig > last {
		last = managerSig
	}

	if managerSig < investorSig {
		// Manager page is contiguous with the body before it.
		return Recipe{Segments: []Segment{
			{Source: SourceClean, Start: 0, End: managerSig + 1},
			{Source: SourceSignatures, Start: 0, End: -1},
			{Source: SourceClean, Start: last + 1, End: -1},
		}}
	}
	return Recipe{Segments: []Segment{
		{Source: SourceClean, Start: 0, End: first},
		{Source: SourceSignatures, Start: 0, End: -1},
		{Source: SourceClean, Start: managerSig, End: managerSig + 1},
		{Source: SourceClean, Start: managerSig + 1, End: -1},
	}}
}
