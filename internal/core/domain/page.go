package domain

import "fmt"

// PageRange is a contiguous run of pages, inclusive start, exclusive end.
// Both bounds are zero-based and already resolved (non-negative).
type PageRange struct {
	Start int
	End   int
}

// Len returns the number of pages in the range.
func (r PageRange) Len() int {
	return r.End - r.Start
}

// Pages expands the range into zero-based page indices in order.
func (r PageRange) Pages() []int {
	pages := make([]int, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		pages = append(pages, i)
	}
	return pages
}

// ResolveIndex resolves a possibly negative page index against a page
// count. Negative indices count from the end (-1 is the last page).
// Returns ErrPageOutOfRange if the resolved index is outside [0, count).
func ResolveIndex(index, count int) (int, error) {
	resolved := index
	if index < 0 {
		resolved = count + index
	}
	if resolved < 0 || resolved >= count {
		return 0, fmt.Errorf("%w: page %d of %d-page document", ErrPageOutOfRange, index, count)
	}
	return resolved, nil
}

// ResolveRange resolves a half-open [start, end) range against a page
// count. A negative start counts from the end like ResolveIndex. A
// negative end resolves as count+end+1, so end=-1 means "through the
// last page". Returns ErrInvalidRange if either bound falls outside the
// document or the resolved range is empty or inverted.
func ResolveRange(start, end, count int) (PageRange, error) {
	s := start
	if s < 0 {
		s = count + s
	}
	e := end
	if e < 0 {
		e = count + e + 1
	}
	if s < 0 || s >= count {
		return PageRange{}, fmt.Errorf("%w: start page %d of %d-page document", ErrInvalidRange, start, count)
	}
	if e <= s || e > count {
		return PageRange{}, fmt.Errorf("%w: pages [%d, %d) of %d-page document", ErrInvalidRange, s, e, count)
	}
	return PageRange{Start: s, End: e}, nil
}
