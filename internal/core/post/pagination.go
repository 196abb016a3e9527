package post

// PageWindow is the resolved position of one listing page.
type PageWindow struct {
	Number   int // 1-indexed, always within [1, NumPages]
	NumPages int
	Offset   int
	Limit    int
}

// Paginate clamps the requested page number into the valid range for total
// items split into pages of size. An empty result still has one (empty)
// page, so page 1 is always valid.
func Paginate(requested int, total int64, size int) PageWindow {
	if size <= 0 {
		size = 10
	}
	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	return PageWindow{
		Number:   number,
		NumPages: numPages,
		Offset:   (number - 1) * size,
		Limit:    size,
	}
}

// HasPrevious reports whether a page exists before this one.
func (w PageWindow) HasPrevious() bool { return w.Number > 1 }

// HasNext reports whether a page exists after this one.
func (w PageWindow) HasNext() bool { return w.Number < w.NumPages }
