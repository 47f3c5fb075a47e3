package views

import "fmt"

// Paginator tracks a cursor over a list of rows. The visible page is always
// the one holding the cursor.
type Paginator struct {
	size   int
	total  int
	cursor int
}

// NewPaginator creates a paginator showing size rows per page
func NewPaginator(size int) *Paginator {
	if size <= 0 {
		size = 10
	}
	return &Paginator{size: size}
}

// SetTotal updates the row count and pulls the cursor back into range
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	if p.cursor >= p.total {
		p.cursor = max(p.total-1, 0)
	}
}

// SetPageSize changes the rows per page; non-positive sizes are ignored
func (p *Paginator) SetPageSize(size int) {
	if size > 0 {
		p.size = size
	}
}

// Cursor returns the absolute index of the highlighted row
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the highlight one row up
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

// CursorDown moves the highlight one row down
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	return true
}

// NextPage puts the cursor on the first row of the following page
func (p *Paginator) NextPage() bool {
	first := (p.page() + 1) * p.size
	if first >= p.total {
		return false
	}
	p.cursor = first
	return true
}

// PrevPage puts the cursor on the first row of the preceding page
func (p *Paginator) PrevPage() bool {
	if p.page() == 0 {
		return false
	}
	p.cursor = (p.page() - 1) * p.size
	return true
}

// VisibleRange returns the half-open row range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.page() * p.size
	return start, min(start+p.size, p.total)
}

// TotalPages is at least 1, even for an empty list
func (p *Paginator) TotalPages() int {
	return max((p.total+p.size-1)/p.size, 1)
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.page() + 1
}

// Reset forgets the rows and the cursor
func (p *Paginator) Reset() {
	p.cursor = 0
	p.total = 0
}

// Status renders "page x/y" for list footers
func (p *Paginator) Status() string {
	return fmt.Sprintf("page %d/%d", p.CurrentPage(), p.TotalPages())
}

func (p *Paginator) page() int {
	return p.cursor / p.size
}
