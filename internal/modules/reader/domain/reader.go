package domain

import "time"

type Page struct {
	Number int
	Text   string
}

// BookRef is the slice of catalog metadata the reader needs.
type BookRef struct {
	ID        string
	Title     string
	Author    string
	Category  string
	PDFPath   string
	CoverPath string
}

// ReadingProgress is the last page a visitor saw in a book. Page is a
// zero-based index; the renderer counts from one.
type ReadingProgress struct {
	Page      int
	UpdatedAt time.Time
}

// CompletionPercent is floor(((page+1)/totalPages)*100), and 0 when the
// page count is unknown.
func CompletionPercent(page, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	return (page + 1) * 100 / totalPages
}
