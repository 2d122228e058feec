package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category is the school level a book is shelved under.
type Category string

const (
	CategorySD      Category = "SD"
	CategorySMP     Category = "SMP"
	CategorySMA     Category = "SMA"
	CategoryLainnya Category = "Lainnya"
)

const (
	ManagedShelfStart = "<!-- pustaka:shelf:start -->"
	ManagedShelfEnd   = "<!-- pustaka:shelf:end -->"
	SchemaVersion     = 1
)

func Categories() []Category {
	return []Category{CategorySD, CategorySMP, CategorySMA, CategoryLainnya}
}

type Book struct {
	ID           string
	Title        string
	Author       string
	Category     Category
	PDFPath      string
	CoverPath    string
	NotePath     string
	Slug         string
	AddedAt      time.Time
	UpdatedAt    time.Time
	ManagedLinks []string
}

func (c Category) Validate() error {
	switch c {
	case CategorySD, CategorySMP, CategorySMA, CategoryLainnya:
		return nil
	default:
		return fmt.Errorf("unsupported category %q", string(c))
	}
}

func (b Book) Validate() error {
	if err := b.Category.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(b.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	return nil
}

type BookDocument struct {
	Book Book
	Body string
}
