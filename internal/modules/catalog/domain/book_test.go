package domain_test

import (
	"testing"

	"pustaka/internal/modules/catalog/domain"
)

func TestCategoryValidate(t *testing.T) {
	t.Parallel()
	for _, c := range domain.Categories() {
		if err := c.Validate(); err != nil {
			t.Fatalf("category %q should be valid: %v", c, err)
		}
	}
	if err := domain.Category("TK").Validate(); err == nil {
		t.Fatalf("unknown category should be rejected")
	}
}

func TestBookValidate(t *testing.T) {
	t.Parallel()
	book := domain.Book{ID: "b1", Title: "Matematika Kelas 4", Category: domain.CategorySD, Slug: "matematika-kelas-4"}
	if err := book.Validate(); err != nil {
		t.Fatalf("valid book rejected: %v", err)
	}

	missingTitle := book
	missingTitle.Title = "  "
	if err := missingTitle.Validate(); err == nil {
		t.Fatalf("blank title should be rejected")
	}

	missingID := book
	missingID.ID = ""
	if err := missingID.Validate(); err == nil {
		t.Fatalf("missing id should be rejected")
	}
}
