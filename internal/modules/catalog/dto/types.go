package dto

type AddBookInput struct {
	Title     string
	Author    string
	Category  string
	PDFPath   string
	CoverPath string
}

type UpdateBookInput struct {
	BookID   string
	Title    string
	Author   string
	Category string
}

type ListBooksInput struct {
	Category string
}

type ReindexInput struct{}

type BookOutput struct {
	ID       string
	Title    string
	Author   string
	Category string
	NotePath string
}

type BookDetailOutput struct {
	ID        string
	Title     string
	Author    string
	Category  string
	PDFPath   string
	CoverPath string
	NotePath  string
	AddedAt   string
	UpdatedAt string
}
