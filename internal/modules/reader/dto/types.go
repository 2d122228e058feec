package dto

type OpenBookInput struct {
	BookID string
}

type TurnPageInput struct {
	BookID string
	Page   int
}

type AddBookmarkInput struct {
	BookID string
	Page   int
}

type SessionOutput struct {
	BookID     string
	Title      string
	Author     string
	Category   string
	State      string
	Page       int
	TotalPages int
	Percent    int
	Content    string
	Bookmarks  []int
}
