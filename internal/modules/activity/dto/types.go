package dto

type RecordVisitInput struct {
	VisitorID string
	Name      string
	Gender    string
	LoginTime string
}

type ExportInput struct {
	Path string
}

type ReindexInput struct{}

type YearCountOutput struct {
	Year  int
	Count int
}

type VisitorRow struct {
	Name      string
	Gender    string
	LoginTime string
}

type DashboardOutput struct {
	Daily          [7]int
	Monthly        [12]int
	Yearly         []YearCountOutput
	TotalVisits    int
	CategoryCounts map[string]int
	Visitors       []VisitorRow
}
