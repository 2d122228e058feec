package domain

import (
	"math"
	"time"

	"pustaka/internal/platform/timeparse"
)

// VisitRecord is one logged visit. LoginTime is kept raw because older
// records carry legacy delimited strings alongside RFC 3339 ones.
type VisitRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	LoginTime string `json:"loginTime"`
}

type YearCount struct {
	Year  int
	Count int
}

// Totals is the bucketized view of the visit log. Daily index 6 is the
// day of "now", index 0 six days before. Monthly and Daily count only
// records from the current year; Yearly counts every record that
// parsed, in first-seen order.
type Totals struct {
	Daily   [7]int
	Monthly [12]int
	Yearly  []YearCount
}

// Aggregate buckets records against now. Records whose timestamp does
// not parse are skipped entirely. Output depends only on the inputs.
func Aggregate(records []VisitRecord, now time.Time) Totals {
	totals := Totals{}
	yearIndex := map[int]int{}
	for _, record := range records {
		parsed, err := timeparse.Parse(record.LoginTime)
		if err != nil {
			continue
		}
		if parsed.Year() == now.Year() {
			totals.Monthly[int(parsed.Month())-1]++
			diffDays := int(math.Floor(now.Sub(parsed).Hours() / 24))
			if diffDays >= 0 && diffDays < 7 {
				totals.Daily[6-diffDays]++
			}
		}
		if idx, ok := yearIndex[parsed.Year()]; ok {
			totals.Yearly[idx].Count++
		} else {
			yearIndex[parsed.Year()] = len(totals.Yearly)
			totals.Yearly = append(totals.Yearly, YearCount{Year: parsed.Year(), Count: 1})
		}
	}
	return totals
}
