package domain_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"pustaka/internal/modules/activity/domain"
)

func record(at time.Time) domain.VisitRecord {
	return domain.VisitRecord{LoginTime: at.Format(time.RFC3339)}
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestAggregateDailyWindowBoundaries(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	totals := domain.Aggregate([]domain.VisitRecord{
		record(now),                          // today -> daily[6]
		record(now.AddDate(0, 0, -6)),        // six days ago -> daily[0]
		record(now.AddDate(0, 0, -7)),        // outside the window
		record(now.Add(24 * time.Hour)),      // future, excluded from daily
	}, now)

	if totals.Daily[6] != 1 || totals.Daily[0] != 1 {
		t.Fatalf("unexpected daily buckets: %v", totals.Daily)
	}
	if got := sum(totals.Daily[:]); got != 2 {
		t.Fatalf("daily should count 2 records, got %d", got)
	}
	if got := sum(totals.Monthly[:]); got != 4 {
		t.Fatalf("all four records are current-year, monthly sum = %d", got)
	}
}

func TestAggregateEndToEndScenario(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	records := []domain.VisitRecord{
		record(now),
		record(now.AddDate(0, 0, -2)),
		record(now.AddDate(0, 0, -5)),
		// current year, older than the 7-day window
		record(now.AddDate(0, 0, -30)),
		record(now.AddDate(0, -2, 0)),
		record(time.Date(2024, time.January, 3, 8, 0, 0, 0, time.UTC)),
		record(time.Date(2024, time.February, 11, 8, 0, 0, 0, time.UTC)),
		// prior years
		record(time.Date(2023, time.March, 1, 8, 0, 0, 0, time.UTC)),
		record(time.Date(2023, time.August, 20, 8, 0, 0, 0, time.UTC)),
		record(time.Date(2021, time.December, 31, 8, 0, 0, 0, time.UTC)),
		{LoginTime: "garbage in, garbage out"},
	}
	totals := domain.Aggregate(records, now)

	if got := sum(totals.Daily[:]); got != 3 {
		t.Fatalf("daily sum = %d, want 3", got)
	}
	if got := sum(totals.Monthly[:]); got != 7 {
		t.Fatalf("monthly sum = %d, want 7", got)
	}
	yearly := 0
	for _, yc := range totals.Yearly {
		yearly += yc.Count
	}
	if yearly != 10 {
		t.Fatalf("yearly sum = %d, want 10 parsed records", yearly)
	}
	if totals.Yearly[0].Year != 2024 || totals.Yearly[1].Year != 2023 || totals.Yearly[2].Year != 2021 {
		t.Fatalf("yearly order should be first-seen: %v", totals.Yearly)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	records := []domain.VisitRecord{
		record(now),
		record(now.AddDate(-1, 0, 0)),
		{LoginTime: "25/12/2023 10:30:00"},
	}
	first := domain.Aggregate(records, now)
	second := domain.Aggregate(records, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregate is not deterministic:\n%v\n%v", first, second)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	t.Parallel()
	totals := domain.Aggregate(nil, time.Now())
	if sum(totals.Daily[:]) != 0 || sum(totals.Monthly[:]) != 0 || len(totals.Yearly) != 0 {
		t.Fatalf("empty input should produce zero totals: %v", totals)
	}
}

func TestAggregateParsesLegacyStrings(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	legacy := fmt.Sprintf("%d/%d/%d 9:30:00", now.Day(), int(now.Month()), now.Year())
	totals := domain.Aggregate([]domain.VisitRecord{{LoginTime: legacy}}, now)
	if totals.Daily[6] != 1 {
		t.Fatalf("legacy same-day record should land in daily[6]: %v", totals.Daily)
	}
}
