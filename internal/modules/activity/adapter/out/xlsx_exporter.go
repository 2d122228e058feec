package out

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"pustaka/internal/modules/activity/domain"
	activityout "pustaka/internal/modules/activity/port/out"
)

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// XLSXExporter writes the two-sheet report: bucketized statistics plus
// the raw visitor rows.
type XLSXExporter struct{}

func NewXLSXExporter() activityout.ReportExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Export(_ context.Context, totals domain.Totals, records []domain.VisitRecord, path string) (string, error) {
	book := excelize.NewFile()
	defer func() { _ = book.Close() }()

	const statsSheet = "Statistik"
	if err := book.SetSheetName(book.GetSheetName(0), statsSheet); err != nil {
		return "", fmt.Errorf("rename stats sheet: %w", err)
	}

	row := 1
	setRow := func(values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(statsSheet, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := setRow("Kunjungan 7 Hari Terakhir"); err != nil {
		return "", fmt.Errorf("write stats: %w", err)
	}
	daily := make([]any, 0, 7)
	for _, count := range totals.Daily {
		daily = append(daily, count)
	}
	if err := setRow(daily...); err != nil {
		return "", fmt.Errorf("write daily row: %w", err)
	}

	if err := setRow("Kunjungan per Bulan"); err != nil {
		return "", fmt.Errorf("write stats: %w", err)
	}
	for i, count := range totals.Monthly {
		if err := setRow(monthLabels[i], count); err != nil {
			return "", fmt.Errorf("write monthly row: %w", err)
		}
	}

	if err := setRow("Kunjungan per Tahun"); err != nil {
		return "", fmt.Errorf("write stats: %w", err)
	}
	for _, yc := range totals.Yearly {
		if err := setRow(strconv.Itoa(yc.Year), yc.Count); err != nil {
			return "", fmt.Errorf("write yearly row: %w", err)
		}
	}

	const visitorSheet = "Pengunjung"
	if _, err := book.NewSheet(visitorSheet); err != nil {
		return "", fmt.Errorf("create visitor sheet: %w", err)
	}
	if err := book.SetSheetRow(visitorSheet, "A1", &[]any{"Nama", "Jenis Kelamin", "Waktu Kunjungan"}); err != nil {
		return "", fmt.Errorf("write visitor header: %w", err)
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("visitor cell: %w", err)
		}
		if err := book.SetSheetRow(visitorSheet, cell, &[]any{record.Name, record.Gender, record.LoginTime}); err != nil {
			return "", fmt.Errorf("write visitor row: %w", err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
