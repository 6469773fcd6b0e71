package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	LoyaltyReportXLSX() ([]byte, error)
}

type exportService struct {
	storeService StoreService
}

func NewExportService(storeService StoreService) ExportService {
	return &exportService{storeService: storeService}
}

// LoyaltyReportXLSX renders the renewal report as a spreadsheet, most
// loyal stores first.
func (s *exportService) LoyaltyReportXLSX() ([]byte, error) {
	stats, err := s.storeService.GetLoyaltyStats()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Store", "Category", "Renewals", "Expires", "Active", "Visitors"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, entry := range stats {
		expires := ""
		if entry.ExpiredAt != nil {
			expires = entry.ExpiredAt.Format("2006-01-02")
		}
		values := []interface{}{
			entry.Name,
			entry.Category,
			entry.RenewCount,
			expires,
			entry.IsActive,
			entry.VisitorCount,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
