package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/brunoqueiroz/curricula-admin/internal/repository"
)

// Service produces XLSX bytes from the curriculum standards catalog.
type Service struct {
	standards repository.StandardItemRepository
	logger    *slog.Logger
}

func NewService(standards repository.StandardItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{standards: standards, logger: logger}
}

// ExportStandardsXLSX returns an XLSX workbook (as bytes) for the catalog.
// Deleted rows are included only when includeDeleted is set, mirroring the
// list surface.
func (s *Service) ExportStandardsXLSX(ctx context.Context, includeDeleted bool) ([]byte, error) {
	start := time.Now()

	recs, err := s.standards.List(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("query standards: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Standards"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Code",
		"Subject",
		"Grade Level",
		"Thematic Unit",
		"Description",
		"Status",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		status := "active"
		if r.Deleted {
			status = "deleted"
		}

		write(1, r.Code)
		write(2, r.Subject)
		write(3, r.GradeLevel)
		write(4, r.ThematicUnit)
		write(5, truncate(r.Description, 300))
		write(6, status)
		if !r.CreatedAt.IsZero() {
			write(7, r.CreatedAt.Format("2006-01-02"))
		} else {
			write(7, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 16) // code
	_ = f.SetColWidth(sheet, "B", "B", 24) // subject
	_ = f.SetColWidth(sheet, "C", "C", 14) // grade
	_ = f.SetColWidth(sheet, "D", "D", 28) // thematic unit
	_ = f.SetColWidth(sheet, "E", "E", 72) // description
	_ = f.SetColWidth(sheet, "F", "F", 10) // status
	_ = f.SetColWidth(sheet, "G", "G", 14) // created

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"include_deleted", includeDeleted,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
