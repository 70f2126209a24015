package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cookify/receipt-ocr-service/internal/pipeline"
)

// Service produces XLSX workbooks from processed receipt results, for users
// who want to review a scan before importing items into their pantry.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ItemsXLSX renders one processed receipt to a workbook: a row per detected
// item, with the top suggestion alongside.
func (s *Service) ItemsXLSX(result pipeline.Result) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Detected Items"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	headers := []string{"Item", "Quantity", "Unit", "Price", "Top Suggestion", "Suggestion Confidence"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, item := range result.Items {
		values := []any{
			item.DetectedText,
			floatOrEmpty(item.Quantity),
			strOrEmpty(item.Unit),
			floatOrEmpty(item.Price),
			"", "",
		}
		if len(item.Suggestions) > 0 {
			values[4] = item.Suggestions[0].IngredientName
			values[5] = fmt.Sprintf("%.1f", item.Suggestions[0].Confidence)
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.logger.Info("exported scan workbook",
		"items", len(result.Items),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatOrEmpty(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}
