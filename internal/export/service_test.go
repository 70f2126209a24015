package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/cookify/receipt-ocr-service/internal/match"
	"github.com/cookify/receipt-ocr-service/internal/pipeline"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestItemsXLSX(t *testing.T) {
	result := pipeline.Result{
		RawText: "irrelevant here",
		Items: []pipeline.ReceiptItem{
			{
				DetectedText: "Bananas",
				Quantity:     fptr(6),
				Unit:         sptr("lb"),
				Price:        fptr(3.98),
				Suggestions: []match.Suggestion{
					{IngredientID: uuid.New(), IngredientName: "Banana", Confidence: 90, DetectedText: "Bananas"},
				},
			},
			{DetectedText: "Organic Spinach", Price: fptr(2.99)},
		},
		TotalItemsDetected: 2,
	}

	book, err := NewService(nil).ItemsXLSX(result)
	if err != nil {
		t.Fatalf("ItemsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(book))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Detected Items")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want header plus 2 items", len(rows))
	}
	if rows[0][0] != "Item" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "Bananas" || rows[1][4] != "Banana" {
		t.Errorf("item row = %v", rows[1])
	}
	if rows[2][0] != "Organic Spinach" {
		t.Errorf("item row = %v", rows[2])
	}
}

func TestItemsXLSXEmptyResult(t *testing.T) {
	book, err := NewService(nil).ItemsXLSX(pipeline.Result{})
	if err != nil {
		t.Fatalf("ItemsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(book))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Detected Items")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty result produced %d rows, want header only", len(rows))
	}
}
