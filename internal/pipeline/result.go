package pipeline

import (
	"github.com/cookify/receipt-ocr-service/internal/match"
)

// TextResult is the outcome of plain text extraction (no item parsing).
type TextResult struct {
	Text             string  `json:"extracted_text"`
	Confidence       float64 `json:"confidence"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

// ReceiptItem is one detected purchase line. Immutable after construction.
type ReceiptItem struct {
	DetectedText string             `json:"detected_text"`
	Quantity     *float64           `json:"quantity"`
	Unit         *string            `json:"unit"`
	Price        *float64           `json:"price"`
	Suggestions  []match.Suggestion `json:"suggestions"`
}

// Result is the terminal aggregate for a processed receipt. Zero detected
// items is a valid result, not an error.
type Result struct {
	RawText            string        `json:"raw_text"`
	Items              []ReceiptItem `json:"detected_items"`
	ProcessingTimeMs   int64         `json:"processing_time_ms"`
	TotalItemsDetected int           `json:"total_items_detected"`
}
