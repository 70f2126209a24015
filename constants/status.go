package constants

// ScanStatus is the canonical status for rows in scan_jobs.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusRunning   ScanStatus = "RUNNING"   // in progress
	ScanStatusSucceeded ScanStatus = "SUCCEEDED" // pipeline completed (items may still be empty)
	ScanStatusFailed    ScanStatus = "FAILED"    // terminal failure
)
