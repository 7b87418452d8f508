package types

import "time"

// SyncStats tracks the flight collector's activity since process start.
type SyncStats struct {
	StartTime      time.Time `json:"start_time"`
	LastSync       time.Time `json:"last_sync"`
	LastError      string    `json:"last_error,omitempty"`
	TotalSyncs     int64     `json:"total_syncs"`
	FailedSyncs    int64     `json:"failed_syncs"`
	RecordsStored  int64     `json:"records_stored"`
	LastBatchCount int       `json:"last_batch_count"`
}

// Derived is a dashboard stat card value: the latest point of a series and
// its change versus the previous point.
type Derived struct {
	Latest        float64 `json:"latest"`
	PercentChange float64 `json:"percent_change"`
}

// DashboardSummary is the payload behind the stat cards at the top of the
// dashboard.
type DashboardSummary struct {
	Visitors       Derived `json:"visitors"`
	Occupancy      Derived `json:"occupancy"`
	Spending       Derived `json:"spending"`
	FlightArrivals Derived `json:"flight_arrivals"`
}
