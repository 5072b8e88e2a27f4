package models

import "time"

// Snapshot is the result of one aggregation run.
//
// Fields:
//   - ID: identifier assigned when the snapshot is persisted (empty otherwise).
//   - Source: name of the market source that supplied the records ("live" or "fixture").
//   - TakenAt: UTC time the aggregation completed.
//   - Markets: number of market records consumed.
//   - Volumes: the aggregated totals.
type Snapshot struct {
	ID      string
	Source  string
	TakenAt time.Time
	Markets int
	Volumes VolumeByCurrency
}
