package dto

import (
	"time"

	"github.com/guttosm/volumepulse/internal/domain/models"
)

// SnapshotResponse represents the JSON structure returned by the
// GET /api/v1/volume/latest endpoint.
//
// Volumes is rendered as an object keyed by currency code in ascending order.
type SnapshotResponse struct {
	ID      string                  `json:"id" example:"5f0c7a52-1f0e-4a8e-9e62-0c3c2b1d9a10"`
	Source  string                  `json:"source" example:"live"`
	TakenAt time.Time               `json:"taken_at" example:"2025-09-12T10:00:00Z"`
	Markets int                     `json:"markets" example:"42"`
	Volumes models.VolumeByCurrency `json:"volumes" swaggertype:"object,number"`
}

// NewSnapshotResponse maps a domain snapshot to its API representation.
func NewSnapshotResponse(s *models.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:      s.ID,
		Source:  s.Source,
		TakenAt: s.TakenAt,
		Markets: s.Markets,
		Volumes: s.Volumes,
	}
}
