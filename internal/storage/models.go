package storage

import (
	"time"

	"cv-builder/internal/cv"
)

// StoredRecord is a CV record as persisted, including the row identity and
// server-assigned timestamps.
type StoredRecord struct {
	ID       int64  `json:"id"`
	UserUUID string `json:"userUuid"`
	cv.Record
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
