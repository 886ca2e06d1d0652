package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Batch struct {
	ID        uuid.UUID
	Name      string
	UserID    uuid.UUID
	Status    string
	CreatedAt time.Time
}

type Document struct {
	ID               uuid.UUID
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	ObjectKey        string
	CreatedAt        time.Time
	BatchID          uuid.UUID
}

type ExtractionResult struct {
	ID        uuid.UUID
	BatchID   uuid.UUID
	Results   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
