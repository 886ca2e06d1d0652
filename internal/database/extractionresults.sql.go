package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateExtractionResults = `-- name: CreateOrUpdateExtractionResults :exec
INSERT INTO extraction_results (
results, batch_id)
VALUES ( $1, $2)
ON CONFLICT (batch_id)
DO UPDATE SET
    results = EXCLUDED.results,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateExtractionResultsParams struct {
	Results json.RawMessage
	BatchID uuid.UUID
}

func (q *Queries) CreateOrUpdateExtractionResults(ctx context.Context, arg CreateOrUpdateExtractionResultsParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateExtractionResults, arg.Results, arg.BatchID)
	return err
}
