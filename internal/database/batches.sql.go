package database

import (
	"context"

	"github.com/google/uuid"
)

const updateBatchStatus = `-- name: UpdateBatchStatus :exec
UPDATE batches
SET status=$1
WHERE id=$2
`

type UpdateBatchStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateBatchStatus(ctx context.Context, arg UpdateBatchStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateBatchStatus, arg.Status, arg.ID)
	return err
}
