package database

import (
	"context"

	"github.com/google/uuid"
)

const getDocumentsByBatch = `-- name: GetDocumentsByBatch :many
SELECT id, original_filename, mime, size_bytes, object_key, created_at, batch_id FROM documents WHERE batch_id=$1
ORDER BY created_at, original_filename
`

func (q *Queries) GetDocumentsByBatch(ctx context.Context, batchID uuid.UUID) ([]Document, error) {
	rows, err := q.db.QueryContext(ctx, getDocumentsByBatch, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Document
	for rows.Next() {
		var i Document
		if err := rows.Scan(
			&i.ID,
			&i.OriginalFilename,
			&i.Mime,
			&i.SizeBytes,
			&i.ObjectKey,
			&i.CreatedAt,
			&i.BatchID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
