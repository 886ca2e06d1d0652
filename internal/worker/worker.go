// Package worker consumes extraction batches from RabbitMQ, runs them
// through the batch processor and records the outcome in Postgres.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumefields/internal/batch"
	"github.com/muhammadolammi/resumefields/internal/database"
	"github.com/muhammadolammi/resumefields/internal/logger"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// statusTimeout bounds status and result writes, which run detached from the
// consumer context so a shutdown still records the outcome.
const statusTimeout = 10 * time.Second

var ErrMalformedMessage = errors.New("malformed batch message")

// Batch is the queue message announcing a batch of uploaded documents.
type Batch struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// Update is published on every batch status change.
type Update struct {
	BatchID   uuid.UUID `json:"batch_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Succeeded *int      `json:"succeeded,omitempty"`
	Failed    *int      `json:"failed,omitempty"`
}

type Store interface {
	GetDocumentsByBatch(ctx context.Context, batchID uuid.UUID) ([]database.Document, error)
	UpdateBatchStatus(ctx context.Context, arg database.UpdateBatchStatusParams) error
	CreateOrUpdateExtractionResults(ctx context.Context, arg database.CreateOrUpdateExtractionResultsParams) error
}

type Publisher interface {
	Publish(ctx context.Context, update Update) error
}

type Worker struct {
	store      Store
	publisher  Publisher
	downloader batch.Downloader
	processor  *batch.Processor
	logger     *zap.Logger

	// Backoff between attempts to download documents and save results.
	Backoff time.Duration
	now     func() time.Time
}

func New(store Store, publisher Publisher, downloader batch.Downloader, processor *batch.Processor, l *zap.Logger) *Worker {
	if processor == nil {
		processor = batch.NewProcessor(nil, batch.WithLogger(l))
	}
	return &Worker{
		store:      store,
		publisher:  publisher,
		downloader: downloader,
		processor:  processor,
		logger:     logger.OrNop(l),
		Backoff:    batch.DefaultBackoff,
		now:        time.Now,
	}
}

// HandleMessage processes one queue message end to end. The returned error
// is informational: the batch status has already been recorded.
func (w *Worker) HandleMessage(ctx context.Context, body []byte) error {
	var b Batch
	if err := json.Unmarshal(body, &b); err != nil {
		w.logger.Warn("skipping message", zap.Error(err), zap.String("body", logger.Truncate(string(body), 200)))
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if b.ID == uuid.Nil {
		w.logger.Warn("skipping message without batch id", zap.String("body", logger.Truncate(string(body), 200)))
		return fmt.Errorf("%w: missing id", ErrMalformedMessage)
	}

	log := w.logger.With(zap.String("batch_id", b.ID.String()), zap.String("batch", b.Name))
	log.Info("processing batch")

	w.setStatus(ctx, log, Update{BatchID: b.ID, Status: StatusProcessing, Message: "extraction started"})

	succeeded, failed, err := w.processBatch(ctx, b)
	if err != nil {
		log.Error("batch failed", zap.Error(err))
		w.setStatus(ctx, log, Update{BatchID: b.ID, Status: StatusFailed, Message: "extraction failed"})
		return err
	}

	log.Info("batch completed", zap.Int("succeeded", succeeded), zap.Int("failed", failed))
	w.setStatus(ctx, log, Update{
		BatchID:   b.ID,
		Status:    StatusCompleted,
		Message:   "extraction completed",
		Succeeded: &succeeded,
		Failed:    &failed,
	})
	return nil
}

func (w *Worker) processBatch(ctx context.Context, b Batch) (succeeded, failed int, err error) {
	docs, err := w.store.GetDocumentsByBatch(ctx, b.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("error getting documents for batch %s: %w", b.ID, err)
	}

	sources := make([]batch.Source, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, batch.ObjectSource{
			Key:        doc.ObjectKey,
			Filename:   doc.OriginalFilename,
			MediaType:  doc.Mime,
			Downloader: w.downloader,
			Backoff:    w.Backoff,
		})
	}

	results := w.processor.Run(ctx, sources)
	if err := ctx.Err(); err != nil {
		return 0, 0, fmt.Errorf("batch interrupted: %w", err)
	}
	succeeded, failed = batch.Summary(results)

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to marshal extraction results: %w", err)
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusTimeout)
	defer cancel()

	_, err = batch.Retry(saveCtx, 3, w.Backoff, func() (any, error) {
		return nil, w.store.CreateOrUpdateExtractionResults(saveCtx, database.CreateOrUpdateExtractionResultsParams{
			Results: resultsJSON,
			BatchID: b.ID,
		})
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to save extraction results: %w", err)
	}
	return succeeded, failed, nil
}

// setStatus records the status in the database and announces it. Failures
// are logged only; the batch outcome does not depend on them.
func (w *Worker) setStatus(ctx context.Context, log *zap.Logger, update Update) {
	update.Timestamp = w.now()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusTimeout)
	defer cancel()

	if err := w.store.UpdateBatchStatus(ctx, database.UpdateBatchStatusParams{
		Status: update.Status,
		ID:     update.BatchID,
	}); err != nil {
		log.Warn("failed to update batch status", zap.String("status", update.Status), zap.Error(err))
	}

	if err := w.publisher.Publish(ctx, update); err != nil {
		log.Warn("failed to publish update", zap.String("status", update.Status), zap.Error(err))
	}
}
