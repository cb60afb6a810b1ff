package service

import (
	"context"
	"io"

	"github.com/carson-networks/fintrack/internal/ingest"
	"github.com/carson-networks/fintrack/internal/operator/actions"
	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

// IngestService imports CSV uploads.
type IngestService struct {
	pipeline *ingest.Pipeline
}

func NewIngestService(pipeline *ingest.Pipeline) *IngestService {
	return &IngestService{pipeline: pipeline}
}

// Ingest runs one upload through the pipeline. batchSize 0 uses the configured default.
func (s *IngestService) Ingest(ctx context.Context, src io.Reader, ownerID string, batchSize int) (*ingest.Report, error) {
	return s.pipeline.Ingest(ctx, src, ownerID, batchSize)
}

// IngestWithProgress is Ingest with a per chunk progress callback.
func (s *IngestService) IngestWithProgress(ctx context.Context, src io.Reader, ownerID string, batchSize int, progress ingest.ProgressFunc) (*ingest.Report, error) {
	return s.pipeline.IngestWithProgress(ctx, src, ownerID, batchSize, progress)
}

type batchInserter struct {
	processor ActionProcessor
}

// NewBatchInserter stores ingestion batches through the action processor, one
// storage transaction per batch.
func NewBatchInserter(processor ActionProcessor) ingest.BatchInserter {
	return &batchInserter{processor: processor}
}

func (b *batchInserter) InsertBatch(ctx context.Context, batch []ingest.NormalizedTransaction) error {
	rows := make([]*transaction.TransactionCreate, len(batch))
	for i, tx := range batch {
		rows[i] = &transaction.TransactionCreate{
			OwnerID:     tx.OwnerID,
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount,
			Category:    tx.Category,
		}
	}

	// A batch already handed to storage commits or fails as a whole, even if
	// the caller goes away.
	return b.processor.Process(context.WithoutCancel(ctx), &actions.InsertBatch{Rows: rows})
}
