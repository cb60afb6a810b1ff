package ingest

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBatchSize = 1000

// BatchInserter durably stores one batch: every row commits or none do.
//
//go:generate mockery --name BatchInserter --output mock_BatchInserter.go
type BatchInserter interface {
	InsertBatch(ctx context.Context, batch []NormalizedTransaction) error
}

// BatchWriter buffers rows and hands them to a BatchInserter in fixed size
// batches. A failed flush is sticky: the writer refuses further input.
type BatchWriter struct {
	inserter  BatchInserter
	size      int
	buffer    []NormalizedTransaction
	committed int64
	batches   int
	err       error
}

func NewBatchWriter(inserter BatchInserter, size int) *BatchWriter {
	if size < 1 {
		size = DefaultBatchSize
	}
	return &BatchWriter{
		inserter: inserter,
		size:     size,
		buffer:   make([]NormalizedTransaction, 0, size),
	}
}

// Add buffers tx and flushes when the batch is full. The flush completes
// before Add returns.
func (w *BatchWriter) Add(ctx context.Context, tx NormalizedTransaction) error {
	if w.err != nil {
		return w.err
	}

	w.buffer = append(w.buffer, tx)
	if len(w.buffer) >= w.size {
		return w.Flush(ctx)
	}
	return nil
}

// Flush writes whatever is buffered, including a short final batch.
func (w *BatchWriter) Flush(ctx context.Context) error {
	if w.err != nil {
		return w.err
	}
	if len(w.buffer) == 0 {
		return nil
	}

	batch := w.buffer
	w.buffer = make([]NormalizedTransaction, 0, w.size)

	ctx, span := tracer.Start(ctx, "ingest.flushBatch")
	span.SetAttributes(
		attribute.Int("ingest.batch.size", len(batch)),
		attribute.Int("ingest.batch.index", w.batches),
	)
	defer span.End()

	if err := w.inserter.InsertBatch(ctx, batch); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch insert failed")
		w.err = fmt.Errorf("insert batch %d (%d rows): %w", w.batches, len(batch), err)
		return w.err
	}

	w.batches++
	w.committed += int64(len(batch))
	return nil
}

// Committed is the durable watermark: rows in batches that have committed.
func (w *BatchWriter) Committed() int64 {
	return w.committed
}

func (w *BatchWriter) Batches() int {
	return w.batches
}
