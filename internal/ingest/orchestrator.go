package ingest

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/fintrack/internal/logging"
)

const DefaultChunkSize = 200

var tracer = otel.Tracer("github.com/carson-networks/fintrack/internal/ingest")

type Options struct {
	BatchSize    int
	MaxBatchSize int
	ChunkSize    int
	PreviewSize  int
	SpoolDir     string
}

// Progress is reported after each chunk has been normalized.
type Progress struct {
	BytesRead  int64
	TotalBytes int64
	Processed  int64
	Failed     int64
}

type ProgressFunc func(Progress)

// Pipeline drives spool, decode, normalize and batch write for one upload at a time.
// A Pipeline holds no per-upload state and is safe for concurrent use.
type Pipeline struct {
	inserter   BatchInserter
	normalizer *Normalizer
	log        *logrus.Logger
	opts       Options
}

func NewPipeline(inserter BatchInserter, categorizer Categorizer, log *logrus.Logger, opts Options) *Pipeline {
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxBatchSize < opts.BatchSize {
		opts.MaxBatchSize = opts.BatchSize
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.PreviewSize < 1 {
		opts.PreviewSize = DefaultPreviewSize
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		inserter:   inserter,
		normalizer: NewNormalizer(categorizer),
		log:        log,
		opts:       opts,
	}
}

// BatchSize resolves a caller override: zero or less means the default,
// anything above the maximum is clamped.
func (p *Pipeline) BatchSize(override int) int {
	if override < 1 {
		return p.opts.BatchSize
	}
	return min(override, p.opts.MaxBatchSize)
}

func (p *Pipeline) Ingest(ctx context.Context, src io.Reader, ownerID string, batchSize int) (*Report, error) {
	return p.IngestWithProgress(ctx, src, ownerID, batchSize, nil)
}

// IngestWithProgress is Ingest with a callback invoked from the consuming goroutine.
func (p *Pipeline) IngestWithProgress(ctx context.Context, src io.Reader, ownerID string, batchSize int, progress ProgressFunc) (*Report, error) {
	ctx, span := tracer.Start(ctx, "ingest.Run")
	defer span.End()

	logData := logging.GetLogData(ctx)
	start := time.Now()

	spoolTiming := logData.AddTiming("spoolMillis")
	spooled, err := Spool(src, p.opts.SpoolDir)
	spoolTiming()
	if err != nil {
		return nil, p.fail(span, ownerID, encodingError(err))
	}
	spoolPath := spooled.Path()
	defer func() {
		if err := spooled.Close(); err != nil {
			p.log.WithError(err).WithField("path", spoolPath).Warn("Ingest.Spool.CloseFailed")
		}
	}()

	span.SetAttributes(
		attribute.Int64("ingest.bytes", spooled.Size),
		attribute.String("ingest.encoding", spooled.Encoding.String()),
	)

	records, err := NewRecordReader(spooled, spooled.Encoding, p.opts.ChunkSize)
	if err != nil {
		return nil, p.fail(span, ownerID, err)
	}

	batchSize = p.BatchSize(batchSize)
	writer := NewBatchWriter(p.inserter, batchSize)
	builder := newReportBuilder(p.opts.PreviewSize)

	// One chunk in flight between the reader and the writer keeps memory bounded.
	chunks := make(chan []RawRecord, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chunks)
		for {
			chunk, err := records.ReadChunk()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case chunks <- chunk:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	g.Go(func() error {
		var processed int64
		for chunk := range chunks {
			// Stop before committing rows from an ingestion that already failed.
			if err := gctx.Err(); err != nil {
				return err
			}
			chunkTiming := logData.AddToExistingTiming("processMillis")
			for _, raw := range chunk {
				processed++
				result := p.normalizer.Normalize(gctx, raw, ownerID)
				if !result.OK() {
					builder.fail()
					p.logRejection(result, raw)
					continue
				}

				if err := gctx.Err(); err != nil {
					chunkTiming()
					return err
				}
				builder.sample(result.Transaction)
				if err := writer.Add(gctx, *result.Transaction); err != nil {
					chunkTiming()
					return &IngestionError{Kind: KindStorage, Err: err, Inserted: writer.Committed()}
				}
			}
			chunkTiming()

			if progress != nil {
				progress(Progress{
					BytesRead:  records.BytesRead(),
					TotalBytes: spooled.Size,
					Processed:  processed,
					Failed:     builder.report.Failed,
				})
			}
		}

		// The reader stopped early; do not commit a tail of a stream that did not finish.
		if err := gctx.Err(); err != nil {
			return err
		}

		if err := writer.Flush(gctx); err != nil {
			return &IngestionError{Kind: KindStorage, Err: err, Inserted: writer.Committed()}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		// Cancellation of the caller's context is returned as is.
		return nil, p.fail(span, ownerID, err)
	}

	report := builder.build(writer.Committed(), spooled.Encoding)

	span.SetAttributes(
		attribute.Int64("ingest.inserted", report.Inserted),
		attribute.Int64("ingest.failed", report.Failed),
		attribute.Int("ingest.batches", writer.Batches()),
	)
	logData.AddData("inserted", report.Inserted)
	logData.AddData("failed", report.Failed)
	logData.AddData("batches", writer.Batches())
	logData.AddData("encoding", spooled.Encoding.String())
	p.log.WithFields(logrus.Fields{
		"ownerID":   ownerID,
		"inserted":  report.Inserted,
		"failed":    report.Failed,
		"batchSize": batchSize,
		"batches":   writer.Batches(),
		"encoding":  spooled.Encoding.String(),
		"bytes":     spooled.Size,
		"millis":    time.Since(start).Milliseconds(),
	}).Info("Ingest.Run.Complete")

	return report, nil
}

func (p *Pipeline) fail(span trace.Span, ownerID string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(KindOf(err)))

	entry := p.log.WithError(err).WithField("ownerID", ownerID)
	var ingestErr *IngestionError
	if errors.As(err, &ingestErr) {
		entry = entry.WithFields(logrus.Fields{
			"kind":     ingestErr.Kind,
			"inserted": ingestErr.Inserted,
		})
	}
	entry.Error("Ingest.Run.Failed")
	return err
}

func (p *Pipeline) logRejection(result RowResult, raw RawRecord) {
	if !p.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	p.log.WithFields(logrus.Fields{
		"line":   result.Line,
		"reason": result.Reason,
		"error":  result.Err,
		"record": spew.Sdump(raw),
	}).Debug("Ingest.Row.Rejected")
}
