package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fintrack/internal/ingest"
	"github.com/carson-networks/fintrack/internal/operator/actions"
)

func TestBatchInserter_SubmitsInsertBatch(t *testing.T) {
	processor := NewMockActionProcessor(t)
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	processor.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		batch, ok := a.(*actions.InsertBatch)
		return ok && len(batch.Rows) == 1 &&
			batch.Rows[0].OwnerID == "42" &&
			batch.Rows[0].Date.Equal(date) &&
			batch.Rows[0].Description == "Swiggy Order" &&
			batch.Rows[0].Amount.Equal(decimal.RequireFromString("250")) &&
			batch.Rows[0].Category == "Food"
	})).Return(nil)

	err := NewBatchInserter(processor).InsertBatch(context.Background(), []ingest.NormalizedTransaction{{
		OwnerID:     "42",
		Date:        date,
		Description: "Swiggy Order",
		Amount:      decimal.RequireFromString("250.00"),
		Category:    "Food",
	}})

	assert.NoError(t, err)
}

func TestBatchInserter_CommitOutlivesCancellation(t *testing.T) {
	processor := NewMockActionProcessor(t)

	processor.EXPECT().Process(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ actions.IAction) error {
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewBatchInserter(processor).InsertBatch(ctx, []ingest.NormalizedTransaction{{OwnerID: "42"}})

	assert.NoError(t, err)
}

func TestIngestService_EndToEnd(t *testing.T) {
	processor := NewMockActionProcessor(t)
	logger, _ := test.NewNullLogger()

	var inserted int
	processor.EXPECT().Process(mock.Anything, mock.AnythingOfType("*actions.InsertBatch")).
		RunAndReturn(func(_ context.Context, action actions.IAction) error {
			inserted += len(action.(*actions.InsertBatch).Rows)
			return nil
		})

	pipeline := ingest.NewPipeline(NewBatchInserter(processor), nil, logger, ingest.Options{SpoolDir: t.TempDir()})
	svc := NewIngestService(pipeline)

	content := "Date,Description,Amount\n2024-01-05,Swiggy Order,250.00\nnot-a-date,X,10\n2024-01-06,,\"$1,000\"\n"
	report, err := svc.Ingest(context.Background(), strings.NewReader(content), "42", 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), report.Inserted)
	assert.Equal(t, int64(1), report.Failed)
	assert.Equal(t, 2, inserted)
}

func TestIngestService_StorageError(t *testing.T) {
	processor := NewMockActionProcessor(t)
	logger, _ := test.NewNullLogger()

	processor.EXPECT().Process(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	pipeline := ingest.NewPipeline(NewBatchInserter(processor), nil, logger, ingest.Options{SpoolDir: t.TempDir()})

	_, err := NewIngestService(pipeline).Ingest(context.Background(), strings.NewReader("Date,Description,Amount\n2024-01-05,a,1\n"), "42", 0)

	assert.Equal(t, ingest.KindStorage, ingest.KindOf(err))
}
