package samplegen

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fintrack/internal/classifier"
	"github.com/carson-networks/fintrack/internal/ingest"
)

func TestGenerate_RowsAndHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Generate(buf, classifier.SeedSamples(), Options{Rows: 25, Seed: 1}))

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 26)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, records[0])

	for _, record := range records[1:] {
		_, err := ingest.ParseDate(record[0])
		assert.NoError(t, err)
		_, err = ingest.ParseAmount(record[2])
		assert.NoError(t, err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, Generate(a, classifier.SeedSamples(), Options{Rows: 10, Seed: 7}))
	require.NoError(t, Generate(b, classifier.SeedSamples(), Options{Rows: 10, Seed: 7}))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerate_NoSamples(t *testing.T) {
	assert.ErrorIs(t, Generate(&bytes.Buffer{}, nil, Options{Rows: 1}), ErrNoSamples)
}

func TestGenerate_IngestsCleanly(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Generate(buf, classifier.SeedSamples(), Options{Rows: 40, Seed: 3}))

	inserter := ingest.NewMockBatchInserter(t)
	inserter.EXPECT().InsertBatch(mock.Anything, mock.Anything).Return(nil)

	pipeline := ingest.NewPipeline(inserter, nil, nil, ingest.Options{SpoolDir: t.TempDir()})
	report, err := pipeline.Ingest(context.Background(), buf, "owner", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(40), report.Inserted)
	assert.Equal(t, int64(0), report.Failed)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "sample_transactions_500.csv", Filename(500))
}
