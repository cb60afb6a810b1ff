// Package samplegen writes synthetic bank statement CSVs for demos and load tests.
package samplegen

import (
	"encoding/csv"
	"errors"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/fintrack/internal/classifier"
)

var ErrNoSamples = errors.New("samplegen: no samples to draw descriptions from")

// One row in creditEvery is a credit, the rest are debits.
const creditEvery = 10

type Options struct {
	Rows  int
	Start time.Time
	Days  int
	Seed  uint64
}

// Generate writes a header and opts.Rows rows drawn from samples. Output is
// deterministic for a given seed.
func Generate(w io.Writer, samples []classifier.Sample, opts Options) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if opts.Days < 1 {
		opts.Days = 365
	}
	if opts.Start.IsZero() {
		opts.Start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	out := csv.NewWriter(w)
	if err := out.Write([]string{"Date", "Description", "Amount"}); err != nil {
		return err
	}

	for i := 0; i < opts.Rows; i++ {
		sample := samples[rng.IntN(len(samples))]
		date := opts.Start.AddDate(0, 0, rng.IntN(opts.Days))

		cents := int64(100 + rng.IntN(500000))
		amount := decimal.New(cents, -2)
		if rng.IntN(creditEvery) != 0 {
			amount = amount.Neg()
		}

		record := []string{date.Format("2006-01-02"), sample.Description, amount.StringFixed(2)}
		if err := out.Write(record); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}

// Filename suggests a name for a generated file of n rows.
func Filename(n int) string {
	return "sample_transactions_" + strconv.Itoa(n) + ".csv"
}
