package ingest

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultPreviewSize = 10

// Report is the outcome of one successful ingestion. Every data row is
// counted in exactly one of Inserted and Failed.
type Report struct {
	Inserted int64
	Failed   int64
	Preview  []PreviewRow
	Encoding Encoding
}

// PreviewRow is a view of an inserted row, kept for user feedback only.
type PreviewRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
}

type reportBuilder struct {
	report     Report
	previewCap int
}

func newReportBuilder(previewCap int) *reportBuilder {
	return &reportBuilder{
		report:     Report{Preview: make([]PreviewRow, 0, previewCap)},
		previewCap: previewCap,
	}
}

func (b *reportBuilder) sample(tx *NormalizedTransaction) {
	if len(b.report.Preview) >= b.previewCap {
		return
	}
	b.report.Preview = append(b.report.Preview, PreviewRow{
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    tx.Category,
	})
}

func (b *reportBuilder) fail() {
	b.report.Failed++
}

func (b *reportBuilder) build(inserted int64, enc Encoding) *Report {
	report := b.report
	report.Inserted = inserted
	report.Encoding = enc
	return &report
}
