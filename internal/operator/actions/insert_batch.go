package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

// InsertBatch writes one ingestion batch. Either every row lands or none do.
type InsertBatch struct {
	Rows []*transaction.TransactionCreate

	Inserted int64
}

func (b *InsertBatch) Perform(ctx context.Context, writer ITransactionWriter) error {
	if len(b.Rows) == 0 {
		return nil
	}

	n, err := writer.BulkInsert(ctx, b.Rows)
	if err != nil {
		return err
	}
	if n != int64(len(b.Rows)) {
		return fmt.Errorf("insert batch: wrote %d of %d rows", n, len(b.Rows))
	}

	b.Inserted = n
	return nil
}
