package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

// Writer is one open database transaction. It satisfies the operator's Tx,
// so write actions run against it directly.
type Writer struct {
	tx          bob.Tx
	Transaction *transaction.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) BulkInsert(ctx context.Context, rows []*transaction.TransactionCreate) (int64, error) {
	return w.Transaction.BulkInsert(ctx, rows)
}

func (w *Writer) Delete(ctx context.Context, ownerID string, id uuid.UUID) (bool, error) {
	return w.Transaction.Delete(ctx, ownerID, id)
}

func (w *Writer) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	return w.Transaction.DeleteAll(ctx, ownerID)
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

// Rollback is a no-op once the transaction has finished.
func (w *Writer) Rollback() error {
	err := w.tx.Rollback(context.Background())
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}
