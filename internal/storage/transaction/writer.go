package transaction

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// BulkInsert writes all rows inside the writer's transaction, splitting into
// several statements when the row count would exceed the bind parameter limit.
func (w *Writer) BulkInsert(ctx context.Context, rows []*TransactionCreate) (int64, error) {
	var inserted int64
	for start := 0; start < len(rows); start += maxRowsPerStatement {
		end := min(start+maxRowsPerStatement, len(rows))
		n, err := w.insertChunk(ctx, rows[start:end])
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func (w *Writer) insertChunk(ctx context.Context, rows []*TransactionCreate) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	values := make([]bob.Mod[*dialect.InsertQuery], 0, len(rows)+1)
	values = append(values, im.Into(tableName, insertColumns...))
	for _, row := range rows {
		id, err := uuid.NewV7()
		if err != nil {
			return 0, fmt.Errorf("uuid.NewV7: %w", err)
		}
		values = append(values, im.Values(psql.Arg(
			id, row.OwnerID, row.Date, row.Description, row.Amount, row.Category,
		)))
	}

	result, err := bob.Exec(ctx, w.tx, psql.Insert(values...))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Delete removes one transaction owned by ownerID and reports whether a row existed.
func (w *Writer) Delete(ctx context.Context, ownerID string, id uuid.UUID) (bool, error) {
	result, err := bob.Exec(ctx, w.tx, psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	))
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteAll removes every transaction owned by ownerID.
func (w *Writer) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	result, err := bob.Exec(ctx, w.tx, psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
