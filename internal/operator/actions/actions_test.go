package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

func sampleRows(n int) []*transaction.TransactionCreate {
	rows := make([]*transaction.TransactionCreate, n)
	for i := range rows {
		rows[i] = &transaction.TransactionCreate{
			OwnerID:     "42",
			Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Description: "Coffee",
			Amount:      decimal.RequireFromString("-4.50"),
			Category:    "Food",
		}
	}
	return rows
}

func TestInsertBatch_Success(t *testing.T) {
	writer := NewMockITransactionWriter(t)
	rows := sampleRows(3)

	writer.EXPECT().BulkInsert(mock.Anything, rows).Return(int64(3), nil)

	action := &InsertBatch{Rows: rows}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), action.Inserted)
}

func TestInsertBatch_Empty(t *testing.T) {
	writer := NewMockITransactionWriter(t)

	action := &InsertBatch{}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), action.Inserted)
}

func TestInsertBatch_ShortWrite(t *testing.T) {
	writer := NewMockITransactionWriter(t)
	rows := sampleRows(2)

	writer.EXPECT().BulkInsert(mock.Anything, rows).Return(int64(1), nil)

	action := &InsertBatch{Rows: rows}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	assert.Equal(t, int64(0), action.Inserted)
}

func TestInsertBatch_StorageError(t *testing.T) {
	writer := NewMockITransactionWriter(t)

	writer.EXPECT().BulkInsert(mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection refused"))

	action := &InsertBatch{Rows: sampleRows(1)}
	err := action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "connection refused")
}

func TestDeleteTransaction_Found(t *testing.T) {
	writer := NewMockITransactionWriter(t)
	id := uuid.Must(uuid.NewV4())

	writer.EXPECT().Delete(mock.Anything, "42", id).Return(true, nil)

	err := (&DeleteTransaction{OwnerID: "42", ID: id}).Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	writer := NewMockITransactionWriter(t)
	id := uuid.Must(uuid.NewV4())

	writer.EXPECT().Delete(mock.Anything, "42", id).Return(false, nil)

	err := (&DeleteTransaction{OwnerID: "42", ID: id}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestDeleteAllTransactions(t *testing.T) {
	writer := NewMockITransactionWriter(t)

	writer.EXPECT().DeleteAll(mock.Anything, "42").Return(int64(7), nil)

	action := &DeleteAllTransactions{OwnerID: "42"}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), action.Deleted)
}
