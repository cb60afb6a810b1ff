package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fintrack/internal/operator/actions"
	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

func newTestService(t *testing.T) (*TransactionService, *transaction.MockITransactionReader, *MockActionProcessor) {
	t.Helper()
	reader := transaction.NewMockITransactionReader(t)
	processor := NewMockActionProcessor(t)
	return NewTransactionService(reader, processor), reader, processor
}

func makeStorageRows(n int, date time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, n)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			OwnerID:     "42",
			Date:        date,
			Description: "Item",
			Amount:      decimal.RequireFromString("5.00"),
			Category:    "Food",
			CreatedAt:   date,
		}
	}
	return rows
}

// -- ListTransactions tests --

func TestListTransactions_NoResults(t *testing.T) {
	svc, reader, _ := newTestService(t)

	reader.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(0), nil)

	txs, page, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{Limit: 20})

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Equal(t, Page{Page: 1, Pages: 0, Total: 0}, page)
}

func TestListTransactions_TotalIsTrueCount(t *testing.T) {
	svc, reader, _ := newTestService(t)

	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := makeStorageRows(20, date)

	matchesPage := mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.OwnerID == "42" && f.Limit == 20 && f.Offset == 20 && f.Category == nil
	})
	reader.EXPECT().Count(mock.Anything, matchesPage).Return(int64(45), nil)
	reader.EXPECT().List(mock.Anything, matchesPage).Return(rows, nil)

	txs, page, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{Page: 2, Limit: 20})

	require.NoError(t, err)
	assert.Len(t, txs, 20)
	assert.Equal(t, Page{Page: 2, Pages: 3, Total: 45}, page)

	tx := txs[0]
	assert.Equal(t, rows[0].ID, tx.ID)
	assert.Equal(t, rows[0].Date, tx.Date)
	assert.Equal(t, rows[0].Description, tx.Description)
	assert.True(t, rows[0].Amount.Equal(tx.Amount))
	assert.Equal(t, rows[0].Category, tx.Category)
}

func TestListTransactions_AllOnOnePage(t *testing.T) {
	svc, reader, _ := newTestService(t)

	rows := makeStorageRows(3, time.Now())
	noLimit := mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 0 && f.Offset == 0
	})
	reader.EXPECT().Count(mock.Anything, noLimit).Return(int64(3), nil)
	reader.EXPECT().List(mock.Anything, noLimit).Return(rows, nil)

	txs, page, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{Page: 4})

	require.NoError(t, err)
	assert.Len(t, txs, 3)
	assert.Equal(t, Page{Page: 1, Pages: 1, Total: 3}, page)
}

func TestListTransactions_CategoryFilter(t *testing.T) {
	svc, reader, _ := newTestService(t)

	category := "Food"
	byCategory := mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Category != nil && *f.Category == "Food"
	})
	reader.EXPECT().Count(mock.Anything, byCategory).Return(int64(1), nil)
	reader.EXPECT().List(mock.Anything, byCategory).Return(makeStorageRows(1, time.Now()), nil)

	txs, _, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{Limit: 10, Category: &category})

	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestListTransactions_PagePastEnd(t *testing.T) {
	svc, reader, _ := newTestService(t)

	reader.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(5), nil)

	txs, page, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{Page: 3, Limit: 5})

	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, Page{Page: 3, Pages: 1, Total: 5}, page)
}

func TestListTransactions_HugePageDoesNotOverflow(t *testing.T) {
	svc, reader, _ := newTestService(t)

	reader.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(5), nil)

	txs, page, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{Page: math.MaxInt, Limit: 1000})

	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, Page{Page: math.MaxInt, Pages: 1, Total: 5}, page)
	reader.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListTransactions_InvalidLimit(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{Limit: -1})

	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, reader, _ := newTestService(t)

	reader.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(0), errors.New("connection refused"))

	_, _, err := svc.ListTransactions(context.Background(), "42", HistoryQuery{})

	assert.EqualError(t, err, "connection refused")
}

// -- Summary tests --

func TestSummary(t *testing.T) {
	svc, reader, _ := newTestService(t)

	reader.EXPECT().SummarizeByCategory(mock.Anything, "42").Return([]*transaction.CategoryTotal{
		{Category: "Rent", Total: decimal.RequireFromString("1500"), Count: 1},
		{Category: "Uncategorized", Total: decimal.RequireFromString("12.50"), Count: 3},
	}, nil)

	summary, err := svc.Summary(context.Background(), "42")

	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "Rent", summary[0].Category)
	assert.True(t, decimal.RequireFromString("12.5").Equal(summary[1].Total))
	assert.Equal(t, int64(3), summary[1].Count)
}

// -- Delete tests --

func TestDeleteTransaction(t *testing.T) {
	svc, _, processor := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	processor.EXPECT().Process(mock.Anything, &actions.DeleteTransaction{OwnerID: "42", ID: id}).Return(nil)

	assert.NoError(t, svc.DeleteTransaction(context.Background(), "42", id))
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.EXPECT().Process(mock.Anything, mock.Anything).Return(actions.ErrTransactionNotFound)

	err := svc.DeleteTransaction(context.Background(), "42", uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestDeleteAllTransactions(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.EXPECT().Process(mock.Anything, mock.AnythingOfType("*actions.DeleteAllTransactions")).
		RunAndReturn(func(_ context.Context, action actions.IAction) error {
			action.(*actions.DeleteAllTransactions).Deleted = 4
			return nil
		})

	deleted, err := svc.DeleteAllTransactions(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
