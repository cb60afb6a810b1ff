package actions

import (
	"context"

	"github.com/carson-networks/fintrack/internal/storage/transaction"
	"github.com/gofrs/uuid/v5"
)

// ITransactionWriter is the write surface an action sees inside its database transaction.
//
//go:generate mockery --name ITransactionWriter --output mock_ITransactionWriter.go
type ITransactionWriter interface {
	BulkInsert(ctx context.Context, rows []*transaction.TransactionCreate) (int64, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context, ownerID string) (int64, error)
}

type IAction interface {
	Perform(ctx context.Context, writer ITransactionWriter) error
}
