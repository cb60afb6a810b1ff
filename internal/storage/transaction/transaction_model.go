package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const tableName = "transactions"

// maxRowsPerStatement keeps a multi-row insert below the Postgres limit of
// 65535 bind parameters.
const maxRowsPerStatement = 65535 / insertColumnCount

var insertColumns = []string{"id", "owner_id", "date", "description", "amount", "category"}

const insertColumnCount = 6

// Transaction represents a stored transaction row.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	OwnerID     string          `db:"owner_id"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a transaction.
type TransactionCreate struct {
	OwnerID     string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
}

// TransactionFilter narrows List and Count. A zero Limit means no limit.
type TransactionFilter struct {
	OwnerID  string
	Category *string
	Limit    int
	Offset   int
}

// CategoryTotal is one row of the per-category summary.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
	Count    int64           `db:"count"`
}

// ITransactionReader defines the read side of transaction storage.
//
//go:generate mockery --name ITransactionReader --output mock_ITransactionReader.go
type ITransactionReader interface {
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, filter *TransactionFilter) (int64, error)
	SummarizeByCategory(ctx context.Context, ownerID string) ([]*CategoryTotal, error)
}
