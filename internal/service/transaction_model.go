package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	CreatedAt   time.Time
}

// HistoryQuery selects one page of history. Limit 0 returns every row on a single page.
type HistoryQuery struct {
	Page     int
	Limit    int
	Category *string
}

// Page describes where a history result sits. Total counts every matching row.
type Page struct {
	Page  int
	Pages int
	Total int64
}

// CategorySummary is the spend total for one category.
type CategorySummary struct {
	Category string
	Total    decimal.Decimal
	Count    int64
}
