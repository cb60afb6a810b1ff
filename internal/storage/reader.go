package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

// Reader runs queries outside any write transaction.
type Reader struct {
	Transactions *transaction.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Transactions: transaction.NewReader(exec),
	}
}
