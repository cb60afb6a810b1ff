package service

import (
	"context"
	"errors"
	"math"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fintrack/internal/operator/actions"
	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

const DefaultHistoryLimit = 1000

var (
	ErrTransactionNotFound = actions.ErrTransactionNotFound
	ErrInvalidLimit        = errors.New("limit must be positive")
)

// TransactionService handles transaction history business logic.
type TransactionService struct {
	reader    transaction.ITransactionReader
	processor ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader transaction.ITransactionReader, processor ActionProcessor) *TransactionService {
	return &TransactionService{reader: reader, processor: processor}
}

// ListTransactions returns one page of the owner's history, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID string, query HistoryQuery) ([]Transaction, Page, error) {
	if query.Limit < 0 {
		return nil, Page{}, ErrInvalidLimit
	}
	page := max(query.Page, 1)

	filter := &transaction.TransactionFilter{
		OwnerID:  ownerID,
		Category: query.Category,
	}
	// A page whose offset does not fit an int is past the end of any history.
	pastEnd := false
	if query.Limit > 0 {
		filter.Limit = query.Limit
		if page-1 > math.MaxInt/query.Limit {
			pastEnd = true
		} else {
			filter.Offset = (page - 1) * query.Limit
		}
	} else {
		page = 1
	}

	total, err := s.reader.Count(ctx, filter)
	if err != nil {
		return nil, Page{}, err
	}

	pageInfo := Page{Page: page, Total: total, Pages: 1}
	if query.Limit > 0 {
		pageInfo.Pages = int((total + int64(query.Limit) - 1) / int64(query.Limit))
	}

	if pastEnd || total == 0 || int64(filter.Offset) >= total {
		return nil, pageInfo, nil
	}

	rows, err := s.reader.List(ctx, filter)
	if err != nil {
		return nil, Page{}, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:          row.ID,
			Date:        row.Date,
			Description: row.Description,
			Amount:      row.Amount,
			Category:    row.Category,
			CreatedAt:   row.CreatedAt,
		}
	}

	return converted, pageInfo, nil
}

// Summary returns per category totals, largest first.
func (s *TransactionService) Summary(ctx context.Context, ownerID string) ([]CategorySummary, error) {
	rows, err := s.reader.SummarizeByCategory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := make([]CategorySummary, len(rows))
	for i, row := range rows {
		summary[i] = CategorySummary{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		}
	}
	return summary, nil
}

// DeleteTransaction returns ErrTransactionNotFound when the owner has no such transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID string, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{OwnerID: ownerID, ID: id})
}

func (s *TransactionService) DeleteAllTransactions(ctx context.Context, ownerID string) (int64, error) {
	action := &actions.DeleteAllTransactions{OwnerID: ownerID}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Deleted, nil
}
