package service

import (
	"context"

	"github.com/carson-networks/fintrack/internal/ingest"
	"github.com/carson-networks/fintrack/internal/operator/actions"
	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

// ActionProcessor runs a write action inside its own storage transaction.
// *operator.OperatorDelegator satisfies it.
//
//go:generate mockery --name ActionProcessor --output mock_ActionProcessor.go
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Ingest      *IngestService
}

// NewService creates a new Service. The pipeline's inserter is expected to be
// built with NewBatchInserter over the same processor.
func NewService(reader transaction.ITransactionReader, processor ActionProcessor, pipeline *ingest.Pipeline) *Service {
	return &Service{
		Transaction: NewTransactionService(reader, processor),
		Ingest:      NewIngestService(pipeline),
	}
}
