package transaction

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fintrack/internal/service"
)

type DeleteTransactionInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	ID            string `path:"id" doc:"Transaction UUID"`
}

type DeleteAllTransactionsInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

type MessageBody struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

type DeleteOutput struct {
	Body MessageBody
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, ownerID string, id uuid.UUID) error
	DeleteAllTransactions(ctx context.Context, ownerID string) (int64, error)
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id} and DELETE /v1/transactions.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
	Auth               ownerResolver
}

func NewDeleteTransactionHandler(svc transactionDeleter, resolver ownerResolver) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc, Auth: resolver}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete one transaction",
		Tags:        []string{"Transactions"},
	}, h.handleOne)

	huma.Register(api, huma.Operation{
		OperationID: "delete-all-transactions",
		Method:      http.MethodDelete,
		Path:        "/v1/transactions",
		Summary:     "Delete every transaction of the caller",
		Tags:        []string{"Transactions"},
	}, h.handleAll)
}

func (h *DeleteTransactionHandler) handleOne(ctx context.Context, input *DeleteTransactionInput) (*DeleteOutput, error) {
	ownerID, err := resolveOwner(h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	err = h.TransactionService.DeleteTransaction(ctx, ownerID, id)
	if errors.Is(err, service.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "Transaction not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	return &DeleteOutput{Body: MessageBody{Message: "Transaction deleted successfully", Deleted: 1}}, nil
}

func (h *DeleteTransactionHandler) handleAll(ctx context.Context, input *DeleteAllTransactionsInput) (*DeleteOutput, error) {
	ownerID, err := resolveOwner(h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	deleted, err := h.TransactionService.DeleteAllTransactions(ctx, ownerID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transactions", err)
	}

	return &DeleteOutput{Body: MessageBody{
		Message: fmt.Sprintf("%d transactions deleted successfully", deleted),
		Deleted: deleted,
	}}, nil
}
