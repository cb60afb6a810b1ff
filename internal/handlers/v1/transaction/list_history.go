package transaction

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fintrack/internal/logging"
	"github.com/carson-networks/fintrack/internal/service"
)

// ListHistoryInput is the Huma input for the history endpoint.
type ListHistoryInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Page          int    `query:"page" default:"1" minimum:"1" doc:"1-based page number"`
	Limit         string `query:"limit" default:"1000" doc:"Rows per page, or 'all'"`
	Category      string `query:"category" doc:"Only return this category"`
}

// ListHistoryResponseBody is the response body for the history endpoint.
type ListHistoryResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest first"`
	Total        int64         `json:"total" doc:"Number of transactions matching the filter"`
	Page         int           `json:"page" doc:"Page returned"`
	Pages        int           `json:"pages" doc:"Number of pages at this limit"`
}

// ListHistoryOutput is the Huma output for the history endpoint.
type ListHistoryOutput struct {
	Body ListHistoryResponseBody
}

// historyLister is the interface for listing transaction history.
type historyLister interface {
	ListTransactions(ctx context.Context, ownerID string, query service.HistoryQuery) ([]service.Transaction, service.Page, error)
}

// ListHistoryHandler handles GET /v1/history.
type ListHistoryHandler struct {
	TransactionService historyLister
	Auth               ownerResolver
}

func NewListHistoryHandler(svc historyLister, resolver ownerResolver) *ListHistoryHandler {
	return &ListHistoryHandler{TransactionService: svc, Auth: resolver}
}

// Register registers the history endpoint with the Huma API.
func (h *ListHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-history",
		Method:      http.MethodGet,
		Path:        "/v1/history",
		Summary:     "List transaction history",
		Description: "Returns a page of the caller's transactions with the true total count.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListHistoryInput turns query parameters into a service query.
// A limit of "all" returns every row on one page.
func parseListHistoryInput(input *ListHistoryInput) (service.HistoryQuery, error) {
	query := service.HistoryQuery{Page: input.Page}

	limit := strings.TrimSpace(input.Limit)
	if !strings.EqualFold(limit, "all") {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return service.HistoryQuery{}, huma.NewError(http.StatusBadRequest, "Invalid limit value")
		}
		query.Limit = n
	}

	if category := strings.TrimSpace(input.Category); category != "" {
		query.Category = &category
	}
	return query, nil
}

func (h *ListHistoryHandler) handle(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	ownerID, err := resolveOwner(h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	query, err := parseListHistoryInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logData.AddTiming("listHistoryMs")
	transactions, page, err := h.TransactionService.ListTransactions(ctx, ownerID, query)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	logData.AddData("transactionCount", len(transactions))

	resp := ListHistoryResponseBody{
		Transactions: make([]Transaction, len(transactions)),
		Total:        page.Total,
		Page:         page.Page,
		Pages:        page.Pages,
	}
	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			ID:          tx.ID.String(),
			Date:        tx.Date.Format(dateLayout),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Category:    tx.Category,
		}
	}

	return &ListHistoryOutput{Body: resp}, nil
}
