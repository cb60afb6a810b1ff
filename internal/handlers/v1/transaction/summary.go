package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fintrack/internal/service"
)

type SummaryInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

type CategoryTotal struct {
	Category string `json:"category" doc:"Category label"`
	Total    string `json:"total" doc:"Sum of amounts in the category"`
	Count    int64  `json:"count" doc:"Number of transactions in the category"`
}

type SummaryOutput struct {
	Body struct {
		Summary []CategoryTotal `json:"summary" doc:"Totals per category, largest first"`
	}
}

type summarizer interface {
	Summary(ctx context.Context, ownerID string) ([]service.CategorySummary, error)
}

// SummaryHandler handles GET /v1/summary.
type SummaryHandler struct {
	TransactionService summarizer
	Auth               ownerResolver
}

func NewSummaryHandler(svc summarizer, resolver ownerResolver) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc, Auth: resolver}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Spending by category",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	ownerID, err := resolveOwner(h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	rows, err := h.TransactionService.Summary(ctx, ownerID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to generate summary", err)
	}

	out := &SummaryOutput{}
	out.Body.Summary = make([]CategoryTotal, len(rows))
	for i, row := range rows {
		out.Body.Summary[i] = CategoryTotal{
			Category: row.Category,
			Total:    row.Total.StringFixed(2),
			Count:    row.Count,
		}
	}
	return out, nil
}
