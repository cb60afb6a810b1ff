package transaction

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fintrack/internal/auth"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Date        string `json:"date" format:"date" doc:"Calendar date, YYYY-MM-DD"`
	Description string `json:"description" doc:"Description as imported"`
	Amount      string `json:"amount" doc:"Decimal amount, negative for debits"`
	Category    string `json:"category" doc:"Category label or Uncategorized"`
}

// ownerResolver maps an Authorization header to an owner id.
type ownerResolver interface {
	OwnerFromToken(raw string) (string, error)
}

func resolveOwner(resolver ownerResolver, header string) (string, error) {
	owner, err := resolver.OwnerFromToken(header)
	if errors.Is(err, auth.ErrMissingToken) {
		return "", huma.NewError(http.StatusUnauthorized, "Token missing")
	}
	if err != nil {
		return "", huma.NewError(http.StatusUnauthorized, "Invalid or expired token")
	}
	return owner, nil
}
