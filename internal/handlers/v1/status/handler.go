package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/fintrack/internal/logging"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB Pinger
}

func NewHandler(db Pinger) Handler {
	return Handler{DB: db}
}

type statusBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	body := statusBody{Status: "ok", Database: "ok"}
	code := http.StatusOK
	if h.DB != nil {
		if err := h.DB.PingContext(req.Context()); err != nil {
			logData.AddData("pingError", err.Error())
			body = statusBody{Status: "degraded", Database: "unreachable"}
			code = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(body)
}
