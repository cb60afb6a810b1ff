package upload

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/carson-networks/fintrack/internal/auth"
	"github.com/carson-networks/fintrack/internal/ingest"
	"github.com/carson-networks/fintrack/internal/logging"
)

const (
	fileField     = "file"
	dateLayout    = "2006-01-02"
	limiterExpiry = 10 * time.Minute
)

type ingester interface {
	Ingest(ctx context.Context, src io.Reader, ownerID string, batchSize int) (*ingest.Report, error)
}

type ownerResolver interface {
	OwnerFromToken(raw string) (string, error)
}

type Options struct {
	MaxUploadBytes   int64
	UploadsPerMinute int
}

// Handler serves POST /v1/upload-csv. The multipart file part is streamed
// into the ingestion pipeline without being buffered in memory.
type Handler struct {
	Ingest   ingester
	Auth     ownerResolver
	maxBytes int64
	perMin   int
	limiters *cache.Cache
}

func NewHandler(svc ingester, resolver ownerResolver, opts Options) *Handler {
	return &Handler{
		Ingest:   svc,
		Auth:     resolver,
		maxBytes: opts.MaxUploadBytes,
		perMin:   opts.UploadsPerMinute,
		limiters: cache.New(limiterExpiry, limiterExpiry),
	}
}

type PreviewTransaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
}

type uploadResponse struct {
	Inserted     int64                `json:"inserted"`
	Failed       int64                `json:"failed"`
	Encoding     string               `json:"encoding"`
	Transactions []PreviewTransaction `json:"transactions"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return errors.New("upload: method not POST")
	}

	ownerID, err := h.Auth.OwnerFromToken(req.Header.Get("Authorization"))
	if err != nil {
		msg := "Invalid or expired token"
		if errors.Is(err, auth.ErrMissingToken) {
			msg = "Token missing"
		}
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msg})
		return err
	}
	logData.AddData("ownerID", ownerID)

	if !h.allow(ownerID) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many uploads, try again later"})
		return nil
	}

	batchSize := 0
	if raw := req.URL.Query().Get("batch_size"); raw != "" {
		batchSize, err = strconv.Atoi(raw)
		if err != nil || batchSize < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "batch_size must be a positive integer"})
			return nil
		}
	}

	if h.maxBytes > 0 {
		req.Body = http.MaxBytesReader(w, req.Body, h.maxBytes)
	}

	part, err := filePart(req)
	if err != nil {
		if isTooLarge(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "upload too large"})
			return nil
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil
	}
	defer part.Close()

	report, err := h.Ingest.Ingest(req.Context(), part, ownerID, batchSize)
	if err != nil {
		return h.writeIngestError(w, logData, err)
	}

	logData.AddData("inserted", report.Inserted)
	logData.AddData("failed", report.Failed)

	resp := uploadResponse{
		Inserted:     report.Inserted,
		Failed:       report.Failed,
		Encoding:     report.Encoding.String(),
		Transactions: make([]PreviewTransaction, len(report.Preview)),
	}
	for i, row := range report.Preview {
		resp.Transactions[i] = PreviewTransaction{
			Date:        row.Date.Format(dateLayout),
			Description: row.Description,
			Amount:      row.Amount.StringFixed(2),
			Category:    row.Category,
		}
	}
	writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *Handler) writeIngestError(w http.ResponseWriter, logData *logging.LogData, err error) error {
	if isTooLarge(err) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "upload too large"})
		return nil
	}

	kind := ingest.KindOf(err)
	logData.AddData("errorKind", string(kind))
	switch kind {
	case ingest.KindSchema, ingest.KindEncoding:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: string(kind)})
		return nil
	case ingest.KindStorage:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to store transactions", Kind: string(kind)})
		return err
	}

	if errors.Is(err, context.Canceled) {
		// Client went away; nothing useful to write.
		return err
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	return err
}

// allow applies the per-owner upload rate. A non-positive rate disables limiting.
func (h *Handler) allow(ownerID string) bool {
	if h.perMin <= 0 {
		return true
	}
	if l, ok := h.limiters.Get(ownerID); ok {
		return l.(*rate.Limiter).Allow()
	}
	l := rate.NewLimiter(rate.Every(time.Minute/time.Duration(h.perMin)), h.perMin)
	if err := h.limiters.Add(ownerID, l, cache.DefaultExpiration); err != nil {
		// Lost a race with another request for the same owner.
		if existing, ok := h.limiters.Get(ownerID); ok {
			l = existing.(*rate.Limiter)
		}
	}
	return l.Allow()
}

// filePart advances the multipart stream to the "file" field.
func filePart(req *http.Request) (*multipart.Part, error) {
	mr, err := req.MultipartReader()
	if err != nil {
		return nil, errors.New("expected multipart/form-data body")
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing file field")
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == fileField {
			return part, nil
		}
		_ = part.Close()
	}
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
