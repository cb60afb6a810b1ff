package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fintrack/internal/auth"
	"github.com/carson-networks/fintrack/internal/ingest"
	"github.com/carson-networks/fintrack/internal/service"
	"github.com/carson-networks/fintrack/internal/storage/transaction"
)

func newTestRouter(t *testing.T) (http.Handler, *transaction.MockITransactionReader, *auth.TokenVerifier) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	reader := transaction.NewMockITransactionReader(t)
	processor := service.NewMockActionProcessor(t)
	pipeline := ingest.NewPipeline(service.NewBatchInserter(processor), nil, logger, ingest.Options{SpoolDir: t.TempDir()})
	verifier := auth.NewTokenVerifier("test-secret")

	rest := &Rest{
		Logger:      logger,
		Service:     service.NewService(reader, processor, pipeline),
		Auth:        verifier,
		CORSOrigins: []string{"https://app.example.com"},
	}
	return rest.Router(), reader, verifier
}

func TestRouter_Status(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_HistoryRequiresToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/history", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_HistoryWithToken(t *testing.T) {
	router, reader, verifier := newTestRouter(t)

	token, err := verifier.SignToken("owner-1", time.Hour)
	require.NoError(t, err)

	reader.EXPECT().Count(mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.OwnerID == "owner-1" && f.Limit == 1000
	})).Return(int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UploadRequiresToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/upload-csv", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/history", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
