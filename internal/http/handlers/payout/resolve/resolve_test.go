package resolve

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/monetization"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ResolvePayout(ctx context.Context, id string, approved bool) (*models.PayoutRequest, error) {
	args := m.Called(ctx, id, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PayoutRequest), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doRequest(t *testing.T, service Service, id string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/payouts/"+id, bytes.NewReader(payload))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	New(newNoopLogger(), service).ServeHTTP(w, req)
	return w
}

func TestServeHTTP(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		service := new(MockService)
		service.On("ResolvePayout", mock.Anything, "pay-1", true).
			Return(&models.PayoutRequest{ID: "pay-1", Status: models.StatusApproved}, nil)

		w := doRequest(t, service, "pay-1", models.DummyResolve{Decision: "approved"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"approved"`)
		service.AssertExpectations(t)
	})

	t.Run("rejected", func(t *testing.T) {
		service := new(MockService)
		service.On("ResolvePayout", mock.Anything, "pay-1", false).
			Return(&models.PayoutRequest{ID: "pay-1", Status: models.StatusRejected}, nil)

		w := doRequest(t, service, "pay-1", models.DummyResolve{Decision: "rejected"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown decision fails validation", func(t *testing.T) {
		service := new(MockService)

		w := doRequest(t, service, "pay-1", models.DummyResolve{Decision: "maybe"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		service.AssertNotCalled(t, "ResolvePayout")
	})

	t.Run("request not found", func(t *testing.T) {
		service := new(MockService)
		service.On("ResolvePayout", mock.Anything, "ghost", true).
			Return(nil, monetization.ErrRequestNotFound)

		w := doRequest(t, service, "ghost", models.DummyResolve{Decision: "approved"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
