package issue

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
	"github.com/magabrotheeeer/streamora/internal/services/moderation"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) IssueStrike(ctx context.Context, username string, level int) (models.CreatorStats, error) {
	args := m.Called(ctx, username, level)
	return args.Get(0).(models.CreatorStats), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doRequest(t *testing.T, service Service, username string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/strikes/"+username, bytes.NewReader(payload))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", username)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	New(newNoopLogger(), service).ServeHTTP(w, req)
	return w
}

func TestServeHTTP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := new(MockService)
		service.On("IssueStrike", mock.Anything, "creator1", 2).
			Return(models.CreatorStats{Username: "creator1", Strikes: 2}, nil)

		w := doRequest(t, service, "creator1", models.DummyStrike{Level: 2})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"strikes":2`)
		service.AssertExpectations(t)
	})

	t.Run("level fails validation", func(t *testing.T) {
		service := new(MockService)

		w := doRequest(t, service, "creator1", models.DummyStrike{Level: 5})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		service.AssertNotCalled(t, "IssueStrike")
	})

	t.Run("strike must escalate", func(t *testing.T) {
		service := new(MockService)
		service.On("IssueStrike", mock.Anything, "creator1", 1).
			Return(models.CreatorStats{}, moderation.ErrStrikeNotEscalating)

		w := doRequest(t, service, "creator1", models.DummyStrike{Level: 1})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		service := new(MockService)

		req := httptest.NewRequest(http.MethodPost, "/admin/strikes/creator1", bytes.NewReader([]byte("{broken")))
		w := httptest.NewRecorder()
		New(newNoopLogger(), service).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
