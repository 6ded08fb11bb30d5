package token

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/auth-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/auth-service/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) RetrieveToken(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTokenHandler_ServeHTTP(t *testing.T) {
	alice := &models.User{Username: "alice", Activated: true}

	t.Run("token retrieved", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("RetrieveToken", mock.Anything, alice).Return("tok", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/retrieve-access-token", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, alice))
		rec := httptest.NewRecorder()

		New(newNoopLogger(), svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"isSuccessful":true,"message":"Token retrieved successfully","data":["tok"]}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("issue failure", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("RetrieveToken", mock.Anything, alice).Return("", errors.New("sign failed")).Once()

		req := httptest.NewRequest(http.MethodGet, "/retrieve-access-token", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, alice))
		rec := httptest.NewRecorder()

		New(newNoopLogger(), svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "internal error", got["error"])
	})

	t.Run("no user in context", func(t *testing.T) {
		svc := new(ServiceMock)
		req := httptest.NewRequest(http.MethodGet, "/retrieve-access-token", nil)
		rec := httptest.NewRecorder()

		New(newNoopLogger(), svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "RetrieveToken", mock.Anything, mock.Anything)
	})
}
