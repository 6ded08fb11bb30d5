package me

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/auth-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/auth-service/internal/models"
)

func TestMeHandler_ServeHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	alice := &models.User{
		Username:  "alice",
		Email:     "alice@x.com",
		Activated: true,
		SecretKey: "secret",
		ClientID:  "0123456789ABCD",
	}
	req := httptest.NewRequest(http.MethodGet, "/users/me/", nil)
	req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, alice))
	rec := httptest.NewRecorder()

	New(logger).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"alice","email":"alice@x.com","activated":true}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret")

	rec = httptest.NewRecorder()
	New(logger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
