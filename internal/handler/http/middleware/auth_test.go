package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) *http.Request {
	t.Helper()
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestAuthRequired_AccessToken(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := requestWithToken(t, ja, map[string]interface{}{
		"user_id": "user-1",
		"role":    "employee",
		"type":    "access",
	})
	rec := httptest.NewRecorder()
	AuthRequired(ja)(next).ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := requestWithToken(t, ja, map[string]interface{}{
		"user_id": "user-1",
		"type":    "refresh",
	})
	rec := httptest.NewRecorder()
	AuthRequired(ja)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req = req.WithContext(jwtauth.NewContext(context.Background(), nil, nil))
	rec := httptest.NewRecorder()
	AuthRequired(ja)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_VerifierError(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req = req.WithContext(jwtauth.NewContext(context.Background(), nil, jwtauth.ErrExpired))
	rec := httptest.NewRecorder()
	AuthRequired(ja)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
