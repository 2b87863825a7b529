package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/internal/middleware"
	"github.com/reusemart/consignment-service/pkg/utils"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// envelope is a decoded response body; Fields holds every top-level key.
type envelope struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Error   string                     `json:"error"`
	Fields  map[string]json.RawMessage `json:"-"`
}

func newAPI() (*echo.Echo, *echo.Group) {
	e := echo.New()
	return e, e.Group("/api")
}

func sessionToken(t *testing.T, id int64, role string) string {
	t.Helper()
	token, err := utils.CreateJWTToken(id, role, testSecret)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env.Fields))
	}
	return rec, env
}
