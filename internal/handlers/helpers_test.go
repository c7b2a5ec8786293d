package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newJSONContext builds an echo context for body. A string body is sent verbatim.
func newJSONContext(e *echo.Echo, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if raw, ok := body.(string); ok {
		buf.WriteString(raw)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// newUserContext is newJSONContext with an authenticated user and an optional :id param
func newUserContext(e *echo.Echo, userID uuid.UUID, method, path string, body interface{}, id string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(e, method, path, body)
	c.Set("user_id", userID)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func responseErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var errorResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResp))
	return errorResp.Error.Code
}
