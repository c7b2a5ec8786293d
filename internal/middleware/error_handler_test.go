package middleware

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"household-expenses/internal/errors"
	"household-expenses/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

// handle runs the error handler for err and decodes the envelope
func (s *ErrorHandlerTestSuite) handle(method, traceID string, err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(method, "/api/v1/expenses", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	CustomHTTPErrorHandler(err, c)

	var resp errors.ErrorResponse
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPErrors() {
	testCases := []struct {
		name    string
		err     *echo.HTTPError
		status  int
		code    string
		message string
	}{
		{"bad request", echo.NewHTTPError(http.StatusBadRequest, "malformed JSON"), 400, "VALIDATION_001", "malformed JSON"},
		{"unauthorized", echo.NewHTTPError(http.StatusUnauthorized), 401, "AUTH_002", "Unauthorized"},
		{"forbidden", echo.NewHTTPError(http.StatusForbidden), 403, "AUTH_004", "Forbidden"},
		{"unmatched route", echo.ErrNotFound, 404, "VALIDATION_001", "Not Found"},
		{"wrong method", echo.ErrMethodNotAllowed, 405, "VALIDATION_001", "Method Not Allowed"},
		{"body limit", echo.ErrStatusRequestEntityTooLarge, 413, "VALIDATION_004", "Request Entity Too Large"},
		{"unprocessable", echo.NewHTTPError(http.StatusUnprocessableEntity), 422, "VALIDATION_001", "Unprocessable Entity"},
		{"rate limited", echo.NewHTTPError(http.StatusTooManyRequests), 429, "SYSTEM_006", "Too Many Requests"},
		{"internal message hidden", echo.NewHTTPError(http.StatusInternalServerError, "pq: timeout"), 500, "SYSTEM_001", errors.GetErrorMessage(errors.SystemInternalError)},
		{"unavailable", echo.NewHTTPError(http.StatusServiceUnavailable), 503, "SYSTEM_003", errors.GetErrorMessage(errors.SystemServiceUnavailable)},
		{"unmapped status", echo.NewHTTPError(http.StatusTeapot), 418, "SYSTEM_005", "I'm a teapot"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, resp := s.handle(http.MethodGet, "test-trace-id", tc.err)

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, resp.Error.Code)
			s.Equal(tc.message, resp.Error.Message)
			s.Equal("test-trace-id", resp.Error.TraceID)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestWrappedHTTPError() {
	err := fmt.Errorf("route: %w", echo.NewHTTPError(http.StatusTooManyRequests))

	rec, resp := s.handle(http.MethodGet, "test-trace-id", err)

	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("SYSTEM_006", resp.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestGenericError() {
	rec, resp := s.handle(http.MethodGet, "test-trace-id", stderrors.New("dial tcp: connection refused"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	_, resp := s.handle(http.MethodGet, "", stderrors.New("boom"))
	s.Equal("unknown", resp.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestHeadRequestHasNoBody() {
	rec, _ := s.handle(http.MethodHead, "test-trace-id", echo.ErrNotFound)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Zero(rec.Body.Len())
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	CustomHTTPErrorHandler(stderrors.New("late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	input := struct {
		Category string `json:"category" validate:"required,category"`
		PaidBy   string `json:"paid_by" validate:"required,family_member"`
	}{Category: "Holidays"}

	err := validation.GetValidator().Struct(input)
	s.Require().Error(err)

	rec, resp := s.handle(http.MethodPost, "test-trace-id", err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Equal([]string{
		"category: must be a known expense category",
		"paid_by: is required",
	}, resp.Error.Details)
}
