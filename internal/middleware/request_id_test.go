package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const uuidPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// serve runs RequestID for a request carrying header (if non-empty) and returns the
// trace ID seen by the handler, the one on the request context and the response header
func (s *RequestIDTestSuite) serve(header string) (fromEcho, fromContext, fromHeader string) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromContext = services.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))

	return fromEcho, fromContext, rec.Header().Get(TraceIDHeader)
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesUUID() {
	fromEcho, fromContext, fromHeader := s.serve("")

	s.Regexp(uuidPattern, fromEcho)
	s.Equal(fromEcho, fromContext)
	s.Equal(fromEcho, fromHeader)
}

func (s *RequestIDTestSuite) TestRequestID_ClientTraceID() {
	testCases := []struct {
		name   string
		header string
		reused bool
	}{
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"dotted", "web.checkout_42", true},
		{"max length", strings.Repeat("a", maxTraceIDLength), true},
		{"too long", strings.Repeat("a", maxTraceIDLength+1), false},
		{"whitespace", "trace id", false},
		{"header injection", "abc\r\nSet-Cookie: x=1", false},
		{"non ascii", "trace-é", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fromEcho, fromContext, fromHeader := s.serve(tc.header)

			if tc.reused {
				s.Equal(tc.header, fromEcho)
			} else {
				s.NotEqual(tc.header, fromEcho)
				s.Regexp(uuidPattern, fromEcho)
			}
			s.Equal(fromEcho, fromContext)
			s.Equal(fromEcho, fromHeader)
		})
	}
}

func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _, _ := s.serve("")
	second, _, _ := s.serve("")
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyOutsideMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))

	c.Set(TraceIDContextKey, 42)
	s.Empty(GetTraceID(c))
}
