package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"household-expenses/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) run(traceID string, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	var err error
	s.NotPanics(func() {
		err = PanicRecovery()(h)(c)
	})
	return rec, err
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AnyPanicValue() {
	testCases := []struct {
		name  string
		value interface{}
	}{
		{"string", "nil map write"},
		{"pointer", &struct{ n int }{1}},
		{"int", 42},
		{"struct", struct{ field string }{"value"}},
		{"nil", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, err := s.run("trace-abc", func(c echo.Context) error {
				panic(tc.value)
			})

			s.NoError(err)
			s.Equal(http.StatusInternalServerError, rec.Code)

			var resp errors.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal("SYSTEM_001", resp.Error.Code)
			s.Equal("trace-abc", resp.Error.TraceID)
		})
	}
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_UnknownTraceID() {
	rec, _ := s.run("", func(c echo.Context) error {
		panic("boom")
	})

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unknown", resp.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassesThrough() {
	rec, err := s.run("trace-abc", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"id": "1"})
	})
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	_, err = s.run("trace-abc", func(c echo.Context) error {
		return echo.ErrNotFound
	})
	s.ErrorIs(err, echo.ErrNotFound)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AfterCommittedResponse() {
	rec, err := s.run("trace-abc", func(c echo.Context) error {
		c.Set("user_id", "owner")
		_ = c.NoContent(http.StatusNoContent)
		panic("late panic")
	})

	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}
