package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"household-expenses/internal/dto"
	"household-expenses/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ReferenceHandlerSuite struct {
	suite.Suite
	handler *ReferenceHandler
	e       *echo.Echo
}

func TestReferenceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReferenceHandlerSuite))
}

func (s *ReferenceHandlerSuite) SetupTest() {
	handler, err := NewReferenceHandler("PKR")
	s.Require().NoError(err)
	s.handler = handler
	s.e = echo.New()
}

func (s *ReferenceHandlerSuite) TestGetReference() {
	req := httptest.NewRequest(http.MethodGet, "/reference", nil)
	rec := httptest.NewRecorder()

	s.NoError(s.handler.GetReference(s.e.NewContext(req, rec)))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.handler.etag, rec.Header().Get("ETag"))

	var data dto.ReferenceData
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &data))
	s.Len(data.Categories, len(models.AllCategories()))
	s.Contains(data.SubCategories["Utilities"], "Electricity")
	s.Contains(data.Beneficiaries, "Shared")
	s.Contains(data.DepositSources, "Other")
	s.NotContains(data.FamilyMembers, "Shared")
	s.Equal([]string{"current", "previous", "all"}, data.Periods)
	s.Equal("PKR", data.Currency)
}

func (s *ReferenceHandlerSuite) TestGetReference_NotModified() {
	req := httptest.NewRequest(http.MethodGet, "/reference", nil)
	req.Header.Set("If-None-Match", s.handler.etag)
	rec := httptest.NewRecorder()

	s.NoError(s.handler.GetReference(s.e.NewContext(req, rec)))
	s.Equal(http.StatusNotModified, rec.Code)
	s.Empty(rec.Body.Bytes())
}

func (s *ReferenceHandlerSuite) TestETagIsStable() {
	other, err := NewReferenceHandler("PKR")
	s.Require().NoError(err)
	s.Equal(s.handler.etag, other.etag)

	usd, err := NewReferenceHandler("USD")
	s.Require().NoError(err)
	s.NotEqual(s.handler.etag, usd.etag)
}
