package handlers

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"

	"household-expenses/internal/analytics"
	"household-expenses/internal/dto"
	"household-expenses/internal/models"

	"github.com/labstack/echo/v4"
)

// ReferenceHandler serves the fixed enumerations behind the expense, budget and bank forms
type ReferenceHandler struct {
	body []byte
	etag string
}

// NewReferenceHandler renders the reference data once; it never changes while the process runs
func NewReferenceHandler(currency string) (*ReferenceHandler, error) {
	data := buildReferenceData(currency)

	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &ReferenceHandler{
		body: body,
		etag: generateETag(body),
	}, nil
}

// GetReference returns categories, sub-categories, members, beneficiaries and deposit sources
// @Summary Reference data
// @Tags Reference
// @Produce json
// @Success 200 {object} dto.ReferenceData
// @Success 304 "Not modified"
// @Router /reference [get]
func (h *ReferenceHandler) GetReference(c echo.Context) error {
	c.Response().Header().Set("ETag", h.etag)
	c.Response().Header().Set("Cache-Control", "private, max-age=3600")

	if match := c.Request().Header.Get("If-None-Match"); match == h.etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.JSONBlob(http.StatusOK, h.body)
}

func buildReferenceData(currency string) dto.ReferenceData {
	categories := models.AllCategories()
	data := dto.ReferenceData{
		Categories:     make([]string, len(categories)),
		SubCategories:  make(map[string][]string, len(categories)),
		DepositSources: models.DepositSources(),
		Periods:        []string{string(analytics.PeriodCurrent), string(analytics.PeriodPrevious), string(analytics.PeriodAll)},
		Currency:       currency,
	}

	for i, c := range categories {
		data.Categories[i] = string(c)
		data.SubCategories[string(c)] = models.SubCategoriesFor(c)
	}

	for _, m := range models.AllFamilyMembers() {
		data.FamilyMembers = append(data.FamilyMembers, string(m))
	}

	for _, b := range models.AllBeneficiaries() {
		data.Beneficiaries = append(data.Beneficiaries, string(b))
	}

	return data
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
