package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siscraper/catalog-api/pkg/response"
)

type catalogService interface {
	Schools(ctx context.Context) (json.RawMessage, error)
	Departments(ctx context.Context, school string) (json.RawMessage, error)
	Terms(ctx context.Context) (json.RawMessage, error)
}

// CatalogHandler exposes the school/department/term code lists.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler(svc catalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Schools godoc
// @Summary List schools
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schools [get]
func (h *CatalogHandler) Schools(c *gin.Context) {
	schools, err := h.service.Schools(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schools)
}

// Departments godoc
// @Summary List departments of a school
// @Tags Catalog
// @Produce json
// @Param school path string true "School name"
// @Success 200 {object} response.Envelope
// @Router /schools/{school}/departments [get]
func (h *CatalogHandler) Departments(c *gin.Context) {
	departments, err := h.service.Departments(c.Request.Context(), c.Param("school"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, departments)
}

// Terms godoc
// @Summary List academic terms
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /terms [get]
func (h *CatalogHandler) Terms(c *gin.Context) {
	terms, err := h.service.Terms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, terms)
}
