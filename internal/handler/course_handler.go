package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siscraper/catalog-api/internal/models"
	"github.com/siscraper/catalog-api/internal/query"
	appErrors "github.com/siscraper/catalog-api/pkg/errors"
	"github.com/siscraper/catalog-api/pkg/response"
)

type courseService interface {
	Search(ctx context.Context, req models.CourseSearchRequest) ([]json.RawMessage, error)
	CourseDetails(ctx context.Context, req models.TermedCourseDetailsRequest) (json.RawMessage, error)
	CourseSections(ctx context.Context, req models.CourseDetailsRequest) (json.RawMessage, error)
}

// CourseHandler exposes the course search and detail operations.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Search godoc
// @Summary Search courses
// @Description Searches courses across any combination of terms, schools, and departments. Schools and departments are unioned; each one decomposes into its own upstream call.
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.CourseSearchRequest true "Search request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /courses/search [post]
func (h *CourseHandler) Search(c *gin.Context) {
	// The payload is caller-supplied and untrusted; it is decoded as an
	// arbitrary value and parsed explicitly rather than bound to a struct,
	// so wrong-typed fields are rejected with a reason instead of being
	// zeroed.
	var payload interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, http.StatusBadRequest, "request body must be valid JSON"))
		return
	}

	req, err := query.ParseCourseSearchRequest(payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	courses, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Details godoc
// @Summary Get course details
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.TermedCourseDetailsRequest true "Details request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /courses/details [post]
func (h *CourseHandler) Details(c *gin.Context) {
	var req models.TermedCourseDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, http.StatusBadRequest, "malformed course details request"))
		return
	}

	details, err := h.service.CourseDetails(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details)
}

// Sections godoc
// @Summary Get course sections
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.CourseDetailsRequest true "Sections request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /courses/sections [post]
func (h *CourseHandler) Sections(c *gin.Context) {
	var req models.CourseDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, http.StatusBadRequest, "malformed course sections request"))
		return
	}

	sections, err := h.service.CourseSections(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections)
}
