package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siscraper/catalog-api/internal/models"
	appErrors "github.com/siscraper/catalog-api/pkg/errors"
)

// courseClient is the slice of the SIS client the search service needs.
type courseClient interface {
	SearchCourses(ctx context.Context, req models.CourseSearchRequest) ([]json.RawMessage, error)
	CourseDetails(ctx context.Context, req models.TermedCourseDetailsRequest) (json.RawMessage, error)
	CourseSections(ctx context.Context, req models.CourseDetailsRequest) (json.RawMessage, error)
}

// fanoutObserver records the decomposition width of each search.
type fanoutObserver interface {
	ObserveSearchFanout(calls int)
}

// SearchService decomposes course searches into upstream calls and merges
// the results. The upstream API ANDs its School/Department parameters with
// the Term parameters, so a request naming several schools or departments
// cannot be expressed in one call: it is split along the school/department
// axis, one call per entry, and the result lists are unioned client-side.
type SearchService struct {
	sis       courseClient
	validator *validator.Validate
	logger    *zap.Logger
	metrics   fanoutObserver
}

// NewSearchService creates a search service.
func NewSearchService(sis courseClient, validate *validator.Validate, logger *zap.Logger, metrics fanoutObserver) *SearchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{sis: sis, validator: validate, logger: logger, metrics: metrics}
}

// Search runs one course search. When the request names no schools and no
// departments it maps to exactly one upstream call. Otherwise each school
// and each department becomes its own derived request, all issued
// concurrently; the merged list concatenates each call's results in
// construction order (schools first, then departments, each in input
// order), regardless of completion order. A course reachable through both a
// selected school and one of its departments appears twice; results are
// not deduplicated. Any single failure fails the whole search.
func (s *SearchService) Search(ctx context.Context, req models.CourseSearchRequest) ([]json.RawMessage, error) {
	if len(req.Schools) == 0 && len(req.Departments) == 0 {
		courses, err := s.sis.SearchCourses(ctx, req)
		if err != nil {
			s.logger.Error("course search failed", zap.Error(err))
			return nil, appErrors.Internal(err, "course search failed")
		}
		return courses, nil
	}

	derived := make([]models.CourseSearchRequest, 0, len(req.Schools)+len(req.Departments))
	for _, school := range req.Schools {
		derived = append(derived, models.CourseSearchRequest{
			Terms:   req.Terms,
			Schools: []string{school},
			Title:   req.Title,
		})
	}
	for _, dept := range req.Departments {
		derived = append(derived, models.CourseSearchRequest{
			Terms:       req.Terms,
			Departments: []models.Department{dept},
			Title:       req.Title,
		})
	}

	if s.metrics != nil {
		s.metrics.ObserveSearchFanout(len(derived))
	}

	results := make([][]json.RawMessage, len(derived))
	g, gctx := errgroup.WithContext(ctx)
	for i, dr := range derived {
		i, dr := i, dr
		g.Go(func() error {
			courses, err := s.sis.SearchCourses(gctx, dr)
			if err != nil {
				return err
			}
			results[i] = courses
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("course search fan-out failed",
			zap.Int("calls", len(derived)),
			zap.Error(err))
		return nil, appErrors.Internal(err, "course search failed")
	}

	merged := make([]json.RawMessage, 0)
	for _, courses := range results {
		merged = append(merged, courses...)
	}
	return merged, nil
}

// CourseDetails fetches the detailed record for one course section.
func (s *SearchService) CourseDetails(ctx context.Context, req models.TermedCourseDetailsRequest) (json.RawMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status, "malformed course details request")
	}

	details, err := s.sis.CourseDetails(ctx, req)
	if err != nil {
		s.logger.Error("course details failed",
			zap.String("course", req.CourseNumber),
			zap.Error(err))
		return nil, appErrors.Internal(err, "course details failed")
	}
	return details, nil
}

// CourseSections fetches the section records for one course.
func (s *SearchService) CourseSections(ctx context.Context, req models.CourseDetailsRequest) (json.RawMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status, "malformed course sections request")
	}

	sections, err := s.sis.CourseSections(ctx, req)
	if err != nil {
		s.logger.Error("course sections failed",
			zap.String("course", req.CourseNumber),
			zap.Error(err))
		return nil, appErrors.Internal(err, "course sections failed")
	}
	return sections, nil
}
