package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	appErrors "github.com/siscraper/catalog-api/pkg/errors"
)

// catalogClient is the slice of the SIS client the catalog service needs.
type catalogClient interface {
	Schools(ctx context.Context) (json.RawMessage, error)
	Departments(ctx context.Context, school string) (json.RawMessage, error)
	Terms(ctx context.Context) (json.RawMessage, error)
}

// CatalogService exposes the upstream code lists. Bodies pass through
// verbatim; the proxy adds nothing beyond error translation and logging.
type CatalogService struct {
	sis    catalogClient
	logger *zap.Logger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(sis catalogClient, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{sis: sis, logger: logger}
}

// Schools lists the schools known upstream.
func (s *CatalogService) Schools(ctx context.Context) (json.RawMessage, error) {
	schools, err := s.sis.Schools(ctx)
	if err != nil {
		s.logger.Error("list schools failed", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list schools")
	}
	return schools, nil
}

// Departments lists the departments of one school.
func (s *CatalogService) Departments(ctx context.Context, school string) (json.RawMessage, error) {
	if school == "" {
		return nil, appErrors.InvalidArgument("school is required")
	}

	departments, err := s.sis.Departments(ctx, school)
	if err != nil {
		s.logger.Error("list departments failed",
			zap.String("school", school),
			zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list departments")
	}
	return departments, nil
}

// Terms lists the academic terms known upstream.
func (s *CatalogService) Terms(ctx context.Context) (json.RawMessage, error) {
	terms, err := s.sis.Terms(ctx)
	if err != nil {
		s.logger.Error("list terms failed", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list terms")
	}
	return terms, nil
}
