package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/siscraper/catalog-api/pkg/errors"
)

type mockCatalogClient struct {
	schools     json.RawMessage
	departments json.RawMessage
	terms       json.RawMessage
	err         error
	lastSchool  string
}

func (m *mockCatalogClient) Schools(ctx context.Context) (json.RawMessage, error) {
	return m.schools, m.err
}

func (m *mockCatalogClient) Departments(ctx context.Context, school string) (json.RawMessage, error) {
	m.lastSchool = school
	return m.departments, m.err
}

func (m *mockCatalogClient) Terms(ctx context.Context) (json.RawMessage, error) {
	return m.terms, m.err
}

func TestCatalogServiceSchoolsPassThrough(t *testing.T) {
	raw := json.RawMessage(`[{"Name":"Carey Business School","Extra":"kept"}]`)
	svc := NewCatalogService(&mockCatalogClient{schools: raw}, zap.NewNop())

	got, err := svc.Schools(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestCatalogServiceDepartments(t *testing.T) {
	mock := &mockCatalogClient{departments: json.RawMessage(`[]`)}
	svc := NewCatalogService(mock, zap.NewNop())

	_, err := svc.Departments(context.Background(), "Whiting School of Engineering")
	require.NoError(t, err)
	assert.Equal(t, "Whiting School of Engineering", mock.lastSchool)
}

func TestCatalogServiceDepartmentsRequiresSchool(t *testing.T) {
	svc := NewCatalogService(&mockCatalogClient{}, zap.NewNop())

	_, err := svc.Departments(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)
}

func TestCatalogServiceUpstreamFailure(t *testing.T) {
	svc := NewCatalogService(&mockCatalogClient{err: errors.New("boom")}, zap.NewNop())

	_, err := svc.Terms(context.Background())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
}
