package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siscraper/catalog-api/internal/models"
	appErrors "github.com/siscraper/catalog-api/pkg/errors"
)

// mockCourseClient answers searches from a per-key fixture map. Keys are
// the single school or department name a derived request carries; the
// empty key answers base-case requests.
type mockCourseClient struct {
	mu       sync.Mutex
	requests []models.CourseSearchRequest
	results  map[string][]json.RawMessage
	errs     map[string]error
	delays   map[string]time.Duration

	detailsResp  json.RawMessage
	detailsErr   error
	sectionsResp json.RawMessage
	sectionsErr  error
}

func searchKey(req models.CourseSearchRequest) string {
	if len(req.Schools) > 0 {
		return req.Schools[0]
	}
	if len(req.Departments) > 0 {
		return req.Departments[0].DepartmentName
	}
	return ""
}

func (m *mockCourseClient) SearchCourses(ctx context.Context, req models.CourseSearchRequest) ([]json.RawMessage, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	key := searchKey(req)
	if d, ok := m.delays[key]; ok {
		time.Sleep(d)
	}
	if err, ok := m.errs[key]; ok {
		return nil, err
	}
	return m.results[key], nil
}

func (m *mockCourseClient) CourseDetails(ctx context.Context, req models.TermedCourseDetailsRequest) (json.RawMessage, error) {
	return m.detailsResp, m.detailsErr
}

func (m *mockCourseClient) CourseSections(ctx context.Context, req models.CourseDetailsRequest) (json.RawMessage, error) {
	return m.sectionsResp, m.sectionsErr
}

func (m *mockCourseClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func courses(titles ...string) []json.RawMessage {
	result := make([]json.RawMessage, len(titles))
	for i, title := range titles {
		result[i] = json.RawMessage(`{"Title":"` + title + `"}`)
	}
	return result
}

func titlesOf(t *testing.T, raw []json.RawMessage) []string {
	t.Helper()
	result := make([]string, len(raw))
	for i, r := range raw {
		var course models.Course
		require.NoError(t, json.Unmarshal(r, &course))
		result[i] = course.Title
	}
	return result
}

func TestSearchBaseCaseSingleCall(t *testing.T) {
	mock := &mockCourseClient{results: map[string][]json.RawMessage{
		"": courses("c1", "c2"),
	}}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	req := models.CourseSearchRequest{Terms: []string{"Fall 2020"}, Title: "Chemistry"}
	got, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.callCount())
	assert.Equal(t, req, mock.requests[0])
	assert.Equal(t, []string{"c1", "c2"}, titlesOf(t, got))
}

func TestSearchFanOutOneCallPerAxisEntry(t *testing.T) {
	mock := &mockCourseClient{results: map[string][]json.RawMessage{
		"A": courses("a1"),
		"B": courses("b1", "b2"),
		"D": courses("d1"),
	}}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	req := models.CourseSearchRequest{
		Terms:   []string{"Fall 2020"},
		Schools: []string{"A", "B"},
		Departments: []models.Department{
			{DepartmentName: "D", SchoolName: "A"},
		},
		Title: "Algebra",
	}
	got, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 3, mock.callCount())
	assert.Equal(t, []string{"a1", "b1", "b2", "d1"}, titlesOf(t, got))

	// Every derived request narrows exactly one axis and keeps the shared
	// term and title filters.
	for _, dr := range mock.requests {
		assert.Equal(t, req.Terms, dr.Terms)
		assert.Equal(t, req.Title, dr.Title)
		assert.Equal(t, 1, len(dr.Schools)+len(dr.Departments))
	}
}

func TestSearchMergeOrderIndependentOfCompletionOrder(t *testing.T) {
	mock := &mockCourseClient{
		results: map[string][]json.RawMessage{
			"A": courses("a1"),
			"B": courses("b1"),
			"D": courses("d1"),
		},
		// First-constructed call finishes last.
		delays: map[string]time.Duration{
			"A": 30 * time.Millisecond,
			"B": 10 * time.Millisecond,
		},
	}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	req := models.CourseSearchRequest{
		Schools:     []string{"A", "B"},
		Departments: []models.Department{{DepartmentName: "D", SchoolName: "S"}},
	}
	got, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "b1", "d1"}, titlesOf(t, got))
}

func TestSearchNoDeduplication(t *testing.T) {
	mock := &mockCourseClient{results: map[string][]json.RawMessage{
		"A": courses("same"),
		"D": courses("same"),
	}}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	req := models.CourseSearchRequest{
		Schools:     []string{"A"},
		Departments: []models.Department{{DepartmentName: "D", SchoolName: "A"}},
	}
	got, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"same", "same"}, titlesOf(t, got))
}

func TestSearchFanOutFailureAbortsWhole(t *testing.T) {
	mock := &mockCourseClient{
		results: map[string][]json.RawMessage{"A": courses("a1")},
		errs:    map[string]error{"B": errors.New("upstream exploded")},
	}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	req := models.CourseSearchRequest{Schools: []string{"A", "B"}}
	got, err := svc.Search(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestSearchBaseCaseFailure(t *testing.T) {
	mock := &mockCourseClient{errs: map[string]error{"": errors.New("boom")}}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	_, err := svc.Search(context.Background(), models.CourseSearchRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

type fanoutRecorder struct{ observed []int }

func (f *fanoutRecorder) ObserveSearchFanout(calls int) { f.observed = append(f.observed, calls) }

func TestSearchRecordsFanoutWidth(t *testing.T) {
	mock := &mockCourseClient{results: map[string][]json.RawMessage{
		"A": nil, "B": nil,
	}}
	recorder := &fanoutRecorder{}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), recorder)

	_, err := svc.Search(context.Background(), models.CourseSearchRequest{Schools: []string{"A", "B"}})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, recorder.observed)
}

func TestCourseDetailsValidation(t *testing.T) {
	mock := &mockCourseClient{detailsResp: json.RawMessage(`{"Title":"x"}`)}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	_, err := svc.CourseDetails(context.Background(), models.TermedCourseDetailsRequest{
		CourseNumber: "AS.050.101", SectionNumber: "01",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)

	details, err := svc.CourseDetails(context.Background(), models.TermedCourseDetailsRequest{
		CourseNumber: "AS.050.101", SectionNumber: "01", Term: "Fall 2020",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Title":"x"}`, string(details))
}

func TestCourseSectionsOptionalTerm(t *testing.T) {
	mock := &mockCourseClient{sectionsResp: json.RawMessage(`[]`)}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	_, err := svc.CourseSections(context.Background(), models.CourseDetailsRequest{
		CourseNumber: "EN.601.220", SectionNumber: "02",
	})
	assert.NoError(t, err)

	_, err = svc.CourseSections(context.Background(), models.CourseDetailsRequest{
		SectionNumber: "02",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)
}

func TestCourseDetailsUpstreamFailure(t *testing.T) {
	mock := &mockCourseClient{detailsErr: errors.New("timeout")}
	svc := NewSearchService(mock, validator.New(), zap.NewNop(), nil)

	_, err := svc.CourseDetails(context.Background(), models.TermedCourseDetailsRequest{
		CourseNumber: "AS.050.101", SectionNumber: "01", Term: "Fall 2020",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
