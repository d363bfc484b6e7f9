// Package query contains the pure request-formatting and request-parsing
// layer between the public search API and the upstream SIS API: it turns
// untyped caller payloads into typed requests and typed requests into the
// query strings and path segments the upstream understands.
package query

import (
	"strings"

	"github.com/siscraper/catalog-api/internal/models"
)

// FormatCourseQuery renders a course search request as the upstream query
// string fragment, without URL escaping. Fragment groups appear in fixed
// order: terms, schools, school/department pairs, then the title filter.
// Empty groups contribute nothing, so an empty request formats to "".
//
// Each department entry carries its own school, and contributes both a
// School= and a Department= parameter; a school selected directly and again
// through one of its departments is therefore repeated. The upstream API
// requires the pairing.
func FormatCourseQuery(req models.CourseSearchRequest) string {
	groups := make([]string, 0, 4)

	if len(req.Terms) > 0 {
		parts := make([]string, len(req.Terms))
		for i, term := range req.Terms {
			parts[i] = "Term=" + term
		}
		groups = append(groups, strings.Join(parts, "&"))
	}

	if len(req.Schools) > 0 {
		parts := make([]string, len(req.Schools))
		for i, school := range req.Schools {
			parts[i] = "School=" + school
		}
		groups = append(groups, strings.Join(parts, "&"))
	}

	if len(req.Departments) > 0 {
		parts := make([]string, len(req.Departments))
		for i, dept := range req.Departments {
			parts[i] = "School=" + dept.SchoolName + "&Department=" + dept.DepartmentName
		}
		groups = append(groups, strings.Join(parts, "&"))
	}

	if req.Title != "" {
		groups = append(groups, "CourseTitle="+req.Title)
	}

	return strings.Join(groups, "&")
}

// CourseDetailsPath builds the upstream path for the details endpoint:
// the course number with dots stripped, concatenated with the section
// number, followed by the term segment.
func CourseDetailsPath(req models.TermedCourseDetailsRequest) []string {
	return []string{stripDots(req.CourseNumber) + req.SectionNumber, req.Term}
}

// CourseSectionsPath builds the upstream path for the sections endpoint.
// The term segment is present only when the request carries one.
func CourseSectionsPath(req models.CourseDetailsRequest) []string {
	segments := []string{stripDots(req.CourseNumber) + req.SectionNumber}
	if req.Term != "" {
		segments = append(segments, req.Term)
	}
	return segments
}

func stripDots(courseNumber string) string {
	return strings.ReplaceAll(courseNumber, ".", "")
}
