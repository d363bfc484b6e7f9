package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siscraper/catalog-api/internal/models"
)

func TestFormatCourseQueryEmpty(t *testing.T) {
	assert.Equal(t, "", FormatCourseQuery(models.CourseSearchRequest{}))
}

func TestFormatCourseQuerySchoolOnly(t *testing.T) {
	req := models.CourseSearchRequest{
		Schools: []string{"Krieger School of Arts and Sciences"},
	}
	assert.Equal(t, "School=Krieger School of Arts and Sciences", FormatCourseQuery(req))
}

func TestFormatCourseQueryTermAndSchool(t *testing.T) {
	req := models.CourseSearchRequest{
		Terms:   []string{"Fall 2010"},
		Schools: []string{"Carey Business School"},
	}
	assert.Equal(t, "Term=Fall 2010&School=Carey Business School", FormatCourseQuery(req))
}

func TestFormatCourseQueryDepartmentContributesSchoolPair(t *testing.T) {
	req := models.CourseSearchRequest{
		Terms:   []string{"Fall 2020", "Spring 2021"},
		Schools: []string{"Whiting School of Engineering"},
		Departments: []models.Department{
			{DepartmentName: "AS Near Eastern Studies", SchoolName: "Whiting School of Engineering"},
		},
	}

	// The school appears twice: once from the schools group and once from
	// the department's own school pairing.
	want := "Term=Fall 2020&Term=Spring 2021" +
		"&School=Whiting School of Engineering" +
		"&School=Whiting School of Engineering&Department=AS Near Eastern Studies"
	assert.Equal(t, want, FormatCourseQuery(req))
}

func TestFormatCourseQueryTitle(t *testing.T) {
	req := models.CourseSearchRequest{
		Terms: []string{"Fall 2020"},
		Title: "Intro to Chemistry",
	}
	assert.Equal(t, "Term=Fall 2020&CourseTitle=Intro to Chemistry", FormatCourseQuery(req))

	only := models.CourseSearchRequest{Title: "Calculus"}
	assert.Equal(t, "CourseTitle=Calculus", FormatCourseQuery(only))
}

func TestFormatCourseQueryNoDanglingSeparators(t *testing.T) {
	cases := []models.CourseSearchRequest{
		{},
		{Terms: []string{"Fall 2020"}},
		{Schools: []string{"A", "B"}},
		{Departments: []models.Department{{DepartmentName: "D", SchoolName: "S"}}},
		{Terms: []string{"Fall 2020"}, Schools: []string{"A"}, Title: "T"},
	}

	for _, req := range cases {
		got := FormatCourseQuery(req)
		assert.False(t, strings.HasPrefix(got, "&"), "leading separator in %q", got)
		assert.False(t, strings.HasSuffix(got, "&"), "trailing separator in %q", got)
		assert.NotContains(t, got, "&&", "doubled separator in %q", got)
	}
}

func TestFormatCourseQueryPreservesInputOrder(t *testing.T) {
	req := models.CourseSearchRequest{
		Terms:   []string{"Spring 2021", "Fall 2020"},
		Schools: []string{"B", "A"},
	}
	assert.Equal(t, "Term=Spring 2021&Term=Fall 2020&School=B&School=A", FormatCourseQuery(req))
}

func TestCourseDetailsPath(t *testing.T) {
	req := models.TermedCourseDetailsRequest{
		CourseNumber:  "AS.050.101",
		SectionNumber: "01",
		Term:          "Fall 2020",
	}
	assert.Equal(t, []string{"AS05010101", "Fall 2020"}, CourseDetailsPath(req))
}

func TestCourseSectionsPath(t *testing.T) {
	withTerm := models.CourseDetailsRequest{
		CourseNumber:  "EN.601.220",
		SectionNumber: "02",
		Term:          "Spring 2021",
	}
	assert.Equal(t, []string{"EN60122002", "Spring 2021"}, CourseSectionsPath(withTerm))

	withoutTerm := models.CourseDetailsRequest{
		CourseNumber:  "EN.601.220",
		SectionNumber: "02",
	}
	assert.Equal(t, []string{"EN60122002"}, CourseSectionsPath(withoutTerm))
}
