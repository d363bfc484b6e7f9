package models

// CourseSearchRequest is the input to a decomposed course search. Terms are
// unioned, as are schools and departments; title is a free-text filter on
// the course title. Order of each slice is preserved through formatting and
// result merging.
type CourseSearchRequest struct {
	Terms       []string     `json:"terms"`
	Schools     []string     `json:"schools"`
	Departments []Department `json:"departments"`
	Title       string       `json:"title,omitempty"`
}

// CourseDetailsRequest asks for the sections of a single course, optionally
// narrowed to one term.
type CourseDetailsRequest struct {
	CourseNumber  string `json:"courseNumber" validate:"required"`
	SectionNumber string `json:"sectionNumber" validate:"required"`
	Term          string `json:"term,omitempty"`
}

// TermedCourseDetailsRequest is a CourseDetailsRequest with the term
// mandatory, as required by the upstream details endpoint.
type TermedCourseDetailsRequest struct {
	CourseNumber  string `json:"courseNumber" validate:"required"`
	SectionNumber string `json:"sectionNumber" validate:"required"`
	Term          string `json:"term" validate:"required"`
}
