package models

// School identifies a school by name. The upstream SIS API returns bare
// name records from its school-codes endpoint; departments are fetched
// separately per school.
type School struct {
	Name string `json:"Name"`
}

// Department is a (department name, owning school name) pair. The field
// casing matches the upstream SIS API, which is also the casing callers
// use in search payloads.
type Department struct {
	DepartmentName string `json:"DepartmentName"`
	SchoolName     string `json:"SchoolName"`
}

// Term identifies an academic term by its human-readable name,
// e.g. "Fall 2020".
type Term struct {
	Name string `json:"Name"`
}
