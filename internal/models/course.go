package models

// Course is the flat record the upstream SIS API returns for each course
// section. Every scalar field is string-typed upstream, including counts.
// The proxy passes course records through verbatim and never interprets
// them field by field; this type documents the shape for API consumers
// and is used by tests to decode fixtures.
type Course struct {
	AllDepartments         string           `json:"AllDepartments"`
	Areas                  string           `json:"Areas"`
	Building               string           `json:"Building"`
	CoursePrefix           string           `json:"CoursePrefix"`
	Credits                string           `json:"Credits"`
	Department             string           `json:"Department"`
	DOW                    string           `json:"DOW"`
	DOWSort                string           `json:"DOWSort"`
	HasBio                 string           `json:"HasBio"`
	InstructionMethod      string           `json:"InstructionMethod"`
	Instructors            string           `json:"Instructors"`
	InstructorsFullName    string           `json:"InstructorsFullName"`
	IsWritingIntensive     string           `json:"IsWritingIntensive"`
	Level                  string           `json:"Level"`
	Location               string           `json:"Location"`
	MaxSeats               string           `json:"MaxSeats"`
	Meetings               string           `json:"Meetings"`
	OfferingName           string           `json:"OfferingName"`
	OpenSeats              string           `json:"OpenSeats"`
	Repeatable             string           `json:"Repeatable"`
	SchoolName             string           `json:"SchoolName"`
	SeatsAvailable         string           `json:"SeatsAvailable"`
	SectionCoReqNotes      string           `json:"SectionCoReqNotes"`
	SectionCoRequisites    string           `json:"SectionCoRequisites"`
	SectionName            string           `json:"SectionName"`
	SectionRegRestrictions string           `json:"SectionRegRestrictions"`
	Status                 string           `json:"Status"`
	SectionDetails         []SectionDetails `json:"SectionDetails"`
	SubDepartment          string           `json:"SubDepartment"`
	Term                   string           `json:"Term"`
	TermIDR                string           `json:"Term_IDR"`
	TermJSS                string           `json:"Term_JSS"`
	TermStartDate          string           `json:"TermStartDate"`
	TimeOfDay              string           `json:"TimeOfDay"`
	Title                  string           `json:"Title"`
	Waitlisted             string           `json:"Waitlisted"`
}

// SectionDetails describes one section of a course. The upstream details
// endpoint returns an array of these; consumers typically read only the
// first element.
type SectionDetails struct {
	CoRequisites   []string  `json:"CoRequisites"`
	Credits        string    `json:"Credits"`
	CreditType     string    `json:"CreditType"`
	Departments    string    `json:"Departments"`
	DepartmentID   string    `json:"DepartmentID"`
	Description    string    `json:"Description"`
	EvaluationURLs []string  `json:"EvaluationUrls"`
	Fees           []string  `json:"Fees"`
	Meetings       []Meeting `json:"Meetings"`
	WebNotes       string    `json:"WebNotes"`
}

// Meeting is one scheduled class meeting inside SectionDetails.
type Meeting struct {
	Building string `json:"Building"`
	DOW      string `json:"DOW"`
	Dates    string `json:"Dates"`
	Location string `json:"Location"`
	Room     string `json:"Room"`
	Times    string `json:"Times"`
}
