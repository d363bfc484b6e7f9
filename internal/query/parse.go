package query

import (
	"fmt"

	"github.com/siscraper/catalog-api/internal/models"
	appErrors "github.com/siscraper/catalog-api/pkg/errors"
)

// ParseCourseSearchRequest checks that an arbitrary decoded JSON value has
// the course search shape and returns the typed request. It never panics;
// any malformed shape yields an INVALID_ARGUMENT error naming the offending
// field. Unrecognized keys are ignored.
func ParseCourseSearchRequest(v interface{}) (models.CourseSearchRequest, error) {
	var req models.CourseSearchRequest

	obj, ok := v.(map[string]interface{})
	if !ok {
		return req, appErrors.InvalidArgument("search request must be a JSON object")
	}

	terms, err := stringSlice(obj, "terms")
	if err != nil {
		return req, err
	}

	schools, err := stringSlice(obj, "schools")
	if err != nil {
		return req, err
	}

	departments, err := departmentSlice(obj)
	if err != nil {
		return req, err
	}

	title, err := optionalString(obj, "title")
	if err != nil {
		return req, err
	}

	req = models.CourseSearchRequest{
		Terms:       terms,
		Schools:     schools,
		Departments: departments,
		Title:       title,
	}
	return req, nil
}

func stringSlice(obj map[string]interface{}, key string) ([]string, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, appErrors.InvalidArgument(fmt.Sprintf("%s is required", key))
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, appErrors.InvalidArgument(fmt.Sprintf("%s must be an array of strings", key))
	}

	result := make([]string, len(list))
	for i, el := range list {
		s, ok := el.(string)
		if !ok {
			return nil, appErrors.InvalidArgument(fmt.Sprintf("%s[%d] must be a string", key, i))
		}
		result[i] = s
	}
	return result, nil
}

func departmentSlice(obj map[string]interface{}) ([]models.Department, error) {
	raw, ok := obj["departments"]
	if !ok {
		return nil, appErrors.InvalidArgument("departments is required")
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, appErrors.InvalidArgument("departments must be an array")
	}

	result := make([]models.Department, len(list))
	for i, el := range list {
		entry, ok := el.(map[string]interface{})
		if !ok {
			return nil, appErrors.InvalidArgument(fmt.Sprintf("departments[%d] must be an object", i))
		}

		deptName, ok := entry["DepartmentName"].(string)
		if !ok {
			return nil, appErrors.InvalidArgument(fmt.Sprintf("departments[%d].DepartmentName must be a string", i))
		}
		schoolName, ok := entry["SchoolName"].(string)
		if !ok {
			return nil, appErrors.InvalidArgument(fmt.Sprintf("departments[%d].SchoolName must be a string", i))
		}

		result[i] = models.Department{DepartmentName: deptName, SchoolName: schoolName}
	}
	return result, nil
}

func optionalString(obj map[string]interface{}, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", appErrors.InvalidArgument(fmt.Sprintf("%s must be a string", key))
	}
	return s, nil
}
