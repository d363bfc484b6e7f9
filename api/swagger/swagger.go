package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Catalog API",
        "description": "Search proxy for the university SIS course catalog",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Catalog", "description": "School, department, and term code lists"},
        {"name": "Courses", "description": "Course search and section details"}
    ],
    "paths": {
        "/schools": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List schools",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schools/{school}/departments": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List departments of a school",
                "parameters": [
                    {"name": "school", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/terms": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List academic terms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/search": {
            "post": {
                "tags": ["Courses"],
                "summary": "Search courses",
                "description": "Terms are unioned, as are schools and departments. Each school and each department decomposes into its own upstream call; results are concatenated without deduplication.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseSearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/details": {
            "post": {
                "tags": ["Courses"],
                "summary": "Get course details",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TermedCourseDetailsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/sections": {
            "post": {
                "tags": ["Courses"],
                "summary": "Get course sections",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseDetailsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Department": {
            "type": "object",
            "required": ["DepartmentName", "SchoolName"],
            "properties": {
                "DepartmentName": {"type": "string"},
                "SchoolName": {"type": "string"}
            }
        },
        "CourseSearchRequest": {
            "type": "object",
            "required": ["terms", "schools", "departments"],
            "properties": {
                "terms": {"type": "array", "items": {"type": "string"}},
                "schools": {"type": "array", "items": {"type": "string"}},
                "departments": {"type": "array", "items": {"$ref": "#/definitions/Department"}},
                "title": {"type": "string"}
            }
        },
        "CourseDetailsRequest": {
            "type": "object",
            "required": ["courseNumber", "sectionNumber"],
            "properties": {
                "courseNumber": {"type": "string"},
                "sectionNumber": {"type": "string"},
                "term": {"type": "string"}
            }
        },
        "TermedCourseDetailsRequest": {
            "type": "object",
            "required": ["courseNumber", "sectionNumber", "term"],
            "properties": {
                "courseNumber": {"type": "string"},
                "sectionNumber": {"type": "string"},
                "term": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
