// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Store health",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/instructor/add": {
            "post": {
                "tags": ["instructors"],
                "summary": "Add an instructor",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.InstructorRequest"}}
                ],
                "responses": {
                    "200": {"description": "Instructor added successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/instructor/addAndAssignToCourse/{numCourse}": {
            "put": {
                "tags": ["instructors"],
                "summary": "Add an instructor and assign a course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "numCourse", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.InstructorRequest"}}
                ],
                "responses": {
                    "200": {"description": "Instructor assigned successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course or instructor not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/instructor/all": {
            "get": {
                "tags": ["instructors"],
                "summary": "Get all instructors",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Instructors retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/instructor/sortedBySeniority": {
            "get": {
                "tags": ["instructors"],
                "summary": "Get instructors sorted by seniority",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Instructors retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/instructor/update": {
            "put": {
                "tags": ["instructors"],
                "summary": "Update an instructor",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateInstructorRequest"}}
                ],
                "responses": {
                    "200": {"description": "Instructor updated successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Instructor not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/instructor/yearsOfService/{id}": {
            "get": {
                "tags": ["instructors"],
                "summary": "Get years of service",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true}
                ],
                "responses": {
                    "200": {"description": "Years of service", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/instructor/remove/{id}": {
            "delete": {
                "tags": ["instructors"],
                "summary": "Remove an instructor",
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true}
                ],
                "responses": {
                    "204": {"description": "Instructor removed"},
                    "404": {"description": "Instructor not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/instructor/{id}": {
            "get": {
                "tags": ["instructors"],
                "summary": "Get instructor details",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true}
                ],
                "responses": {
                    "200": {"description": "Instructor retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Instructor not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/instructor/{instructorId}/assign/{courseId}": {
            "post": {
                "tags": ["instructors"],
                "summary": "Assign an instructor to a course",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "instructorId", "required": true},
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "courseId", "required": true}
                ],
                "responses": {
                    "200": {"description": "Instructor assigned successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Instructor or course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "message": {"type": "string", "example": "instructor not found"},
                "field": {"type": "string", "example": "firstName"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.InstructorRequest": {
            "type": "object",
            "required": ["firstName", "lastName"],
            "properties": {
                "numInstructor": {"type": "integer", "example": 1},
                "firstName": {"type": "string", "maxLength": 100, "example": "John"},
                "lastName": {"type": "string", "maxLength": 100, "example": "Doe"},
                "dateOfHire": {"type": "string", "example": "2019-12-01"}
            }
        },
        "dto.UpdateInstructorRequest": {
            "type": "object",
            "required": ["numInstructor", "firstName", "lastName"],
            "properties": {
                "numInstructor": {"type": "integer", "example": 1},
                "firstName": {"type": "string", "maxLength": 100, "example": "John"},
                "lastName": {"type": "string", "maxLength": 100, "example": "Doe"},
                "dateOfHire": {"type": "string", "example": "2019-12-01"}
            }
        },
        "dto.CourseResponse": {
            "type": "object",
            "properties": {
                "numCourse": {"type": "integer", "example": 1},
                "level": {"type": "integer", "example": 2},
                "typeCourse": {"type": "string", "example": "COLLECTIVE_ADULT"},
                "support": {"type": "string", "example": "SKI"},
                "price": {"type": "number", "example": 120.5},
                "timeSlot": {"type": "integer", "example": 3}
            }
        },
        "dto.InstructorResponse": {
            "type": "object",
            "properties": {
                "numInstructor": {"type": "integer", "example": 1},
                "firstName": {"type": "string", "example": "John"},
                "lastName": {"type": "string", "example": "Doe"},
                "dateOfHire": {"type": "string", "example": "2019-12-01"},
                "yearsOfService": {"type": "integer", "example": 5},
                "courses": {"type": "array", "items": {"$ref": "#/definitions/dto.CourseResponse"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ski Station Instructor API",
	Description:      "Instructor records, course assignment and seniority for a ski station",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
