// Package docs registers the OpenAPI document served at /swagger/.
// Regenerate with `swag init -g cmd/translationd/main.go` after changing handler annotations.
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
        "/auth/token": {
            "post": {
                "description": "Exchange email and password for a bearer token. device_name labels the stored token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue an API token",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.IssueTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TokenResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "error.code: validation_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Revoke the current token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/translations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns translations ordered by id, 50 per page, with locale and tags.",
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "List translations",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.PageResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "The locale must exist. Tags are created on first use.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Create a translation",
                "parameters": [
                    {"description": "Translation", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateTranslationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Translation"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "error.code: validation_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/translations/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Filters are combined with AND. key and content match substrings, locale and tag match exactly.",
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Search translations",
                "parameters": [
                    {"type": "string", "description": "Key substring", "name": "key", "in": "query"},
                    {"type": "string", "description": "Content substring", "name": "content", "in": "query"},
                    {"type": "string", "description": "Locale code", "name": "locale", "in": "query"},
                    {"type": "string", "description": "Tag name", "name": "tag", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.PageResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/translations/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Get a translation",
                "parameters": [
                    {"type": "integer", "description": "Translation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Translation"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces content and/or the full tag set. Key and locale are immutable.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Update a translation",
                "parameters": [
                    {"type": "integer", "description": "Translation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateTranslationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Translation"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "error.code: validation_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Delete a translation",
                "parameters": [
                    {"type": "integer", "description": "Translation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/export/{locale}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns a JSON object mapping each translation key to {id, content}. An unknown locale yields {}.",
                "produces": ["application/json"],
                "tags": ["export"],
                "summary": "Export a locale",
                "parameters": [
                    {"type": "string", "description": "Locale code", "name": "locale", "in": "path", "required": true},
                    {"type": "string", "description": "Only translations carrying this tag", "name": "tag", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/domain.ExportEntry"}}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/locales": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["locales"],
                "summary": "List locales",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Locale"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.IssueTokenRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "device_name": {"type": "string"}
            }
        },
        "controllers.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "controllers.CreateTranslationRequest": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "content": {"type": "string"},
                "locale": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "controllers.UpdateTranslationRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "controllers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"}
            }
        },
        "domain.Locale": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.Tag": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "domain.Translation": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "key": {"type": "string"},
                "content": {"type": "string"},
                "locale_id": {"type": "integer"},
                "locale": {"$ref": "#/definitions/domain.Locale"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.ExportEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "content": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "helpers.PageResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Translation"}},
                "current_page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "last_page": {"type": "integer"},
                "total": {"type": "integer"},
                "from": {"type": "integer"},
                "to": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Translation Hub API",
	Description:      "Stores localized strings, tags them, and exports per-locale JSON bundles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
