package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Assist API",
        "description": "Role-scoped student record chat assistant",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login and identity"},
        {"name": "Chat", "description": "Question pipeline and transcript"},
        {"name": "Dashboard", "description": "Role landing views"}
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in with username and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "security": [{"BearerAuth": []}],
                "summary": "Current principal and landing path",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/chat": {
            "post": {
                "tags": ["Chat"],
                "security": [{"BearerAuth": []}],
                "summary": "Ask a question against the visible roster",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatResponse"}},
                    "400": {"description": "No message provided"}
                }
            }
        },
        "/chat/memory": {
            "get": {
                "tags": ["Chat"],
                "security": [{"BearerAuth": []}],
                "summary": "Full transcript as [role, content] pairs",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/chat/clear": {
            "post": {
                "tags": ["Chat"],
                "security": [{"BearerAuth": []}],
                "summary": "Wipe the transcript",
                "responses": {
                    "200": {"description": "Memory cleared"}
                }
            }
        },
        "/chat/export": {
            "get": {
                "tags": ["Chat"],
                "security": [{"BearerAuth": []}],
                "summary": "Download the transcript as PDF or CSV",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["pdf", "csv"]}
                ],
                "responses": {
                    "200": {"description": "Attachment"}
                }
            }
        },
        "/dashboard/hod": {
            "get": {
                "tags": ["Dashboard"],
                "security": [{"BearerAuth": []}],
                "summary": "HOD landing view (all students)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/dashboard/mentor/{id}": {
            "get": {
                "tags": ["Dashboard"],
                "security": [{"BearerAuth": []}],
                "summary": "Mentor landing view",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Scope mismatch", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/dashboard/class/{label}": {
            "get": {
                "tags": ["Dashboard"],
                "security": [{"BearerAuth": []}],
                "summary": "Class teacher landing view",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Scope mismatch", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/dashboard/student": {
            "get": {
                "tags": ["Dashboard"],
                "security": [{"BearerAuth": []}],
                "summary": "Student landing view (own record)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "landing": {"type": "string"},
                "user": {"type": "object"},
                "issued_at": {"type": "string"}
            }
        },
        "ChatRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "ChatResponse": {
            "type": "object",
            "properties": {
                "response": {"type": "string"}
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
                "error": {"$ref": "#/definitions/APIError"}
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
