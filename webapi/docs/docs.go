// Package docs registers the OpenAPI 2.0 document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/signup": {"post": {"tags": ["auth"], "summary": "Create an account",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SignupInput"}}],
            "responses": {"201": {"description": "Created"}, "400": {"$ref": "#/responses/Error"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in with username or email",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginInput"}}],
            "responses": {"200": {"description": "Token and profile"}, "401": {"$ref": "#/responses/Error"}}}},
        "/auth/profile": {
            "get": {"tags": ["auth"], "summary": "Current profile", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Profile"}, "401": {"$ref": "#/responses/Error"}}},
            "put": {"tags": ["auth"], "summary": "Update email, password, photo, language or theme", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Updated profile"}, "400": {"$ref": "#/responses/Error"}}}},
        "/finance/domains": {
            "get": {"tags": ["finance"], "summary": "List spending domains", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Domains"}}},
            "post": {"tags": ["finance"], "summary": "Create a spending domain", "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "400": {"$ref": "#/responses/Error"}}}},
        "/finance/transactions": {
            "get": {"tags": ["finance"], "summary": "List transactions, newest first", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "query", "name": "month", "type": "integer"}, {"in": "query", "name": "year", "type": "integer"}],
                "responses": {"200": {"description": "Transactions"}}},
            "post": {"tags": ["finance"], "summary": "Record income or an expense", "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}}},
        "/finance/transactions/sms": {"post": {"tags": ["finance"], "summary": "Record a transaction parsed from an SMS", "security": [{"BearerAuth": []}],
            "responses": {"201": {"description": "Created"}, "409": {"$ref": "#/responses/Error"}}}},
        "/finance/sms/parse": {"post": {"tags": ["finance"], "summary": "Parse a bank SMS without saving", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Parsed SMS"}, "422": {"$ref": "#/responses/Error"}}}},
        "/finance/summary": {"get": {"tags": ["insights"], "summary": "Income, expense and balance totals", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Summary"}}}},
        "/finance/daily-performance": {"get": {"tags": ["insights"], "summary": "Evaluate today against the savings goal", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Status"}}}},
        "/finance/daily-history": {"get": {"tags": ["insights"], "summary": "Daily statuses for a year", "security": [{"BearerAuth": []}],
            "parameters": [{"in": "query", "name": "year", "type": "integer"}],
            "responses": {"200": {"description": "History"}}}},
        "/finance/budget-plan": {"post": {"tags": ["plans"], "summary": "Generate and save a budget plan", "security": [{"BearerAuth": []}],
            "responses": {"201": {"description": "Plan"}, "400": {"$ref": "#/responses/Error"}}}},
        "/finance/budget-plan/preview": {"post": {"tags": ["plans"], "summary": "Generate a budget plan without saving", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Plan"}}}},
        "/finance/budget-plan/latest": {"get": {"tags": ["plans"], "summary": "Latest saved budget plan", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Plan"}, "404": {"$ref": "#/responses/Error"}}}},
        "/finance/voice-plan": {
            "get": {"tags": ["plans"], "summary": "Saved voice plans, newest first", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Plans"}}},
            "post": {"tags": ["plans"], "summary": "Save a voice plan", "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Plan"}, "422": {"$ref": "#/responses/Error"}}}},
        "/finance/voice-plan/parse": {"post": {"tags": ["plans"], "summary": "Parse amount and duration from text", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Parsed"}, "422": {"$ref": "#/responses/Error"}}}},
        "/finance/voice-plan/latest": {"get": {"tags": ["plans"], "summary": "Latest voice plan", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Plan"}, "404": {"$ref": "#/responses/Error"}}}},
        "/finance/voice/command": {"post": {"tags": ["voice"], "summary": "Advance the voice dialogue", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "Reply"}}}},
        "/finance/voice/session": {"delete": {"tags": ["voice"], "summary": "Reset the voice dialogue", "security": [{"BearerAuth": []}],
            "responses": {"204": {"description": "Reset"}}}},
        "/goals": {
            "get": {"tags": ["goals"], "summary": "List goals, newest first", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Goals"}}},
            "post": {"tags": ["goals"], "summary": "Create a savings goal", "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "400": {"$ref": "#/responses/Error"}}}}
    },
    "responses": {
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "details": {}}},
        "SignupInput": {"type": "object", "required": ["username", "email", "password"],
            "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}},
        "LoginInput": {"type": "object", "required": ["password"],
            "properties": {"identity": {"type": "string"}, "username": {"type": "string"}, "password": {"type": "string"}}}
    }
}`

// SwaggerInfo holds the values substituted into the document.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PocketPilot API",
	Description:      "Personal budgeting: domains, transactions, daily savings status, budget and voice plans.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
