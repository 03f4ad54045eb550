// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
        "/v1/auth/register": {"post": {"tags": ["Auth"], "summary": "Register a guest account", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/v1/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/v1/auth/refresh-token": {"post": {"tags": ["Auth"], "summary": "Refresh a token pair", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/v1/auth/password": {"patch": {"tags": ["Auth"], "summary": "Change password", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/users": {
            "get": {"tags": ["User"], "summary": "List users", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["User"], "summary": "Create a user", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/v1/users/{id}": {"get": {"tags": ["User"], "summary": "Get a user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/users/{id}/active": {"patch": {"tags": ["User"], "summary": "Activate or deactivate a user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/guests": {"post": {"tags": ["Guest"], "summary": "Create a guest profile", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/v1/guests/me": {"get": {"tags": ["Guest"], "summary": "Profile of the caller", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/guests/user/{userId}": {"get": {"tags": ["Guest"], "summary": "Guest profile by user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/guests/{id}": {
            "get": {"tags": ["Guest"], "summary": "Guest profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Guest"], "summary": "Update guest profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Guest"], "summary": "Delete guest profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/rooms": {
            "get": {"tags": ["Room"], "summary": "List rooms, optionally by keyword", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Room"], "summary": "Create a room", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/v1/rooms/search": {"get": {"tags": ["Room"], "summary": "Search rooms available for a stay", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/v1/rooms/types": {
            "get": {"tags": ["Room"], "summary": "List room types", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Room"], "summary": "Create a room type", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/v1/rooms/types/{id}/image": {"post": {"tags": ["Room"], "summary": "Upload a room type image", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}}}},
        "/v1/rooms/{id}": {
            "get": {"tags": ["Room"], "summary": "Room detail", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Room"], "summary": "Delete a room", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/rooms/{id}/status": {"patch": {"tags": ["Room"], "summary": "Change room status", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/rooms/{id}/availability": {"get": {"tags": ["Room"], "summary": "Check room availability", "responses": {"200": {"description": "OK"}}}},
        "/v1/reservations": {"post": {"tags": ["Reservation"], "summary": "Create a reservation", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/v1/reservations/{id}": {"get": {"tags": ["Reservation"], "summary": "Reservation detail", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/reservations/guest/{guestId}": {"get": {"tags": ["Reservation"], "summary": "Reservations of a guest", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/reservations/{id}/cancel": {"put": {"tags": ["Reservation"], "summary": "Cancel a reservation", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/reservations/{id}/checkin": {"put": {"tags": ["Reservation"], "summary": "Check in", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/reservations/{id}/checkout": {"put": {"tags": ["Reservation"], "summary": "Check out", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hotel Reservation API",
	Description:      "Room inventory, guest accounts and the reservation booking engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
