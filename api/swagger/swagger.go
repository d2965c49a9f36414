package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TutorLink Portal API",
        "description": "Makeup-session scheduling for guardian/tutor contracts",
        "version": "1.2.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Reschedule", "description": "Makeup-session slot calendar and selection"},
        {"name": "Availability", "description": "Tutor availability window management"}
    ],
    "paths": {
        "/contracts/{id}/reschedule/{bookingId}/calendar": {
            "get": {
                "tags": ["Reschedule"],
                "summary": "Weekly makeup slot calendar",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "bookingId", "in": "path", "required": true, "type": "string"},
                    {"name": "week", "in": "query", "type": "integer", "description": "Week offset from the current week"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Contract or booking not found"}
                }
            }
        },
        "/contracts/{id}/reschedule/{bookingId}/selection": {
            "post": {
                "tags": ["Reschedule"],
                "summary": "Validate a chosen makeup slot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "bookingId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectSlotRequest"}}
                ],
                "responses": {
                    "200": {"description": "Slot accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "SLOT_IN_PAST or SLOT_ALREADY_BOOKED"}
                }
            }
        },
        "/contracts/{id}/reschedule/{bookingId}/calendar/export": {
            "get": {
                "tags": ["Reschedule"],
                "summary": "Export a week's calendar as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "bookingId", "in": "path", "required": true, "type": "string"},
                    {"name": "week", "in": "query", "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered file"}
                }
            }
        },
        "/tutors/{id}/availability": {
            "get": {
                "tags": ["Availability"],
                "summary": "List a tutor's availability windows",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Availability"],
                "summary": "Add an availability window",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertAvailabilityRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tutors/{id}/availability/{windowId}": {
            "put": {
                "tags": ["Availability"],
                "summary": "Replace an availability window",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "windowId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertAvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Availability"],
                "summary": "Remove an availability window",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "windowId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/tutors/{id}/availability/import": {
            "post": {
                "tags": ["Availability"],
                "summary": "Bulk import availability records from an external tool",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}
                ],
                "responses": {
                    "200": {"description": "Import summary", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        }
    },
    "definitions": {
        "Slot": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "legal": {"type": "boolean"},
                "reason": {"type": "string", "enum": ["past", "booked", "tutor_unavailable", "too_close"]}
            }
        },
        "DaySlots": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "weekday": {"type": "string"},
                "slots": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Slot"}
                }
            }
        },
        "WeekCalendar": {
            "type": "object",
            "properties": {
                "week_offset": {"type": "integer"},
                "week_start": {"type": "string"},
                "days": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DaySlots"}
                }
            }
        },
        "SelectSlotRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024-01-16"},
                "start_time": {"type": "string", "example": "16:00"}
            },
            "required": ["date", "start_time"]
        },
        "AvailabilityWindow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "tutor_id": {"type": "string"},
                "days_of_week": {"type": "integer", "description": "Weekday bitmask, Sunday=1 through Saturday=64"},
                "available_from": {"type": "string"},
                "available_until": {"type": "string"},
                "effective_from": {"type": "string"},
                "effective_until": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "UpsertAvailabilityRequest": {
            "type": "object",
            "properties": {
                "days_of_week": {"type": "integer"},
                "available_from": {"type": "string"},
                "available_until": {"type": "string"},
                "effective_from": {"type": "string"},
                "effective_until": {"type": "string"}
            },
            "required": ["days_of_week", "available_from", "available_until", "effective_from"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
