package handler

import (
	"net/http"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/service"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	switch err {
	case service.ErrPermissionDenied:
		status = http.StatusForbidden
		code = "permission_denied"
		msg = "Permission denied"
	case service.ErrNotFound:
		status = http.StatusNotFound
		code = "not_found"
		msg = "Resource or principal not found"
	case service.ErrInvalidArgument:
		status = http.StatusBadRequest
		code = "invalid_argument"
		msg = "Invalid input"
	case service.ErrInvalidState:
		status = http.StatusConflict
		code = "invalid_state"
		msg = "Operation would violate an invariant"
	case service.ErrUnauthorized:
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

func badRequest(msg string) (int, interface{}) {
	return http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: msg},
	}
}
