package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Error codes returned in the "code" field of error responses.
const (
	CodeInvalidData        = "INVALID_DATA_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeAuth               = "AUTH_ERROR"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeInsufficientPoint  = "INSUFFICIENT_POINT"
	CodeRequestTimeout     = "REQUEST_TIMEOUT"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:            CodeInvalidData,
	http.StatusUnauthorized:          CodeAuth,
	http.StatusForbidden:             CodeForbidden,
	http.StatusNotFound:              CodeNotFound,
	http.StatusRequestTimeout:        CodeRequestTimeout,
	http.StatusConflict:              CodeConflict,
	http.StatusUnprocessableEntity:   CodeInsufficientPoint,
	http.StatusTooManyRequests:       CodeTooManyRequests,
	http.StatusRequestEntityTooLarge: CodePayloadTooLarge,
	http.StatusServiceUnavailable:    CodeServiceUnavailable,
}

type Response struct {
	Message string `json:"message" example:"Not found"`
	Code    string `json:"code,omitempty" example:"NOT_FOUND"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	code, ok := statusCodes[status]
	if !ok {
		code = CodeInternal
	}
	RespondWithJSON(w, status, Response{Message: message, Code: code})
}

// RespondEmpty writes a status line with no body.
func RespondEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}
