package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	CodeMissingIdentifier = "MISSING_IDENTIFIER"
	CodeMissingPaymentID  = "MISSING_PAYMENT_ID"
	CodeInvalidBody       = "INVALID_BODY"
	CodeInvalidSignature  = "INVALID_SIGNATURE"
	CodeInvalidHours      = "INVALID_HOURS"
	CodePaymentNotFound   = "PAYMENT_NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SendJSONErr logs originErr and writes an error body. originErr never reaches the caller.
func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, errCode, msgToSend string) {
	if originErr != nil {
		if code >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "code", errCode)
		} else {
			slog.WarnContext(ctx, "api error", "error", originErr.Error(), "code", errCode)
		}
	}

	SendJSON(ctx, w, code, ErrorResponse{Success: false, Message: msgToSend, Error: errCode})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
