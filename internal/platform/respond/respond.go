// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes the directory API's JSON responses.
//
// Reference and admin endpoints wrap their payload in {"data": ...}. The
// artist search endpoint writes its four-key result object unwrapped via
// [JSON]. Errors always use [ErrorEnvelope], so a client can tell a failed
// lookup from an empty one by the "code" field.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kalamanch/directory/internal/platform/apperr"
	"github.com/kalamanch/directory/internal/platform/ctxkey"
)

// SuccessEnvelope wraps reference data, suggestions, places and admin reports.
type SuccessEnvelope struct {
	Data interface{} `json:"data"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes payload as-is with the given status.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes 200 with data inside a [SuccessEnvelope].
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Error writes err as an [ErrorEnvelope]. Errors that are not an
// [apperr.AppError] become INTERNAL_ERROR and their text stays in the log.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	logFailure(request, appError)

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// logFailure records 5xx responses. A 503 is expected while the first
// snapshot loads or a backing store is down, so it is a warning.
func logFailure(request *http.Request, appError *apperr.AppError) {
	if appError.HTTPStatus < http.StatusInternalServerError {
		return
	}

	ctx := request.Context()
	attrs := []any{
		slog.String("code", appError.Code),
		slog.String("path", request.URL.Path),
		slog.String("request_id", requestID(request)),
		slog.Any("cause", appError.Cause),
	}

	if appError.HTTPStatus == http.StatusServiceUnavailable {
		requestLogger(request).WarnContext(ctx, "request_unavailable", attrs...)
		return
	}
	requestLogger(request).ErrorContext(ctx, "request_failed", attrs...)
}

func requestLogger(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

func requestID(request *http.Request) string {
	id, _ := request.Context().Value(ctxkey.KeyRequestID).(string)
	return id
}
