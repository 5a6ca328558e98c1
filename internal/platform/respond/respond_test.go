// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/platform/apperr"
	"github.com/kalamanch/directory/internal/platform/respond"
)

/*
TestError maps errors onto the error envelope.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{"not_found", apperr.NotFound("Artist"), http.StatusNotFound, "NOT_FOUND", "Artist not found"},
		{"snapshot_loading", apperr.ServiceUnavailable("Directory snapshot is not loaded"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Directory snapshot is not loaded"},
		{"wrapped_app_error", errors.Join(errors.New("ctx"), apperr.Forbidden("Insufficient permissions")), http.StatusForbidden, "FORBIDDEN", "Insufficient permissions"},
		{"plain_error_hidden", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/artists/d1", nil), tt.err)

			require.Equal(t, tt.wantStatus, recorder.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantError, body.Error)
			assert.NotContains(t, recorder.Body.String(), "relation")
		})
	}
}

/*
TestError_ValidationDetails keeps per-field details.
*/
func TestError_ValidationDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	err := apperr.ValidationError("Validation failed", apperr.FieldError{Field: "rating", Message: "Must be between 0 and 5"})

	respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"rating"`)
}

/*
TestOK wraps data in the success envelope.
*/
func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, []string{"Rajasthan"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":["Rajasthan"]}`, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
}
