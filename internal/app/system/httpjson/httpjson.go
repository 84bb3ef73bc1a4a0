// internal/app/system/httpjson/httpjson.go

// Package httpjson writes the API's JSON envelopes.
//
// Success payloads embed success:true alongside handler-provided fields;
// failures are always {success:false, message} with the status decided by
// the apperrors taxonomy.
package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
	"go.uber.org/zap"
)

// OK writes a 200 response with the given payload.
func OK(w http.ResponseWriter, payload any) {
	Write(w, http.StatusOK, payload)
}

// Write encodes payload as JSON with the given status.
func Write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Fail writes the {success:false, message} envelope for err. Storage
// failures are logged with their underlying cause; client errors are not.
func Fail(w http.ResponseWriter, logger *zap.Logger, err *apperrors.Error) {
	if err.Kind == apperrors.KindStorage && logger != nil {
		logger.Error(err.Message, zap.Error(err.Err))
	}
	Write(w, err.Status(), map[string]any{
		"success": false,
		"message": err.Message,
	})
}

// NotFoundHandler serves the JSON 404 for unmatched API routes.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "API route not found",
		})
	}
}

// Decode reads the request body into dst, returning a validation error on
// malformed JSON.
func Decode(r *http.Request, dst any) *apperrors.Error {
	if r.Body == nil {
		return apperrors.Validation("Missing request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation("Invalid JSON body")
	}
	return nil
}
