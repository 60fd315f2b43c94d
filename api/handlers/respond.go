// ABOUTME: Shared JSON response helpers for API handlers
// ABOUTME: Writes success and error payloads with consistent headers

package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error payload with the given status code.
func writeError(w http.ResponseWriter, status int, v interface{}) {
	writeJSON(w, status, v)
}
