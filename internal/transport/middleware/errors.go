package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the JSON error envelope used by the REST API. The
// middleware runs outside the handlers, so it carries its own copy.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
