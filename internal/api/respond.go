package api

import (
	"encoding/json"
	"net/http"
)

// Every response is a flat JSON envelope carrying a success flag and a
// human-readable message, matching what the frontend already consumes.

func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

func WriteJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteSuccess merges extra fields into a success envelope.
func WriteSuccess(w http.ResponseWriter, message string, extra map[string]any) {
	payload := map[string]any{"success": true}
	if message != "" {
		payload["message"] = message
	}
	for k, v := range extra {
		payload[k] = v
	}
	WriteJSON(w, http.StatusOK, payload)
}
