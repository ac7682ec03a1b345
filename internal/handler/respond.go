package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"fsanano/shop-client/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUpstreamError reports a failed call to the shop backend.
func writeUpstreamError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadGateway, service.Message(err))
}
