package middleware

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// writeJSONError writes the standard error envelope with the correct Content-Type.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: true, Message: msg})
}
