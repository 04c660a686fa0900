package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the flat error payload of the API: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the flat confirmation payload: {"mensaje": "..."}.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONMessage writes {"mensaje": message} with the given status code.
func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Mensaje: message})
}

// JSONError writes {"error": message} with the given status code. Messages
// are for the caller; internal detail belongs in the server log.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}
