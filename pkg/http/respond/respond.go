package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform failure envelope: success flag plus an error
// code/message pair. Raw store errors never appear in Message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON writes a success payload. Payload types carry their own
// `"success": true` field so the envelope contract survives any transport
// reshuffling.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the failure envelope with the given status and code.
func Error(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusBadRequest, code, message)
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// Unprocessable writes a 422 failure envelope.
func Unprocessable(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnprocessableEntity, ErrCodeUnprocessable, message)
}

// StoreFailure writes a 500 failure envelope.
func StoreFailure(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, ErrCodeStoreFailure, message)
}
