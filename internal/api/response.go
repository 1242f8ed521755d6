package api

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Warning accompanies a successful reply whose side effect was partial.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: status, Error: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
