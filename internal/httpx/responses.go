package httpx

import (
	"bytes"
	"net/http"
)

// TextError writes a short plain-text failure message.
func TextError(w http.ResponseWriter, statusCode int, message string) {
	http.Error(w, message, statusCode)
}

// HTML writes an already rendered page.
func HTML(w http.ResponseWriter, statusCode int, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = body.WriteTo(w)
}
