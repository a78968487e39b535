package router

import (
	"encoding/json"
	"net/http"

	"github.com/timecraft-lab/backend/pkg/errorx"
)

type response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Messager lets a response type carry its own success message in the
// envelope. Responses without it fall back to a generic one.
type Messager interface {
	Message() string
}

// StatusCoder lets a response type override the 200 success status, e.g. 201
// for creations.
type StatusCoder interface {
	StatusCode() int
}

func newResponse(data any) response {
	message := "Success"
	if m, ok := data.(Messager); ok {
		message = m.Message()
	}

	return response{Message: message, Data: data}
}

func newErrorResponse(errx errorx.Error) response {
	return response{Message: errx.Message}
}

func statusOf(resp any) int {
	if s, ok := resp.(StatusCoder); ok {
		return s.StatusCode()
	}

	return http.StatusOK
}

func WriteJson(w http.ResponseWriter, status int, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
