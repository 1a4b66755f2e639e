// Package http provides the chi-facing HTTP plumbing: error-returning
// handlers, access logging and the serve/shutdown loop.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/ZenRepublic/Clubhouse/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError adapts an error-returning handler to http.HandlerFunc.
//
//	r.Post("/houses", apphttp.HandleError(h.createHouse))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// DefaultErrorHandler writes err as a JSON body. ServiceErrors expose their
// message and category status; anything else is a bare 500.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	resp := errorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		resp.ErrMsg = svcErr.Message
		resp.ErrMsgCode = svcErr.StatusCode()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.ErrMsgCode)
	_ = json.NewEncoder(w).Encode(&resp)
}
