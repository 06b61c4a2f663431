package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/typetalk-sentiment/api/internal/comprehend"
	"github.com/typetalk-sentiment/api/internal/logging"
	"github.com/typetalk-sentiment/api/internal/typetalk"
)

// Response titles
const (
	titleTypetalk   = "Typetalk API request failed."
	titleComprehend = "AWS Comprehend API error occurred."
	titleValidation = "Validation error occurred."
	titleHTTP       = "HTTP error occurred."
	titleSystem     = "A system error has occurred."
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Title  string       `json:"title"`
	Detail any          `json:"detail,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// writeError translates err into a status and body and logs it.
// Errors of unknown type never leak their message to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logging.FromContext(r.Context()).WithError(err)

	var (
		validationErr *ValidationError
		typetalkErr   *typetalk.APIError
		comprehendErr *comprehend.Error
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn(titleValidation)
		writeJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{
			Title:  titleValidation,
			Errors: validationErr.Fields,
		})

	case errors.As(err, &typetalkErr):
		log.Error(titleTypetalk)
		body := ErrorResponse{Title: titleTypetalk}
		if detail, ok := typetalkErr.Detail(); ok {
			body.Detail = detail
		}
		writeJSON(w, r, typetalkErr.StatusCode, body)

	case errors.As(err, &comprehendErr):
		log.Error(titleComprehend)
		writeJSON(w, r, comprehendErr.StatusCode(), ErrorResponse{
			Title:  titleComprehend,
			Detail: comprehendErr.Error(),
		})

	default:
		log.Error("Unexpected error occurred")
		writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Title: titleSystem})
	}
}

// httpErrorHandler answers unmatched routes and methods
func httpErrorHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Warnf("%s: %s", titleHTTP, http.StatusText(status))
		writeJSON(w, r, status, ErrorResponse{
			Title:  titleHTTP,
			Detail: http.StatusText(status),
		})
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Errorf("Failed to encode response: %v", err)
	}
}
