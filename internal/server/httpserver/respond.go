package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/go-chi/chi/v5"
)

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps an error kind to its HTTP status. NotFound and Conflict are
// reported as 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError reports err to the client. Domain errors carry their own
// message; anything else is logged and answered with "Error in <action>".
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var domainErr *common.Error
	status := statusFor(err)
	if status != http.StatusInternalServerError && errors.As(err, &domainErr) {
		writeText(w, status, domainErr.Msg)
		return
	}
	s.logger.Error(r.Context(), "request failed", "action", action, "error", err)
	writeText(w, http.StatusInternalServerError, "Error in "+action)
}

// pathID parses a numeric path parameter. Anything else becomes 0, an id no
// record ever has, so lookups report "not found".
func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// decodeBody reads an optional JSON body into v. An empty body leaves v
// untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
