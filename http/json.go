package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/recipeclip/recipeclip"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Error string `json:"error"`
}

// writeError maps an application error to a stable JSON body and status
// code. Raw internal errors are masked.
func writeError(w http.ResponseWriter, err error) {
	code := recipeclip.ErrorCode(err)
	if code == recipeclip.EINTERNAL {
		slog.Error("internal error", slog.String("error", err.Error()))
	}
	writeJSON(w, statusFromCode(code), errResponse{Error: recipeclip.ErrorMessage(err)})
}

// statusFromCode translates application error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case recipeclip.EINVALID:
		return http.StatusBadRequest
	case recipeclip.ENOTFOUND:
		return http.StatusNotFound
	case recipeclip.ECONFLICT:
		return http.StatusConflict
	case recipeclip.EINCOMPLETE:
		return http.StatusUnprocessableEntity
	case recipeclip.EUNAVAILABLE, recipeclip.EUPSTREAM, recipeclip.ETOOLARGE, recipeclip.EMALFORMED:
		return http.StatusBadGateway
	case recipeclip.EMODEL:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
