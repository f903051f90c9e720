package handlers

import (
	"net/http"

	httperrors "github.com/Infinity-Development/sky-net-bot/internal/transport/http/errors"
)

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{
		Code:    code,
		Message: message,
	})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{
		Code:    code,
		Message: message,
	})
}
