package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code           string
		expectedStatus int
	}{
		{code: ErrInvalidToken, expectedStatus: http.StatusUnauthorized},
		{code: ErrInsufficientPrivilege, expectedStatus: http.StatusForbidden},
		{code: ErrPilotInvalidCheckin, expectedStatus: http.StatusUnprocessableEntity},
		{code: ErrPilotInvalidDate, expectedStatus: http.StatusBadRequest},
		{code: ErrPilotFutureDate, expectedStatus: http.StatusBadRequest},
		{code: ErrNotFound, expectedStatus: http.StatusNotFound},
		{code: ErrMethodNotAllowed, expectedStatus: http.StatusMethodNotAllowed},
		{code: ErrDatabaseOperation, expectedStatus: http.StatusInternalServerError},
		{code: "DESCONHECIDO", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
