package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		payload      any
		expectedBody string
	}{
		{
			name:         "simple map",
			status:       http.StatusOK,
			payload:      map[string]string{"status": "ok"},
			expectedBody: `{"status":"ok"}`,
		},
		{
			name:         "currencies",
			status:       http.StatusOK,
			payload:      CurrenciesResponse{Currencies: []string{"SAR"}},
			expectedBody: `{"currencies":["SAR"]}`,
		},
		{
			name:         "error response",
			status:       http.StatusBadRequest,
			payload:      ErrorResponse{Error: "bad request", Code: "invalid_input"},
			expectedBody: `{"error":"bad request","code":"invalid_input"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSON(w, tt.status, tt.payload)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWriteError_ValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, domainErrors.NewValidationError("currency", "len validation failed"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "validation_error", response.Code)
	assert.Contains(t, response.Error, "currency")
}

func TestWriteError_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"plugin not found", domainErrors.ErrPluginNotFound, http.StatusNotFound, "not_found"},
		{"wrapped plugin not found", fmt.Errorf("plugin %q: %w", "x", domainErrors.ErrPluginNotFound), http.StatusNotFound, "not_found"},
		{"unknown operation", domainErrors.ErrUnknownOperation, http.StatusNotFound, "unknown_operation"},
		{"plugin inactive", domainErrors.ErrPluginInactive, http.StatusConflict, "plugin_inactive"},
		{"currency mismatch", domainErrors.ErrCurrencyMismatch, http.StatusBadRequest, "currency_mismatch"},
		{"invalid amount", domainErrors.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
		{"unauthorized", domainErrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"invalid fee is internal", fmt.Errorf("%w %q", domainErrors.ErrInvalidFee, "abc"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedCode, response.Code)
		})
	}
}

func TestWriteError_GenericDomainError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, domainErrors.NewDomainError("custom_error", "custom error message", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "custom_error", response.Code)
	assert.Equal(t, "custom error message", response.Error)
}

func TestWriteError_UnknownError_FallbackToInternalServerError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, errors.New("unexpected error"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "internal_error", response.Code)
	assert.Equal(t, "internal server error", response.Error)
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{"valid", `{"amount":"105.00","currency":"SAR","token":""}`, "", ""},
		{"invalid JSON", `{invalid json}`, "body", "invalid JSON"},
		{"empty body", ``, "body", "invalid JSON"},
		{"missing amount", `{"currency":"SAR"}`, "PaymentRequest.Amount", "required validation failed"},
		{"non numeric amount", `{"amount":"ten","currency":"SAR"}`, "PaymentRequest.Amount", "numeric validation failed"},
		{"currency length", `{"amount":"1","currency":"SR"}`, "PaymentRequest.Currency", "len validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body))

			var result PaymentRequest
			err := decodeAndValidate(req, &result)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, "105.00", result.Amount)
				return
			}

			var validationErr *domainErrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Contains(t, validationErr.Message, tt.wantMsg)
		})
	}
}

func TestSetActiveRequest_RequiresField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`))

	var result SetActiveRequest
	err := decodeAndValidate(req, &result)

	var validationErr *domainErrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "SetActiveRequest.Active", validationErr.Field)
}

func TestTotalDTO_RoundTrip(t *testing.T) {
	dto := TotalDTO{Net: "100", Gross: "115.5", Currency: "SAR"}

	total, err := dto.TaxedMoney()
	require.NoError(t, err)
	assert.Equal(t, TotalDTO{Net: "100.00", Gross: "115.50", Currency: "SAR"}, FromTaxedMoney(total))

	_, err = TotalDTO{Net: "x", Gross: "1", Currency: "SAR"}.TaxedMoney()
	assert.ErrorIs(t, err, domainErrors.ErrInvalidAmount)
}
