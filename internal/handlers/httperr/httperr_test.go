package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/dto"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "invalid amount", err: domain.ErrInvalidAmount, expectedCode: http.StatusBadRequest},
		{name: "invalid gig", err: domain.ErrInvalidGig, expectedCode: http.StatusBadRequest},
		{name: "own gig", err: domain.ErrOwnGig, expectedCode: http.StatusBadRequest},
		{name: "self transfer", err: domain.ErrSelfTransfer, expectedCode: http.StatusBadRequest},
		{name: "balance overflow", err: fmt.Errorf("credit: %w", domain.ErrBalanceOverflow), expectedCode: http.StatusBadRequest},
		{name: "duplicate application", err: domain.ErrDuplicateApplication, expectedCode: http.StatusConflict},
		{name: "gig not open", err: domain.ErrGigNotOpen, expectedCode: http.StatusConflict},
		{name: "gig not found", err: domain.ErrGigNotFound, expectedCode: http.StatusNotFound},
		{name: "application not found", err: domain.ErrApplicationNotFound, expectedCode: http.StatusNotFound},
		{name: "not poster", err: domain.ErrNotGigPoster, expectedCode: http.StatusForbidden},
		{name: "not applicant", err: domain.ErrNotApplicant, expectedCode: http.StatusForbidden},
		{name: "wrapped contention", err: fmt.Errorf("commit: %w", domain.ErrContention), expectedCode: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("disk on fire"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Write(w, tt.err)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestWrite_ContentionAdvertisesRetry(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, domain.ErrContention)
	assert.Equal(t, RetryAfterSeconds, w.Header().Get("Retry-After"))
}

func TestWrite_InsufficientFundsBody(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, fmt.Errorf("accept: %w", &domain.InsufficientFundsError{AccountID: 1, Balance: 20, Amount: 30}))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var body dto.InsufficientFundsResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, dto.InsufficientFundsResponseDTO{Error: "insufficient funds", Balance: 20, Amount: 30}, body)
}

func TestWrite_OverflowHidesBalance(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, fmt.Errorf("%w: account 7 holds 9223372036854775800", domain.ErrBalanceOverflow))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "9223372036854775800")
	assert.Contains(t, w.Body.String(), domain.ErrBalanceOverflow.Error())
}

func TestWrite_InternalHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, errors.New("pq: password authentication failed"))
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), InternalMessage)
}
