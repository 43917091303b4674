package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/dto"
	"github.com/GlebRadaev/gigmart/pkg/utils"
)

const InternalMessage = "Internal server error, try again"

// RetryAfterSeconds is advertised on 503 responses caused by lock contention.
const RetryAfterSeconds = "1"

// Write maps a service error to its HTTP status and body.
func Write(w http.ResponseWriter, err error) {
	var insufficient *domain.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.InsufficientFundsResponseDTO{
			Error:   domain.ErrInsufficientFunds.Error(),
			Balance: insufficient.Balance,
			Amount:  insufficient.Amount,
		})
	case errors.Is(err, domain.ErrContention):
		w.Header().Set("Retry-After", RetryAfterSeconds)
		utils.RespondWithError(w, http.StatusServiceUnavailable, domain.ErrContention.Error())
	case errors.Is(err, domain.ErrBalanceOverflow):
		// The credited account may belong to someone else; keep its balance out of the body.
		utils.RespondWithError(w, http.StatusBadRequest, domain.ErrBalanceOverflow.Error())
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidGig),
		errors.Is(err, domain.ErrOwnGig),
		errors.Is(err, domain.ErrSelfTransfer):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateApplication),
		errors.Is(err, domain.ErrGigNotOpen):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrGigNotFound),
		errors.Is(err, domain.ErrApplicationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotGigPoster),
		errors.Is(err, domain.ErrNotApplicant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		zap.L().Error("unhandled error", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, InternalMessage)
	}
}
