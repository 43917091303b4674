package ledger

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/dto"
	"github.com/GlebRadaev/gigmart/internal/handlers/httperr"
	"github.com/GlebRadaev/gigmart/pkg/auth"
	"github.com/GlebRadaev/gigmart/pkg/utils"
)

type Service interface {
	Credit(ctx context.Context, accountID int, amount int64) (int64, error)
	Debit(ctx context.Context, accountID int, amount int64) (int64, error)
	BalanceOf(ctx context.Context, accountID int) (int64, error)
	Transfer(ctx context.Context, from, to int, amount int64) (uuid.UUID, error)
	History(ctx context.Context, accountID int) ([]domain.LedgerEntry, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Balance of the caller's ledger account. Unknown accounts read as zero.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.BalanceOf(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		AccountID: userID,
		Balance:   balance,
	})
}

// GetHistory godoc
//
//	@Summary		Get ledger history
//	@Description	Ledger entries of the caller's account, newest first
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO
//	@Success		204	{object}	utils.Response	"No entries"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/ledger [get]
func (h *LedgerHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.ledgerService.History(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i := range entries {
		response[i] = dto.FromLedgerEntry(&entries[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Transfer godoc
//
//	@Summary		Transfer points
//	@Description	Move points from the caller's account to another account atomically
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{object}	dto.TransferResponseDTO
//	@Failure		400		{object}	utils.Response						"Invalid amount, recipient or balance overflow"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		402		{object}	dto.InsufficientFundsResponseDTO	"Insufficient funds"
//	@Failure		503		{object}	utils.Response						"Account busy, retry"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/user/balance/transfer [post]
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transferID, err := h.ledgerService.Transfer(r.Context(), userID, req.To, req.Amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{TransferID: transferID.String()})
}

// AdminCredit godoc
//
//	@Summary		Credit an account
//	@Description	Add points to any account. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LedgerAdjustRequestDTO	true	"Credit request payload"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or balance overflow"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ledger/credit [post]
func (h *LedgerHandler) AdminCredit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledgerService.Credit)
}

// AdminDebit godoc
//
//	@Summary		Debit an account
//	@Description	Remove points from any account. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LedgerAdjustRequestDTO	true	"Debit request payload"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response						"Invalid amount"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		402		{object}	dto.InsufficientFundsResponseDTO	"Insufficient funds"
//	@Failure		403		{object}	utils.Response						"Admin role required"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/admin/ledger/debit [post]
func (h *LedgerHandler) AdminDebit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledgerService.Debit)
}

func (h *LedgerHandler) adjust(w http.ResponseWriter, r *http.Request, op func(context.Context, int, int64) (int64, error)) {
	var req dto.LedgerAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	balance, err := op(r.Context(), req.AccountID, req.Amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		AccountID: req.AccountID,
		Balance:   balance,
	})
}
