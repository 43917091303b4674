package dto

import "time"

type BalanceResponseDTO struct {
	AccountID int   `json:"account_id" example:"7"`
	Balance   int64 `json:"balance" example:"120"`
}

type TransferRequestDTO struct {
	To     int   `json:"to" example:"12"`
	Amount int64 `json:"amount" example:"30"`
}

type TransferResponseDTO struct {
	TransferID string `json:"transfer_id" example:"0b7c6f1e-3f4a-4d6e-9a37-2b8f8f1d2c11"`
}

type LedgerAdjustRequestDTO struct {
	AccountID int   `json:"account_id" example:"7"`
	Amount    int64 `json:"amount" example:"100"`
}

type LedgerEntryResponseDTO struct {
	ID           int       `json:"id" example:"41"`
	TransferID   string    `json:"transfer_id" example:"0b7c6f1e-3f4a-4d6e-9a37-2b8f8f1d2c11"`
	Kind         string    `json:"kind" example:"DEBIT"`
	Amount       int64     `json:"amount" example:"30"`
	BalanceAfter int64     `json:"balance_after" example:"90"`
	CreatedAt    time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
}

type InsufficientFundsResponseDTO struct {
	Error   string `json:"error"`
	Balance int64  `json:"balance" example:"20"`
	Amount  int64  `json:"amount" example:"30"`
}
