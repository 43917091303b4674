package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount        = errors.New("amount must be a positive integer")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidGig           = errors.New("gig must have a title and a non-negative reward")
	ErrGigNotFound          = errors.New("gig not found")
	ErrGigNotOpen           = errors.New("gig is not open")
	ErrOwnGig               = errors.New("poster can't apply to own gig")
	ErrNotGigPoster         = errors.New("caller is not the gig poster")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrNotApplicant         = errors.New("caller is not the applicant")
	ErrSelfTransfer         = errors.New("can't transfer to the same account")
	ErrBalanceOverflow      = errors.New("credit would overflow the account balance")
	ErrLoginTaken           = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidLogin         = errors.New("login must be 3 to 50 characters")

	// ErrContention is transient; the request may be retried.
	ErrContention = errors.New("resource is busy, try again later")
)

// InsufficientFundsError carries the balance observed when a debit was rejected.
type InsufficientFundsError struct {
	AccountID int
	Balance   int64
	Amount    int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: account %d has %d, needs %d", e.AccountID, e.Balance, e.Amount)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
