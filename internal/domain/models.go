package domain

import (
	"time"

	"github.com/google/uuid"
)

type GigState string

const (
	// GigOpen accepts applications.
	GigOpen GigState = "OPEN"
	// GigAssigned has exactly one assignee; no applications remain.
	GigAssigned GigState = "ASSIGNED"
	// GigClosed is terminal.
	GigClosed GigState = "CLOSED"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type EntryKind string

const (
	EntryCredit EntryKind = "CREDIT"
	EntryDebit  EntryKind = "DEBIT"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Gig struct {
	ID          int       `db:"id"`
	PosterID    int       `db:"poster_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Reward      int64     `db:"reward"`
	State       GigState  `db:"state"`
	AssigneeID  *int      `db:"assignee_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Application struct {
	ID          int       `db:"id"`
	GigID       int       `db:"gig_id"`
	ApplicantID int       `db:"applicant_id"`
	Message     string    `db:"message"`
	CreatedAt   time.Time `db:"created_at"`
}

type LedgerAccount struct {
	AccountID int   `db:"account_id"`
	Balance   int64 `db:"balance"`
}

type LedgerEntry struct {
	ID           int       `db:"id"`
	AccountID    int       `db:"account_id"`
	TransferID   uuid.UUID `db:"transfer_id"`
	Kind         EntryKind `db:"kind"`
	Amount       int64     `db:"amount"`
	BalanceAfter int64     `db:"balance_after"`
	CreatedAt    time.Time `db:"created_at"`
}
