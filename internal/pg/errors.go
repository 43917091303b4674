package pg

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

const (
	codeNumericOutOfRange    = "22003"
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Classify turns lock timeouts, serialization failures and deadlocks into domain.ErrContention,
// and a bigint overflow into domain.ErrBalanceOverflow. Already classified errors pass through.
func Classify(err error) error {
	if err == nil || errors.Is(err, domain.ErrContention) || errors.Is(err, domain.ErrBalanceOverflow) {
		return err
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeLockNotAvailable, codeSerializationFailure, codeDeadlockDetected:
		return fmt.Errorf("%w: %w", domain.ErrContention, err)
	case codeNumericOutOfRange:
		return fmt.Errorf("%w: %w", domain.ErrBalanceOverflow, err)
	}
	return err
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
