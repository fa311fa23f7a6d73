package banking

import "errors"

// Account-level failures. These signal a violation of the account's
// own invariants and are returned by Account (and propagated unchanged
// by SecuredAccount).
var (
	// ErrNegativeAmount is returned when a deposit amount is negative.
	ErrNegativeAmount = errors.New("deposit amount cannot be negative")

	// ErrInsufficientFunds is returned when a withdrawal amount
	// exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountClosed is returned when a mutation is attempted on a
	// closed account.
	ErrAccountClosed = errors.New("account is closed")
)

// Policy denials. These are produced only by SecuredAccount and are
// distinct from the account-level failures above: they mean the
// operation was never attempted against the wrapped account.
var (
	// ErrInvalidPIN is returned when the supplied PIN does not match.
	ErrInvalidPIN = errors.New("invalid PIN: transaction denied")

	// ErrWithdrawalLimit is returned when a secured withdrawal exceeds
	// the per-call ceiling.
	ErrWithdrawalLimit = errors.New("withdrawal limit exceeded")
)
