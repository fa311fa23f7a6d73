package banking

import "fmt"

// Operations is the account capability a SecuredAccount delegates to.
// *Account satisfies it, and so does any further decorator exposing
// the same surface.
type Operations interface {
	Deposit(amount Money) error
	Withdraw(amount Money) error
	Balance() Money
	Close()
}

// withdrawalLimit is the per-call ceiling, in major units of the
// withdrawal's currency, enforced by SecuredAccount. It is a fixed
// policy, not a configuration knob.
const withdrawalLimit = 500

// SecuredAccount is a policy decorator around an account: every
// operation is gated by a PIN check, and withdrawals are additionally
// capped per call. It keeps no balance of its own; balance queries are
// live delegations to the wrapped account.
type SecuredAccount struct {
	account Operations
	pin     string
}

// NewSecuredAccount wraps 'account' with PIN authorization. The PIN is
// fixed for the lifetime of the wrapper. The wrapped account must
// outlive the wrapper.
func NewSecuredAccount(account Operations, pin string) *SecuredAccount {
	return &SecuredAccount{account: account, pin: pin}
}

func (s *SecuredAccount) authorize(inputPIN string) error {
	if inputPIN != s.pin {
		return ErrInvalidPIN
	}
	return nil
}

// Deposit delegates to the wrapped account's Deposit after checking
// the PIN. On a PIN mismatch it returns ErrInvalidPIN and the
// underlying deposit is never attempted; otherwise any failure of the
// wrapped account is propagated unchanged.
func (s *SecuredAccount) Deposit(amount Money, inputPIN string) error {
	if err := s.authorize(inputPIN); err != nil {
		return err
	}
	return s.account.Deposit(amount)
}

// Withdraw delegates to the wrapped account's Withdraw after checking
// the PIN and the per-call ceiling. A PIN mismatch returns
// ErrInvalidPIN and an amount over the ceiling returns
// ErrWithdrawalLimit; in both cases the underlying withdrawal is never
// attempted. Otherwise any failure of the wrapped account is
// propagated unchanged.
func (s *SecuredAccount) Withdraw(amount Money, inputPIN string) error {
	if err := s.authorize(inputPIN); err != nil {
		return err
	}
	if amount.GreaterThan(M(withdrawalLimit, amount.Currency())) {
		return fmt.Errorf("cannot withdraw %s, max is %s: %w",
			amount, M(withdrawalLimit, amount.Currency()), ErrWithdrawalLimit)
	}
	return s.account.Withdraw(amount)
}

// Balance returns the wrapped account's current balance. This is a
// live delegation, not a snapshot taken at wrap time.
func (s *SecuredAccount) Balance() Money {
	return s.account.Balance()
}
