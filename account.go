package banking

import "fmt"

// Account is a single bank account: an opaque identifier, an exact
// decimal balance, an active flag, and an ordered list of notification
// sinks. After any successful operation the balance is never negative,
// and once closed an account accepts no further mutation.
//
// Account is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Account struct {
	id      string
	balance Money
	active  bool
	sinks   []NotificationSink
}

// NewAccount creates an active account with the given identifier and
// initial balance. The initial balance is taken as provided, without
// validation.
func NewAccount(id string, initial Money) *Account {
	return &Account{id: id, balance: initial, active: true}
}

// ID returns the account's immutable identifier.
func (a *Account) ID() string { return a.id }

// Balance returns the current balance.
func (a *Account) Balance() Money { return a.balance }

// AddObserver appends a sink to the fan-out list. Sinks are notified
// in attachment order; duplicates are kept.
func (a *Account) AddObserver(sink NotificationSink) {
	a.sinks = append(a.sinks, sink)
}

func (a *Account) notify(message string) {
	for _, sink := range a.sinks {
		sink.Notify(message)
	}
}

// Deposit increases the balance by 'amount' and notifies every sink.
// It fails with ErrAccountClosed on a closed account and with
// ErrNegativeAmount when 'amount' is negative; on failure the balance
// is unchanged and no sink is notified.
func (a *Account) Deposit(amount Money) error {
	if !a.active {
		return fmt.Errorf("cannot deposit to account %s: %w", a.id, ErrAccountClosed)
	}
	if amount.IsNegative() {
		return fmt.Errorf("cannot deposit %s: %w", amount, ErrNegativeAmount)
	}
	a.balance = a.balance.Add(amount)
	a.notify(fmt.Sprintf("Deposited %s", amount))
	return nil
}

// Withdraw decreases the balance by 'amount' and notifies every sink.
// It fails with ErrAccountClosed on a closed account and with
// ErrInsufficientFunds when 'amount' exceeds the balance; on failure
// the balance is unchanged and no sink is notified.
//
// Negative amounts are not rejected here; the deposit path is the only
// one that checks the sign of its amount.
func (a *Account) Withdraw(amount Money) error {
	if !a.active {
		return fmt.Errorf("cannot withdraw from account %s: %w", a.id, ErrAccountClosed)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("cannot withdraw %s from a balance of %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	a.notify(fmt.Sprintf("Withdrew %s", amount))
	return nil
}

// Close deactivates the account and notifies every sink. The
// transition is terminal: there is no way back to the active state,
// and any later Deposit or Withdraw fails with ErrAccountClosed.
// Closing an already closed account leaves the state untouched but
// still emits the closure notification.
func (a *Account) Close() {
	a.active = false
	a.notify("Account closed.")
}
