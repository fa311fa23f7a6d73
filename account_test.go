package banking

import (
	"errors"
	"testing"
)

// recorder is a NotificationSink that keeps every message it receives.
type recorder struct {
	messages []string
}

func (r *recorder) Notify(message string) { r.messages = append(r.messages, message) }

func TestAccount_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		initial     Money
		amount      Money
		wantErr     error
		wantBalance Money
		wantNotify  []string
	}{
		{
			name:        "positive amount increases balance",
			initial:     M(100, "USD"),
			amount:      M(50, "USD"),
			wantBalance: M(150, "USD"),
			wantNotify:  []string{"Deposited $50.00"},
		},
		{
			name:        "zero amount is accepted",
			initial:     M(100, "USD"),
			amount:      M(0, "USD"),
			wantBalance: M(100, "USD"),
			wantNotify:  []string{"Deposited $0.00"},
		},
		{
			name:        "negative amount is rejected",
			initial:     M(100, "USD"),
			amount:      M(-10, "USD"),
			wantErr:     ErrNegativeAmount,
			wantBalance: M(100, "USD"),
		},
		{
			name:        "fractional amount is exact",
			initial:     M(0.10, "USD"),
			amount:      M(0.20, "USD"),
			wantBalance: M(0.30, "USD"),
			wantNotify:  []string{"Deposited $0.20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount("acc-1", tt.initial)
			rec := &recorder{}
			a.AddObserver(rec)

			err := a.Deposit(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Deposit(%s) error = %v, want %v", tt.amount, err, tt.wantErr)
			}
			if got := a.Balance(); !got.Equal(tt.wantBalance) {
				t.Errorf("Balance() = %s, want %s", got, tt.wantBalance)
			}
			if len(rec.messages) != len(tt.wantNotify) {
				t.Fatalf("notifications = %q, want %q", rec.messages, tt.wantNotify)
			}
			for i, want := range tt.wantNotify {
				if rec.messages[i] != want {
					t.Errorf("notification[%d] = %q, want %q", i, rec.messages[i], want)
				}
			}
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		initial     Money
		amount      Money
		wantErr     error
		wantBalance Money
		wantNotify  []string
	}{
		{
			name:        "amount within balance decreases balance",
			initial:     M(100, "USD"),
			amount:      M(30, "USD"),
			wantBalance: M(70, "USD"),
			wantNotify:  []string{"Withdrew $30.00"},
		},
		{
			name:        "full balance can be withdrawn",
			initial:     M(150, "USD"),
			amount:      M(150, "USD"),
			wantBalance: M(0, "USD"),
			wantNotify:  []string{"Withdrew $150.00"},
		},
		{
			name:        "amount over balance is rejected",
			initial:     M(100, "USD"),
			amount:      M(101, "USD"),
			wantErr:     ErrInsufficientFunds,
			wantBalance: M(100, "USD"),
		},
		{
			// The sign of a withdrawal is deliberately unchecked, so a
			// negative amount increases the balance.
			name:        "negative amount is not rejected",
			initial:     M(100, "USD"),
			amount:      M(-10, "USD"),
			wantBalance: M(110, "USD"),
			wantNotify:  []string{"Withdrew -$10.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount("acc-1", tt.initial)
			rec := &recorder{}
			a.AddObserver(rec)

			err := a.Withdraw(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Withdraw(%s) error = %v, want %v", tt.amount, err, tt.wantErr)
			}
			if got := a.Balance(); !got.Equal(tt.wantBalance) {
				t.Errorf("Balance() = %s, want %s", got, tt.wantBalance)
			}
			if len(rec.messages) != len(tt.wantNotify) {
				t.Fatalf("notifications = %q, want %q", rec.messages, tt.wantNotify)
			}
			for i, want := range tt.wantNotify {
				if rec.messages[i] != want {
					t.Errorf("notification[%d] = %q, want %q", i, rec.messages[i], want)
				}
			}
		})
	}
}

func TestAccount_Close(t *testing.T) {
	a := NewAccount("acc-1", M(100, "USD"))
	rec := &recorder{}
	a.AddObserver(rec)

	a.Close()
	if len(rec.messages) != 1 || rec.messages[0] != "Account closed." {
		t.Fatalf("notifications after Close() = %q, want [\"Account closed.\"]", rec.messages)
	}

	if err := a.Deposit(M(10, "USD")); !errors.Is(err, ErrAccountClosed) {
		t.Errorf("Deposit() after Close() error = %v, want %v", err, ErrAccountClosed)
	}
	if err := a.Withdraw(M(10, "USD")); !errors.Is(err, ErrAccountClosed) {
		t.Errorf("Withdraw() after Close() error = %v, want %v", err, ErrAccountClosed)
	}
	if got := a.Balance(); !got.Equal(M(100, "USD")) {
		t.Errorf("Balance() after failed mutations = %s, want $100.00", got)
	}
	// Failed mutations must not notify.
	if len(rec.messages) != 1 {
		t.Errorf("notifications after failed mutations = %q, want only the closure event", rec.messages)
	}

	// Closing twice keeps the same terminal state and repeats the
	// closure notification.
	a.Close()
	if got := a.Balance(); !got.Equal(M(100, "USD")) {
		t.Errorf("Balance() after second Close() = %s, want $100.00", got)
	}
	if len(rec.messages) != 2 || rec.messages[1] != "Account closed." {
		t.Errorf("notifications after second Close() = %q, want two closure events", rec.messages)
	}
}

func TestAccount_FanOutOrder(t *testing.T) {
	a := NewAccount("acc-1", M(0, "USD"))

	var order []string
	a.AddObserver(SinkFunc(func(m string) { order = append(order, "first: "+m) }))
	a.AddObserver(SinkFunc(func(m string) { order = append(order, "second: "+m) }))
	// Duplicates are kept, not deduplicated.
	dup := &recorder{}
	a.AddObserver(dup)
	a.AddObserver(dup)

	if err := a.Deposit(M(5, "USD")); err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}

	want := []string{"first: Deposited $5.00", "second: Deposited $5.00"}
	if len(order) != len(want) {
		t.Fatalf("fan-out order = %q, want %q", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("fan-out[%d] = %q, want %q", i, order[i], want[i])
		}
	}
	if len(dup.messages) != 2 {
		t.Errorf("duplicate sink received %d notifications, want 2", len(dup.messages))
	}
}

func TestAccount_NotificationSeesNewBalance(t *testing.T) {
	a := NewAccount("acc-1", M(100, "USD"))
	var observed Money
	a.AddObserver(SinkFunc(func(string) { observed = a.Balance() }))

	if err := a.Deposit(M(50, "USD")); err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	if !observed.Equal(M(150, "USD")) {
		t.Errorf("balance observed during notification = %s, want $150.00", observed)
	}
}

func TestAccount_NoValidationOnConstruction(t *testing.T) {
	// A negative initial balance is taken as provided.
	a := NewAccount("acc-1", M(-25, "USD"))
	if got := a.Balance(); !got.Equal(M(-25, "USD")) {
		t.Errorf("Balance() = %s, want -$25.00", got)
	}
	if a.ID() != "acc-1" {
		t.Errorf("ID() = %q, want %q", a.ID(), "acc-1")
	}
}
