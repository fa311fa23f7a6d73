package cmd

import (
	"strings"
	"testing"

	"github.com/finbook/banking"
)

func TestRunDemo(t *testing.T) {
	session := runDemo(DefaultConfig(), "4321")

	if !session.Opening.Equal(banking.M(100, "USD")) {
		t.Errorf("Opening = %s, want $100.00", session.Opening)
	}
	if !session.Closing.IsZero() {
		t.Errorf("Closing = %s, want $0.00", session.Closing)
	}

	// deposit, denied over-limit withdrawal, withdrawal.
	if len(session.Activity) != 3 {
		t.Fatalf("Activity has %d lines, want 3: %+v", len(session.Activity), session.Activity)
	}
	if session.Activity[0].Denied || session.Activity[0].Message != "Deposited $50.00" {
		t.Errorf("Activity[0] = %+v, want the deposit notification", session.Activity[0])
	}
	if !session.Activity[1].Denied || !strings.Contains(session.Activity[1].Message, "withdrawal limit exceeded") {
		t.Errorf("Activity[1] = %+v, want the over-limit denial", session.Activity[1])
	}
	if session.Activity[2].Denied || session.Activity[2].Message != "Withdrew $150.00" {
		t.Errorf("Activity[2] = %+v, want the withdrawal notification", session.Activity[2])
	}
}
