// Package renderer turns the activity observed during one driver
// session into a markdown document suitable for terminal rendering.
// It is a point-in-time view built from the notifications captured
// while the session ran; nothing is persisted.
package renderer

import (
	"fmt"
	"strings"

	"github.com/finbook/banking"
)

// Line is one row of session activity: either a notification emitted
// by the account, or an attempt the security layer rejected.
type Line struct {
	Message string
	Denied  bool
}

// Session holds everything needed to render a statement for a single
// driver session.
type Session struct {
	AccountID string
	Opening   banking.Money
	Closing   banking.Money
	Activity  []Line
}

// Statement renders the session to a markdown string.
func Statement(s *Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Statement for account %s\n\n", s.AccountID)
	fmt.Fprintf(&b, "Opening balance: **%s**\n\n", s.Opening)

	if len(s.Activity) == 0 {
		b.WriteString("_No activity._\n\n")
	} else {
		b.WriteString("| # | Activity | Outcome |\n")
		b.WriteString("|---|----------|---------|\n")
		for i, line := range s.Activity {
			outcome := "ok"
			if line.Denied {
				outcome = "denied"
			}
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, line.Message, outcome)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Closing balance: **%s**\n", s.Closing)
	return b.String()
}
