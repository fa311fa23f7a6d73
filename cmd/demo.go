package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/banking"
	"github.com/finbook/banking/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type demoCmd struct {
	pin string
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a scripted session and render its statement" }
func (*demoCmd) Usage() string {
	return `bnk demo [-pin <pin>]

  Runs a fixed session against a fresh account: open with 100, deposit
  50, attempt to withdraw 700 (denied, over the limit), withdraw 150.
  The session is then rendered as a markdown statement.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pin, "pin", "4321", "PIN used for the scripted session")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	session := runDemo(cfg, c.pin)
	printMarkdown(renderer.Statement(session), cfg.Style)
	return subcommands.ExitSuccess
}

// runDemo plays the documented scenario and captures the account's
// notifications, plus the one denial, as statement lines.
func runDemo(cfg Config, pin string) *renderer.Session {
	opening := banking.M(100, cfg.Currency)
	account := banking.NewAccount(uuid.NewString(), opening)

	session := &renderer.Session{AccountID: account.ID(), Opening: opening}
	account.AddObserver(banking.SinkFunc(func(m string) {
		session.Activity = append(session.Activity, renderer.Line{Message: m})
	}))

	secured := banking.NewSecuredAccount(account, pin)

	// Happy path: deposit within the rules.
	if err := secured.Deposit(banking.M(50, cfg.Currency), pin); err != nil {
		session.Activity = append(session.Activity, renderer.Line{Message: err.Error(), Denied: true})
	}
	// Over the ceiling: denied, no notification, balance untouched.
	if err := secured.Withdraw(banking.M(700, cfg.Currency), pin); err != nil {
		session.Activity = append(session.Activity, renderer.Line{Message: err.Error(), Denied: true})
	}
	// Withdraw the rest.
	if err := secured.Withdraw(banking.M(150, cfg.Currency), pin); err != nil {
		session.Activity = append(session.Activity, renderer.Line{Message: err.Error(), Denied: true})
	}

	session.Closing = secured.Balance()
	return session
}
