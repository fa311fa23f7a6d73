package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/finbook/banking"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run one interactive banking session" }
func (*sessionCmd) Usage() string {
	return `bnk session

  Opens an account with a balance you provide, secures it with a PIN,
  then performs one deposit and one withdrawal, each gated by the PIN.
  Every successful operation is logged to the terminal, and the final
  balance is printed at the end.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := runSession(os.Stdin, os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Transaction Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// prompt writes 'label' and reads one input line.
func prompt(in *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return in.Text(), nil
}

// runSession drives one interactive session over 'in' and 'out': open
// an account, attach the transaction logger, secure the account with a
// PIN, then attempt one deposit and one withdrawal. Parse failures
// abort the session; a rejected deposit or withdrawal does not, it is
// reported and the session moves on, so that the final balance is
// always shown.
func runSession(in io.Reader, out io.Writer, cfg Config) error {
	scanner := bufio.NewScanner(in)

	line, err := prompt(scanner, out, "Enter initial balance: ")
	if err != nil {
		return err
	}
	initial, err := banking.ParseMoney(line, cfg.Currency)
	if err != nil {
		return err
	}

	account := banking.NewAccount(uuid.NewString(), initial)
	fmt.Fprintf(out, "Bank Account Created: #%s\n", account.ID())
	account.AddObserver(banking.NewTransactionLogger(out, cfg.LogPrefix))

	pin, err := prompt(scanner, out, "Set your account PIN: ")
	if err != nil {
		return err
	}
	secured := banking.NewSecuredAccount(account, pin)

	line, err = prompt(scanner, out, "Enter deposit amount: ")
	if err != nil {
		return err
	}
	amount, err := banking.ParseMoney(line, cfg.Currency)
	if err != nil {
		return err
	}
	inputPIN, err := prompt(scanner, out, "Enter PIN: ")
	if err != nil {
		return err
	}
	if err := secured.Deposit(amount, inputPIN); err != nil {
		fmt.Fprintf(out, "Transaction Error: %v\n", err)
	}

	line, err = prompt(scanner, out, "Enter withdrawal amount: ")
	if err != nil {
		return err
	}
	amount, err = banking.ParseMoney(line, cfg.Currency)
	if err != nil {
		return err
	}
	inputPIN, err = prompt(scanner, out, "Enter PIN: ")
	if err != nil {
		return err
	}
	if err := secured.Withdraw(amount, inputPIN); err != nil {
		fmt.Fprintf(out, "Transaction Error: %v\n", err)
	}

	fmt.Fprintf(out, "Final Balance: %s\n", secured.Balance())
	return nil
}
