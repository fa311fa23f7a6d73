// Package banking models a single bank account as a small state
// machine, with an optional PIN-secured decorator on top of it.
//
// The core pieces are:
//   - Account: holds the balance and the active flag, enforces the
//     deposit and withdrawal invariants, and fans out a human-readable
//     notification to every attached NotificationSink after each
//     successful mutation.
//   - SecuredAccount: a policy decorator that checks a PIN and a
//     per-call withdrawal ceiling before delegating to the wrapped
//     account. Policy denials are reported as errors distinct from the
//     account's own failures, so callers can tell "wrong PIN" apart
//     from "insufficient funds" apart from "account closed".
//   - NotificationSink: the capability invoked with a descriptive
//     event message; output concerns (console, log files) stay outside
//     this package and are injected by the caller.
//
// Amounts are exact decimal Money values tied to a currency. The
// package assumes single-caller, single-goroutine use; callers sharing
// an Account across goroutines must serialize access themselves.
//
// This package is the foundational logic for the `bnk` command-line
// tool.
package banking
