package banking

import (
	"fmt"
	"io"
)

// NotificationSink receives a human-readable description of an account
// event, such as "Deposited $50.00". Sinks are invoked synchronously,
// in attachment order, after the mutation they describe; they are
// assumed to be non-failing side-effect consumers.
type NotificationSink interface {
	Notify(message string)
}

// SinkFunc adapts an ordinary function to a NotificationSink.
type SinkFunc func(message string)

func (f SinkFunc) Notify(message string) { f(message) }

// TransactionLogger is a NotificationSink that writes each event as a
// prefixed line to an injected writer.
type TransactionLogger struct {
	w      io.Writer
	prefix string
}

// DefaultLogPrefix is the line prefix used when none is configured.
const DefaultLogPrefix = "[Log]: "

// NewTransactionLogger creates a logger sink writing to 'w'. An empty
// prefix selects DefaultLogPrefix.
func NewTransactionLogger(w io.Writer, prefix string) *TransactionLogger {
	if prefix == "" {
		prefix = DefaultLogPrefix
	}
	return &TransactionLogger{w: w, prefix: prefix}
}

func (l *TransactionLogger) Notify(message string) {
	fmt.Fprintf(l.w, "%s%s\n", l.prefix, message)
}
