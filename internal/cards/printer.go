// internal/cards/printer.go
package cards

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrPrintFailed reports a card that could not be printed. The orchestrator
// treats it as non-fatal.
var ErrPrintFailed = errors.New("print failed")

// Printer outputs a rendered card document.
type Printer interface {
	Print(card []byte) error
}

// ConsolePrinter writes card text to a writer, stdout by default.
type ConsolePrinter struct {
	out io.Writer
}

// NewConsolePrinter creates a printer writing to out, or stdout when nil.
func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsolePrinter{out: out}
}

// Print writes the decoded card text. Payloads that are not valid UTF-8 are
// reported by byte length only.
func (p *ConsolePrinter) Print(card []byte) error {
	if !utf8.Valid(card) {
		if _, err := fmt.Fprintf(p.out, "(binary card) %d bytes\n", len(card)); err != nil {
			return fmt.Errorf("%w: %v", ErrPrintFailed, err)
		}
		return nil
	}
	if _, err := p.out.Write(card); err != nil {
		return fmt.Errorf("%w: %v", ErrPrintFailed, err)
	}
	return nil
}
