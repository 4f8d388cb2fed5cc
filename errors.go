package jsxlate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/printer"
)

// InputError is any inconsistency attributable to the source document or to
// a supplied translation: a missing designation, a duplicate name, a
// non-named expression inside markup, a missing translation entry, and so
// on. It is never recovered internally; it surfaces to the caller with the
// offending message attached for presentation via [ErrorMessageForError].
//
// Invariant violations that should be unreachable are not InputErrors; they
// panic with a diagnostic instead.
type InputError struct {
	// Description is the human-readable account of what went wrong.
	Description string

	// Line is the 1-based source line of the offending construct, when
	// known.
	Line int

	// message is the offending message subtree, attached exactly once at
	// the point the error first crosses back into a per-message handler.
	message *ast.Node

	// translation is the raw translator text being processed, if any.
	translation string
}

func (e *InputError) Error() string {
	return e.Description
}

// inputErrorf builds an InputError positioned at n.
func inputErrorf(n *ast.Node, format string, args ...any) *InputError {
	e := &InputError{Description: fmt.Sprintf(format, args...)}
	if n != nil {
		e.Line = n.Line
	}
	return e
}

// annotate attaches the offending message subtree and raw translator text to
// an input error, once. Later annotation attempts and non-input errors pass
// through untouched.
func annotate(err error, msg *ast.Node, translation string) error {
	var ie *InputError
	if !errors.As(err, &ie) || ie.message != nil {
		return err
	}
	ie.message = msg
	ie.translation = translation
	if ie.Line == 0 && msg != nil {
		ie.Line = msg.Line
	}
	return err
}

// ErrorMessageForError renders an error for human consumption. Input errors
// are shown with the offending message and, when available, the raw
// translator text; any other error renders as its raw diagnostic.
func ErrorMessageForError(err error) string {
	var ie *InputError
	if !errors.As(err, &ie) {
		return err.Error()
	}
	if ie.message == nil {
		return ie.Description
	}
	var b strings.Builder
	fmt.Fprintf(&b, "On line %d, when processing the message...\n\n%s\n\n",
		ie.Line, printer.Print(ie.message))
	if ie.translation != "" {
		fmt.Fprintf(&b, "...and its associated translation...\n\n%s\n\n", ie.translation)
	}
	fmt.Fprintf(&b, "...the following error occurred:\n%s", ie.Description)
	return b.String()
}
