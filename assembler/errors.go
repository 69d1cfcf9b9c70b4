package assembler

import (
	"errors"
	"fmt"
)

// Error kinds. Every one of them is fatal: assembly stops at the first error
// and no object is produced.
var (
	ErrSyntax                 = errors.New("syntax error")
	ErrOperand                = errors.New("invalid operand")
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	ErrUnsupportedDirective   = errors.New("unsupported directive")
	ErrDuplicateLabel         = errors.New("symbol already defined")
)

// LineError ties an error to the source line it came from.
type LineError struct {
	Line   int
	Source string
	Err    error
}

func (e *LineError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v (%s)", e.Line, e.Err, e.Source)
}

func (e *LineError) Unwrap() error { return e.Err }

func lineError(n *Node, err error) error {
	return &LineError{Line: n.Line, Source: n.Source, Err: err}
}
