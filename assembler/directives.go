package assembler

import (
	"fmt"
	"strings"
)

// directiveFunc applies one directive node to the assembler state.
type directiveFunc func(asm *Assembler, n *Node) error

// directiveTable lists the accepted pseudo-ops. Anything else is rejected,
// since silently dropping a directive could change the object's contents.
var directiveTable = map[string]directiveFunc{
	".global":       directiveGlobal,
	".globl":        directiveGlobal,
	".text":         directiveText,
	".intel_syntax": directiveIntelSyntax,
}

func (asm *Assembler) applyDirective(n *Node) error {
	fn, ok := directiveTable[n.Directive]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedDirective, n.Directive)
	}
	return fn(asm, n)
}

// .global name[, name...]
func directiveGlobal(asm *Assembler, n *Node) error {
	names := splitOperands(n.Argument)
	if len(names) == 0 {
		return fmt.Errorf("%w: %s requires a symbol name", ErrSyntax, n.Directive)
	}
	for _, name := range names {
		if !reSymbol.MatchString(name) {
			return fmt.Errorf("%w: invalid symbol name %q", ErrSyntax, name)
		}
		asm.declareGlobal(name)
	}
	return nil
}

// .text switches to the text section, which is the only section there is.
func directiveText(_ *Assembler, n *Node) error {
	if n.Argument != "" {
		return fmt.Errorf("%w: .text takes no subsection argument", ErrSyntax)
	}
	return nil
}

// .intel_syntax noprefix. The default prefix form needs %-registers, which
// the operand parser does not accept.
func directiveIntelSyntax(_ *Assembler, n *Node) error {
	if strings.EqualFold(n.Argument, "noprefix") {
		return nil
	}
	return fmt.Errorf("%w: .intel_syntax %s", ErrUnsupportedDirective, n.Argument)
}
