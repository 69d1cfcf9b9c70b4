package assembler

import (
	"fmt"
)

// Symbol is a label or global declaration collected while assembling.
type Symbol struct {
	Name string
	// Global is set by .global/.globl.
	Global bool
	// Defined is set when a label of this name exists in the source.
	Defined bool
	// Value is the label's offset in the machine code.
	Value uint64
}

// Program is the result of assembling one source file.
type Program struct {
	Code []byte
	// Symbols holds local labels in definition order, then globals in
	// declaration order.
	Symbols []Symbol
}

// Assembler holds the state for the assembly process.
type Assembler struct {
	code    []byte
	labels  map[string]uint64
	globals map[string]bool
	// order holds every symbol name once, in order of first mention by a
	// label or a .global directive.
	order []string
	seen  map[string]bool
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		labels:  make(map[string]uint64),
		globals: make(map[string]bool),
		seen:    make(map[string]bool),
	}
}

// Assemble takes x86-64 assembly source and returns the machine code and
// symbols. It stops at the first error.
func (asm *Assembler) Assemble(src string) (*Program, error) {
	asm.reset()

	tokens, err := Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}
	nodes := Parse(tokens)

	for _, n := range nodes {
		var err error
		switch n.Type {
		case NodeLabel:
			err = asm.defineLabel(n.Label)
		case NodeDirective:
			err = asm.applyDirective(n)
		case NodeInstruction:
			err = asm.generateInstructionCode(n)
		}
		if err != nil {
			return nil, lineError(n, err)
		}
	}

	return &Program{Code: asm.code, Symbols: asm.symbols()}, nil
}

func (asm *Assembler) reset() {
	asm.code = nil
	asm.labels = make(map[string]uint64)
	asm.globals = make(map[string]bool)
	asm.order = nil
	asm.seen = make(map[string]bool)
}

// generateInstructionCode encodes one instruction and appends it to the code buffer.
func (asm *Assembler) generateInstructionCode(n *Node) error {
	code, err := Encode(n.Mnemonic, n.Operands)
	if err != nil {
		return err
	}
	asm.code = append(asm.code, code...)
	return nil
}

func (asm *Assembler) defineLabel(name string) error {
	if _, ok := asm.labels[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLabel, name)
	}
	asm.labels[name] = uint64(len(asm.code))
	asm.mention(name)
	return nil
}

func (asm *Assembler) declareGlobal(name string) {
	if asm.globals[name] {
		return
	}
	asm.globals[name] = true
	asm.mention(name)
}

func (asm *Assembler) mention(name string) {
	if !asm.seen[name] {
		asm.seen[name] = true
		asm.order = append(asm.order, name)
	}
}

// symbols orders locals before globals, the order the symbol table needs.
// Within each group symbols keep their first-mention order, as GNU as does.
func (asm *Assembler) symbols() []Symbol {
	syms := make([]Symbol, 0, len(asm.order))
	for _, name := range asm.order {
		if asm.globals[name] {
			continue
		}
		syms = append(syms, Symbol{Name: name, Defined: true, Value: asm.labels[name]})
	}
	for _, name := range asm.order {
		if !asm.globals[name] {
			continue
		}
		value, defined := asm.labels[name]
		syms = append(syms, Symbol{Name: name, Global: true, Defined: defined, Value: value})
	}
	return syms
}
