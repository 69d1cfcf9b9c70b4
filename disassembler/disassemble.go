package disassembler

import (
	"fmt"
	"strings"
)

// Instruction represents a single decoded instruction at a specific offset.
type Instruction struct {
	Offset   int
	Bytes    []byte
	Mnemonic string
	Operands []string
	Size     int
}

// OperandText joins the operands the way they are written in Intel syntax.
func (i Instruction) OperandText() string {
	return strings.Join(i.Operands, ", ")
}

// String renders the instruction as source text.
func (i Instruction) String() string {
	if len(i.Operands) == 0 {
		return i.Mnemonic
	}
	return i.Mnemonic + " " + i.OperandText()
}

// Instructions decodes code with a linear sweep. Bytes that do not decode
// become one-byte ".byte" pseudo-instructions so the sweep can continue.
func Instructions(code []byte) []Instruction {
	var out []Instruction
	for pc := 0; pc < len(code); {
		inst, err := Decode(code[pc:])
		if err != nil {
			inst = Instruction{
				Bytes:    code[pc : pc+1],
				Mnemonic: ".byte",
				Operands: []string{fmt.Sprintf("0x%02x", code[pc])},
				Size:     1,
			}
		}
		inst.Offset = pc
		out = append(out, inst)
		pc += inst.Size
	}
	return out
}

// Disassemble takes x86-64 machine code and returns it as a listing, one
// instruction per line: offset, encoded bytes, then the instruction text.
func Disassemble(code []byte) (string, error) {
	var result strings.Builder
	for _, inst := range Instructions(code) {
		fmt.Fprintf(&result, "%6x:\t%-21s\t%s\n", inst.Offset, fmt.Sprintf("% x", inst.Bytes), inst)
	}
	return result.String(), nil
}
