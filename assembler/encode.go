package assembler

import (
	"fmt"
	"sort"
	"strings"
)

// encodeFunc assembles one instruction whose operands already match the
// table key's shape.
type encodeFunc func(operands []Operand) ([]byte, error)

// instructionKey identifies a table entry: the lower-case mnemonic plus the
// comma-joined operand shapes, e.g. {"mov", "r64,imm"}.
type instructionKey struct {
	mnemonic string
	shape    string
}

func (k instructionKey) String() string {
	if k.shape == "" {
		return k.mnemonic
	}
	return k.mnemonic + " " + k.shape
}

// instructionTable maps (mnemonic, operand shape) to an encoder. Supporting a
// new form means adding an entry here.
var instructionTable = map[instructionKey]encodeFunc{
	{"mov", "r64,imm"}: assembleMovImm,
	{"mov", "r64,r64"}: assembleMovReg,
	{"ret", ""}:        assembleRet,
	{"ret", "imm"}:     assembleRetImm,
	{"push", "r64"}:    assemblePush,
	{"pop", "r64"}:     assemblePop,
	{"nop", ""}:        assembleNop,
	{"syscall", ""}:    assembleSyscall,
}

// operandShape joins the shapes of the operands into a table key fragment.
func operandShape(operands []Operand) string {
	shapes := make([]string, len(operands))
	for i, op := range operands {
		shapes[i] = op.Shape()
	}
	return strings.Join(shapes, ",")
}

// Encode assembles one instruction from its mnemonic and raw operand strings.
func Encode(mnemonic string, operands []string) ([]byte, error) {
	ops, err := parseOperands(operands)
	if err != nil {
		return nil, err
	}
	key := instructionKey{mnemonic: strings.ToLower(mnemonic), shape: operandShape(ops)}
	fn, ok := instructionTable[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInstruction, key)
	}
	return fn(ops)
}

// SupportedForms lists the table keys in a stable order, for help output.
func SupportedForms() []string {
	forms := make([]string, 0, len(instructionTable))
	for k := range instructionTable {
		forms = append(forms, k.String())
	}
	sort.Strings(forms)
	return forms
}
