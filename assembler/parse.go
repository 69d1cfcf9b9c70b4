package assembler

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ktact/ras/amd64"
)

// OperandKind classifies a parsed operand.
type OperandKind int

const (
	// OperandRegister is a 64-bit general purpose register.
	OperandRegister OperandKind = iota + 1
	// OperandImmediate is a numeric constant.
	OperandImmediate
	// OperandSymbol is a bare identifier, such as a label reference.
	OperandSymbol
	// OperandMemory is a bracketed memory reference.
	OperandMemory
)

// Operand represents a parsed instruction operand.
type Operand struct {
	Kind     OperandKind
	Register amd64.Register
	Value    int64
	Raw      string
}

// Shape is the operand's contribution to the instruction table key.
func (o Operand) Shape() string {
	switch o.Kind {
	case OperandRegister:
		return "r64"
	case OperandImmediate:
		return "imm"
	case OperandSymbol:
		return "sym"
	case OperandMemory:
		return "mem"
	}
	return "?"
}

var (
	reSymbol = regexp.MustCompile(`^[A-Za-z_.$][A-Za-z0-9_.$@]*$`)
	reMemory = regexp.MustCompile(`^\[.*\]$`)
)

// parseOperand converts an operand string into a structured Operand.
func parseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	op := Operand{Raw: s}

	if reg, ok := amd64.ParseRegister(s); ok {
		op.Kind = OperandRegister
		op.Register = reg
		return op, nil
	}
	if reMemory.MatchString(s) {
		op.Kind = OperandMemory
		return op, nil
	}
	if looksNumeric(s) {
		val, err := parseConstant(s)
		if err != nil {
			return op, fmt.Errorf("%w: %v", ErrOperand, err)
		}
		op.Kind = OperandImmediate
		op.Value = val
		return op, nil
	}
	if reSymbol.MatchString(s) {
		op.Kind = OperandSymbol
		return op, nil
	}
	return op, fmt.Errorf("%w: unknown operand format: %s", ErrOperand, s)
}

// parseOperands parses every operand of an instruction.
func parseOperands(raw []string) ([]Operand, error) {
	ops := make([]Operand, 0, len(raw))
	for _, s := range raw {
		op, err := parseOperand(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func looksNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return true
	}
	return s[0] >= '0' && s[0] <= '9'
}

// parseConstant converts a GNU as style integer literal to int64: decimal,
// 0x hex, 0b binary, leading-zero octal, or a character literal.
func parseConstant(s string) (int64, error) {
	s = strings.TrimSpace(s)

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	// Character literal ('A')
	if len(s) == 3 && s[0] == '\'' && s[2] == '\'' {
		v := int64(s[1])
		if neg {
			v = -v
		}
		return v, nil
	}

	base := 10
	digits := s
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		digits = s[2:]
		base = 16
	case strings.HasPrefix(lower, "0b"):
		digits = s[2:]
		base = 2
	case len(s) > 1 && s[0] == '0':
		digits = s[1:]
		base = 8
	}

	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil || digits == "" {
		return 0, fmt.Errorf("invalid number format: %s", s)
	}
	if neg {
		if u > uint64(math.MaxInt64)+1 {
			return 0, fmt.Errorf("number out of range: -%s", s)
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("number out of range: %s", s)
	}
	return int64(u), nil
}
