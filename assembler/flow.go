package assembler

import (
	"fmt"
	"math"

	"github.com/ktact/ras/amd64"
)

// Returns

func assembleRet([]Operand) ([]byte, error) { return []byte{amd64.OPRET}, nil }

// RET imm16 pops imm16 extra bytes after the return address.
func assembleRetImm(operands []Operand) ([]byte, error) {
	n := operands[0]
	if n.Value < 0 || n.Value > math.MaxUint16 {
		return nil, fmt.Errorf("%w: ret operand %s out of range (0-65535)", ErrOperand, n.Raw)
	}
	return amd64.AppendImm16([]byte{amd64.OPRETimm}, uint16(n.Value)), nil
}
