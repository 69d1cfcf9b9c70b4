package assembler

import (
	"fmt"
	"math"

	"github.com/ktact/ras/amd64"
)

// MOV r64, imm32: REX.W C7 /0 id. The immediate is sign-extended to 64 bits
// by the CPU, so it must fit in a signed 32-bit field.
func assembleMovImm(operands []Operand) ([]byte, error) {
	dst, src := operands[0], operands[1]
	if src.Value < math.MinInt32 || src.Value > math.MaxInt32 {
		return nil, fmt.Errorf("%w: immediate %s does not fit in 32 bits", ErrOperand, src.Raw)
	}

	code := []byte{
		amd64.Rex(true, false, false, dst.Register.Extended()),
		amd64.OPMOVimm,
		amd64.ModRM(amd64.ModDirect, 0, dst.Register.Low()),
	}
	return amd64.AppendImm32(code, int32(src.Value)), nil
}

// MOV r64, r64: REX.W 89 /r, with the source in ModRM.reg.
func assembleMovReg(operands []Operand) ([]byte, error) {
	dst, src := operands[0], operands[1]
	return []byte{
		amd64.Rex(true, src.Register.Extended(), false, dst.Register.Extended()),
		amd64.OPMOVrm,
		amd64.ModRM(amd64.ModDirect, src.Register.Low(), dst.Register.Low()),
	}, nil
}
