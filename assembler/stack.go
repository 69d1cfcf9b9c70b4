package assembler

import (
	"github.com/ktact/ras/amd64"
)

// PUSH/POP r64 encode the register in the opcode byte. PUSH and POP default
// to 64-bit operands, so REX is only needed for r8-r15.
func assemblePush(operands []Operand) ([]byte, error) {
	return stackOp(amd64.OPPUSH, operands[0].Register), nil
}

func assemblePop(operands []Operand) ([]byte, error) {
	return stackOp(amd64.OPPOP, operands[0].Register), nil
}

func stackOp(opcode byte, reg amd64.Register) []byte {
	var code []byte
	if rex := amd64.Rex(false, false, false, reg.Extended()); rex != 0 {
		code = append(code, rex)
	}
	return append(code, opcode+reg.Low())
}
