package assembler

import (
	"github.com/ktact/ras/amd64"
)

func assembleNop([]Operand) ([]byte, error) { return []byte{amd64.OPNOP}, nil }

func assembleSyscall([]Operand) ([]byte, error) {
	return []byte{amd64.OPESCAPE, amd64.OPSYSCALL}, nil
}
