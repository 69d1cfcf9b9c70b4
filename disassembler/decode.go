package disassembler

import (
	"errors"
	"fmt"

	"github.com/ktact/ras/amd64"
)

// ErrUnknownOpcode means the bytes are not one of the supported encodings.
var ErrUnknownOpcode = errors.New("unknown opcode")

// ErrTruncated means the instruction runs past the end of the code.
var ErrTruncated = errors.New("truncated instruction")

// Decode decodes the single instruction at the start of code.
func Decode(code []byte) (Instruction, error) {
	if len(code) == 0 {
		return Instruction{}, ErrTruncated
	}

	var rex byte
	pos := 0
	if amd64.IsRex(code[0]) {
		rex = code[0]
		pos++
		if pos >= len(code) {
			return Instruction{}, ErrTruncated
		}
	}
	w := rex&amd64.REXW != 0
	r := rex&amd64.REXR != 0
	b := rex&amd64.REXB != 0

	op := code[pos]
	pos++
	inst := Instruction{}

	switch {
	case op == amd64.OPMOVimm && w:
		if len(code) < pos+5 {
			return Instruction{}, ErrTruncated
		}
		mod, reg, rm := amd64.SplitModRM(code[pos])
		if mod != amd64.ModDirect || reg != 0 {
			return Instruction{}, fmt.Errorf("%w: mov with ModRM %#02x", ErrUnknownOpcode, code[pos])
		}
		imm := amd64.Imm32(code[pos+1:])
		pos += 5
		inst.Mnemonic = "mov"
		inst.Operands = []string{register(rm, b).String(), fmt.Sprint(imm)}

	case op == amd64.OPMOVrm && w:
		if len(code) < pos+1 {
			return Instruction{}, ErrTruncated
		}
		mod, reg, rm := amd64.SplitModRM(code[pos])
		if mod != amd64.ModDirect {
			return Instruction{}, fmt.Errorf("%w: mov with ModRM %#02x", ErrUnknownOpcode, code[pos])
		}
		pos++
		inst.Mnemonic = "mov"
		inst.Operands = []string{register(rm, b).String(), register(reg, r).String()}

	case op == amd64.OPRET && rex == 0:
		inst.Mnemonic = "ret"

	case op == amd64.OPRETimm && rex == 0:
		if len(code) < pos+2 {
			return Instruction{}, ErrTruncated
		}
		inst.Mnemonic = "ret"
		inst.Operands = []string{fmt.Sprint(amd64.Imm16(code[pos:]))}
		pos += 2

	case op >= amd64.OPPUSH && op < amd64.OPPUSH+8 && !w:
		inst.Mnemonic = "push"
		inst.Operands = []string{register(op-amd64.OPPUSH, b).String()}

	case op >= amd64.OPPOP && op < amd64.OPPOP+8 && !w:
		inst.Mnemonic = "pop"
		inst.Operands = []string{register(op-amd64.OPPOP, b).String()}

	case op == amd64.OPNOP && rex == 0:
		inst.Mnemonic = "nop"

	case op == amd64.OPESCAPE && rex == 0:
		if len(code) < pos+1 {
			return Instruction{}, ErrTruncated
		}
		if code[pos] != amd64.OPSYSCALL {
			return Instruction{}, fmt.Errorf("%w: 0f %02x", ErrUnknownOpcode, code[pos])
		}
		pos++
		inst.Mnemonic = "syscall"

	default:
		return Instruction{}, fmt.Errorf("%w: %02x", ErrUnknownOpcode, op)
	}

	inst.Bytes = code[:pos]
	inst.Size = pos
	return inst, nil
}

func register(low byte, extended bool) amd64.Register {
	if extended {
		low += 8
	}
	return amd64.Register(low)
}
