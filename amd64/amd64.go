package amd64

import "strings"

// Register is a 64-bit general purpose register, numbered the way the
// ModRM and REX fields number it.
type Register uint8

const (
	RAX Register = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

var registerNames = [...]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

var registers = func() map[string]Register {
	m := make(map[string]Register, len(registerNames))
	for i, name := range registerNames {
		m[name] = Register(i)
	}
	return m
}()

// ParseRegister looks up a 64-bit register by name, case-insensitively.
func ParseRegister(name string) (Register, bool) {
	r, ok := registers[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// String returns the Intel syntax name of the register.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "r?"
}

// Low returns the three bits that go into ModRM or the opcode byte.
func (r Register) Low() byte {
	return byte(r) & 7
}

// Extended reports whether the register needs a REX extension bit (r8-r15).
func (r Register) Extended() bool {
	return r >= R8 && r <= R15
}
