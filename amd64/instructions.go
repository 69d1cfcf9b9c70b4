package amd64

// REX prefix bits.
const (
	REX  = 0x40
	REXW = 0x08 // 64-bit operand size
	REXR = 0x04 // extends ModRM.reg
	REXX = 0x02 // extends SIB.index
	REXB = 0x01 // extends ModRM.rm or the opcode register
)

// Opcodes for the supported instructions.
const (
	OPMOVrm   = 0x89 // MOV r/m64, r64
	OPMOVimm  = 0xC7 // MOV r/m64, imm32 (/0)
	OPRET     = 0xC3 // RET (near)
	OPRETimm  = 0xC2 // RET imm16
	OPNOP     = 0x90 // NOP
	OPPUSH    = 0x50 // PUSH r64 (+r)
	OPPOP     = 0x58 // POP r64 (+r)
	OPESCAPE  = 0x0F // two-byte opcode escape
	OPSYSCALL = 0x05 // SYSCALL, after OPESCAPE
)

// ModRM addressing modes.
const (
	ModIndirect = 0
	ModDisp8    = 1
	ModDisp32   = 2
	ModDirect   = 3
)

// ModRM packs the mod, reg and rm fields into one byte.
func ModRM(mod, reg, rm byte) byte {
	return (mod&3)<<6 | (reg&7)<<3 | rm&7
}

// SplitModRM is the inverse of ModRM.
func SplitModRM(b byte) (mod, reg, rm byte) {
	return b >> 6, (b >> 3) & 7, b & 7
}

// Rex builds a REX prefix. It returns 0 when no bit is needed, so callers can
// skip the prefix entirely.
func Rex(w, r, x, b bool) byte {
	var p byte
	if w {
		p |= REXW
	}
	if r {
		p |= REXR
	}
	if x {
		p |= REXX
	}
	if b {
		p |= REXB
	}
	if p == 0 {
		return 0
	}
	return REX | p
}

// IsRex reports whether b is a REX prefix byte.
func IsRex(b byte) bool {
	return b&0xF0 == REX
}
