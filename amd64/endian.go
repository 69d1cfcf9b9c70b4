package amd64

import (
	"encoding/binary"
)

// AppendImm16 appends a 16-bit immediate in instruction (little-endian) order.
func AppendImm16(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}

// AppendImm32 appends a 32-bit immediate in instruction (little-endian) order.
func AppendImm32(b []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}

// Imm16 reads a 16-bit immediate. The slice must hold at least two bytes.
func Imm16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// Imm32 reads a sign-carrying 32-bit immediate. The slice must hold at least four bytes.
func Imm32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}
