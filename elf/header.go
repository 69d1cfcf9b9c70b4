package elf

import (
	"encoding/binary"
)

// Record sizes of the ELF64 structures this package writes.
const (
	HeaderSize        = 64
	SectionHeaderSize = 64
	SymbolSize        = 24
)

// Identification and header field values.
const (
	ClassELF64     = 2
	DataLSB        = 1
	VersionCurrent = 1
	OSABISysV      = 0
	TypeRel        = 1
	MachineX86_64  = 0x3e
)

// Header is the ELF64 file header. Only Shoff and Shnum change after
// construction; they are set once the section sizes are known.
type Header struct {
	Ident     [16]byte
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// NewHeader returns a relocatable x86-64 header with no sections yet.
func NewHeader(shstrndx uint16) *Header {
	h := &Header{
		Type:      TypeRel,
		Machine:   MachineX86_64,
		Version:   VersionCurrent,
		Ehsize:    HeaderSize,
		Shentsize: SectionHeaderSize,
		Shstrndx:  shstrndx,
	}
	copy(h.Ident[:], []byte{0x7f, 'E', 'L', 'F', ClassELF64, DataLSB, VersionCurrent, OSABISysV})
	return h
}

// SetSectionTable records where the section header table starts and how many
// entries it has.
func (h *Header) SetSectionTable(offset uint64, count uint16) {
	h.Shoff = offset
	h.Shnum = count
}

// AppendBinary appends the 64-byte little-endian encoding of h to b.
func (h *Header) AppendBinary(b []byte) []byte {
	le := binary.LittleEndian
	b = append(b, h.Ident[:]...)
	b = le.AppendUint16(b, h.Type)
	b = le.AppendUint16(b, h.Machine)
	b = le.AppendUint32(b, h.Version)
	b = le.AppendUint64(b, h.Entry)
	b = le.AppendUint64(b, h.Phoff)
	b = le.AppendUint64(b, h.Shoff)
	b = le.AppendUint32(b, h.Flags)
	b = le.AppendUint16(b, h.Ehsize)
	b = le.AppendUint16(b, h.Phentsize)
	b = le.AppendUint16(b, h.Phnum)
	b = le.AppendUint16(b, h.Shentsize)
	b = le.AppendUint16(b, h.Shnum)
	b = le.AppendUint16(b, h.Shstrndx)
	return b
}
