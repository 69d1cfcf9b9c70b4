package elf

import (
	"encoding/binary"
	"fmt"
)

// SectionType is sh_type.
type SectionType uint32

const (
	SectionNull     SectionType = 0
	SectionProgBits SectionType = 1
	SectionSymTab   SectionType = 2
	SectionStrTab   SectionType = 3
	SectionRela     SectionType = 4
	SectionHash     SectionType = 5
	SectionDynamic  SectionType = 6
	SectionNote     SectionType = 7
	SectionNoBits   SectionType = 8
	SectionRel      SectionType = 9
	SectionShLib    SectionType = 10
	SectionDynSym   SectionType = 11
)

var sectionTypeNames = map[SectionType]string{
	SectionNull:     "NULL",
	SectionProgBits: "PROGBITS",
	SectionSymTab:   "SYMTAB",
	SectionStrTab:   "STRTAB",
	SectionRela:     "RELA",
	SectionHash:     "HASH",
	SectionDynamic:  "DYNAMIC",
	SectionNote:     "NOTE",
	SectionNoBits:   "NOBITS",
	SectionRel:      "REL",
	SectionShLib:    "SHLIB",
	SectionDynSym:   "DYNSYM",
}

func (t SectionType) String() string {
	if s, ok := sectionTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("SectionType(%d)", uint32(t))
}

// SectionFlag is a bit in sh_flags.
type SectionFlag uint64

const (
	FlagWrite           SectionFlag = 0x1
	FlagAlloc           SectionFlag = 0x2
	FlagExecInstr       SectionFlag = 0x4
	FlagMerge           SectionFlag = 0x10
	FlagStrings         SectionFlag = 0x20
	FlagInfoLink        SectionFlag = 0x40
	FlagLinkOrder       SectionFlag = 0x80
	FlagOSNonConforming SectionFlag = 0x100
	FlagGroup           SectionFlag = 0x200
	FlagTLS             SectionFlag = 0x400
)

// SectionHeader is one ELF64 section descriptor.
type SectionHeader struct {
	Name      uint32
	Type      SectionType
	Flags     SectionFlag
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	AddrAlign uint64
	EntSize   uint64
}

// NewSectionHeader fills in the type-dependent constants. Link and Info are
// left for the layout engine, which knows the section indices.
func NewSectionHeader(t SectionType, flags SectionFlag) SectionHeader {
	sh := SectionHeader{Type: t, Flags: flags}
	switch t {
	case SectionNull:
		sh.AddrAlign = 0
	case SectionSymTab:
		sh.AddrAlign = 8
		sh.EntSize = SymbolSize
	default:
		sh.AddrAlign = 1
	}
	return sh
}

// AppendBinary appends the 64-byte little-endian encoding of sh to b.
func (sh *SectionHeader) AppendBinary(b []byte) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, sh.Name)
	b = le.AppendUint32(b, uint32(sh.Type))
	b = le.AppendUint64(b, uint64(sh.Flags))
	b = le.AppendUint64(b, sh.Addr)
	b = le.AppendUint64(b, sh.Offset)
	b = le.AppendUint64(b, sh.Size)
	b = le.AppendUint32(b, sh.Link)
	b = le.AppendUint32(b, sh.Info)
	b = le.AppendUint64(b, sh.AddrAlign)
	b = le.AppendUint64(b, sh.EntSize)
	return b
}
