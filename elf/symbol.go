package elf

import (
	"encoding/binary"
)

// SymbolType is the low nibble of st_info.
type SymbolType uint8

const (
	SymNoType  SymbolType = 0
	SymObject  SymbolType = 1
	SymFunc    SymbolType = 2
	SymSection SymbolType = 3
	SymFile    SymbolType = 4
)

// SymbolBind is the high nibble of st_info.
type SymbolBind uint8

const (
	BindLocal  SymbolBind = 0
	BindGlobal SymbolBind = 1
	BindWeak   SymbolBind = 2
)

// Visibility is st_other.
type Visibility uint8

const (
	VisDefault   Visibility = 0
	VisInternal  Visibility = 1
	VisHidden    Visibility = 2
	VisProtected Visibility = 3
)

// Symbol is one ELF64 symbol table record.
type Symbol struct {
	Name  uint32
	Info  uint8
	Other uint8
	Shndx uint16
	Value uint64
	Size  uint64
}

// NewSymbol packs binding and type into st_info as bind<<4 | type.
func NewSymbol(name uint32, typ SymbolType, bind SymbolBind, vis Visibility, shndx uint16, value, size uint64) Symbol {
	return Symbol{
		Name:  name,
		Info:  uint8(bind)<<4 | uint8(typ)&0xf,
		Other: uint8(vis),
		Shndx: shndx,
		Value: value,
		Size:  size,
	}
}

// Bind returns the binding half of st_info.
func (s Symbol) Bind() SymbolBind { return SymbolBind(s.Info >> 4) }

// Type returns the type half of st_info.
func (s Symbol) Type() SymbolType { return SymbolType(s.Info & 0xf) }

// AppendBinary appends the 24-byte little-endian encoding of s to b.
func (s Symbol) AppendBinary(b []byte) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, s.Name)
	b = append(b, s.Info, s.Other)
	b = le.AppendUint16(b, s.Shndx)
	b = le.AppendUint64(b, s.Value)
	b = le.AppendUint64(b, s.Size)
	return b
}
