package elf

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is returned when an offset, size or count does not fit the
// field it has to be stored in. No partial object is produced.
var ErrOverflow = errors.New("object layout overflow")

// Section indices in the section header table.
const (
	IndexNull = iota
	IndexText
	IndexData
	IndexBss
	IndexSymtab
	IndexStrtab
	IndexShstrtab
	sectionCount
)

// sectionNameOrder is the order GNU as stores names in .shstrtab, which
// differs from the section header order.
var sectionNameOrder = []string{".symtab", ".strtab", ".shstrtab", ".text", ".data", ".bss"}

type sectionDef struct {
	name  string
	typ   SectionType
	flags SectionFlag
}

var sectionDefs = [sectionCount]sectionDef{
	IndexNull:     {"", SectionNull, 0},
	IndexText:     {".text", SectionProgBits, FlagAlloc | FlagExecInstr},
	IndexData:     {".data", SectionProgBits, FlagWrite | FlagAlloc},
	IndexBss:      {".bss", SectionNoBits, FlagWrite | FlagAlloc},
	IndexSymtab:   {".symtab", SectionSymTab, 0},
	IndexStrtab:   {".strtab", SectionStrTab, 0},
	IndexShstrtab: {".shstrtab", SectionStrTab, 0},
}

// sectionTableAlign is the alignment of the section header table.
const sectionTableAlign = 8

// SymbolDef describes a symbol to write. Build interns the name into .strtab.
type SymbolDef struct {
	Name       string
	Type       SymbolType
	Bind       SymbolBind
	Visibility Visibility
	Section    uint16
	Value      uint64
	Size       uint64
}

// Object is everything Build needs: the .text contents and the symbols.
type Object struct {
	Text    []byte
	Symbols []SymbolDef
}

// Placement records where one section ended up in the file.
type Placement struct {
	Index  int
	Name   string
	Type   SectionType
	Offset uint64
	Size   uint64
}

// Layout describes a built object, for logging and inspection.
type Layout struct {
	Sections           []Placement
	SectionTableOffset uint64
	Symbols            int
	FileSize           uint64
}

// builder is the layout context for one Build call. Every position is taken
// from the offset accumulator, never from a fixed constant.
type builder struct {
	out      []byte
	offset   uint64
	shstrtab *StringTable
	strtab   *StringTable
	symtab   *SymbolTable
	sections []SectionHeader
	layout   Layout
}

// Build lays out and serializes a complete relocatable object: header,
// .text, .data, .bss, .symtab, .strtab, .shstrtab, padding, then the section
// header table.
func Build(obj *Object) ([]byte, *Layout, error) {
	shstrtab, err := NewSectionNameTable(sectionNameOrder...)
	if err != nil {
		return nil, nil, err
	}
	b := &builder{
		shstrtab: shstrtab,
		strtab:   NewStringTable(),
		symtab:   NewSymbolTable(),
	}

	if err := b.addSymbols(obj.Symbols); err != nil {
		return nil, nil, err
	}
	if err := b.reserve(HeaderSize); err != nil {
		return nil, nil, err
	}

	b.sections = append(b.sections, NewSectionHeader(SectionNull, 0))
	contents := [sectionCount][]byte{
		IndexText:     obj.Text,
		IndexSymtab:   b.symtab.Bytes(),
		IndexStrtab:   b.strtab.Bytes(),
		IndexShstrtab: b.shstrtab.Bytes(),
	}
	for i := IndexText; i < sectionCount; i++ {
		if err := b.place(i, contents[i]); err != nil {
			return nil, nil, err
		}
	}

	symtab := &b.sections[IndexSymtab]
	symtab.Link = IndexStrtab
	symtab.Info = uint32(b.symtab.FirstGlobal())

	if err := b.alignTo(sectionTableAlign); err != nil {
		return nil, nil, err
	}
	shoff := b.offset
	tableSize, err := checkedMul(uint64(len(b.sections)), SectionHeaderSize)
	if err != nil {
		return nil, nil, err
	}
	if _, err := checkedAdd(shoff, tableSize); err != nil {
		return nil, nil, err
	}
	for i := range b.sections {
		b.out = b.sections[i].AppendBinary(b.out)
	}
	b.offset += tableSize

	if len(b.sections) > math.MaxUint16 {
		return nil, nil, fmt.Errorf("%w: %d sections", ErrOverflow, len(b.sections))
	}
	hdr := NewHeader(IndexShstrtab)
	hdr.SetSectionTable(shoff, uint16(len(b.sections)))
	copy(b.out[:HeaderSize], hdr.AppendBinary(nil))

	b.layout.SectionTableOffset = shoff
	b.layout.Symbols = b.symtab.Len()
	b.layout.FileSize = b.offset
	return b.out, &b.layout, nil
}

// addSymbols interns names and fills the symbol table, locals first.
func (b *builder) addSymbols(defs []SymbolDef) error {
	for _, pass := range []bool{true, false} {
		for _, d := range defs {
			if (d.Bind == BindLocal) != pass {
				continue
			}
			name, err := b.strtab.Intern(d.Name)
			if err != nil {
				return err
			}
			b.symtab.Add(name, d.Type, d.Bind, d.Visibility, d.Section, d.Value, d.Size)
		}
	}
	return nil
}

// place aligns the accumulator for section i, records its header and appends
// its contents. NoBits sections take no file space.
func (b *builder) place(i int, data []byte) error {
	def := sectionDefs[i]
	sh := NewSectionHeader(def.typ, def.flags)

	name, ok := b.shstrtab.OffsetOf(def.name)
	if !ok {
		return fmt.Errorf("section name %s missing from .shstrtab", def.name)
	}
	sh.Name = name

	if err := b.alignTo(sh.AddrAlign); err != nil {
		return err
	}
	sh.Offset = b.offset
	sh.Size = uint64(len(data))
	if def.typ != SectionNoBits {
		if err := b.reserve(uint64(len(data))); err != nil {
			return err
		}
		copy(b.out[sh.Offset:], data)
	}

	b.sections = append(b.sections, sh)
	b.layout.Sections = append(b.layout.Sections, Placement{
		Index:  i,
		Name:   def.name,
		Type:   def.typ,
		Offset: sh.Offset,
		Size:   sh.Size,
	})
	return nil
}

// reserve grows the output by n zero bytes.
func (b *builder) reserve(n uint64) error {
	end, err := checkedAdd(b.offset, n)
	if err != nil {
		return err
	}
	if end > math.MaxInt {
		return fmt.Errorf("%w: object exceeds addressable size", ErrOverflow)
	}
	b.out = append(b.out, make([]byte, n)...)
	b.offset = end
	return nil
}

// alignTo pads the output with zeros up to the next multiple of align.
func (b *builder) alignTo(align uint64) error {
	if align <= 1 {
		return nil
	}
	rem := b.offset % align
	if rem == 0 {
		return nil
	}
	return b.reserve(align - rem)
}

func checkedAdd(a, c uint64) (uint64, error) {
	sum, carry := bits.Add64(a, c, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, c)
	}
	return sum, nil
}

func checkedMul(a, c uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, c)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, c)
	}
	return lo, nil
}
