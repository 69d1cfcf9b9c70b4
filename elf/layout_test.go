package elf_test

import (
	"bytes"
	goelf "debug/elf"
	"encoding/binary"
	"testing"

	"github.com/ktact/ras/elf"
)

// exit42 is "mov rax, 42" followed by "ret".
var exit42 = []byte{0x48, 0xc7, 0xc0, 0x2a, 0x00, 0x00, 0x00, 0xc3}

func build(t *testing.T, obj *elf.Object) ([]byte, *elf.Layout, *goelf.File) {
	t.Helper()
	data, layout, err := elf.Build(obj)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f, err := goelf.NewFile(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("debug/elf rejected the object: %v", err)
	}
	return data, layout, f
}

type placement struct {
	name   string
	offset uint64
	size   uint64
}

func checkPlacements(t *testing.T, f *goelf.File, want []placement) {
	t.Helper()
	if len(f.Sections) != len(want) {
		t.Fatalf("got %d sections; want %d", len(f.Sections), len(want))
	}
	for i, w := range want {
		s := f.Sections[i]
		if s.Name != w.name || s.Offset != w.offset || s.Size != w.size {
			t.Errorf("section %d = %s off %#x size %#x; want %s off %#x size %#x",
				i, s.Name, s.Offset, s.Size, w.name, w.offset, w.size)
		}
	}
}

func TestBuildEmptyObject(t *testing.T) {
	data, layout, f := build(t, &elf.Object{})

	if f.Class != goelf.ELFCLASS64 || f.Data != goelf.ELFDATA2LSB {
		t.Errorf("class/data = %v/%v", f.Class, f.Data)
	}
	if f.Type != goelf.ET_REL || f.Machine != goelf.EM_X86_64 {
		t.Errorf("type/machine = %v/%v", f.Type, f.Machine)
	}

	checkPlacements(t, f, []placement{
		{"", 0, 0},
		{".text", 0x40, 0},
		{".data", 0x40, 0},
		{".bss", 0x40, 0},
		{".symtab", 0x40, 0x18},
		{".strtab", 0x58, 0x1},
		{".shstrtab", 0x59, 0x2c},
	})

	if layout.SectionTableOffset != 0x88 {
		t.Errorf("e_shoff = %#x; want 0x88", layout.SectionTableOffset)
	}
	if got := binary.LittleEndian.Uint64(data[40:]); got != 0x88 {
		t.Errorf("header e_shoff = %#x; want 0x88", got)
	}
	if len(data) != 0x248 || layout.FileSize != 0x248 {
		t.Errorf("file size = %#x (layout %#x); want 0x248", len(data), layout.FileSize)
	}

	syms, err := f.Symbols()
	if err != nil {
		t.Fatalf("Symbols: %v", err)
	}
	if len(syms) != 0 {
		t.Errorf("empty object has symbols: %+v", syms)
	}
}

func TestBuildNullSectionHeader(t *testing.T) {
	data, layout, _ := build(t, &elf.Object{Text: exit42})
	null := data[layout.SectionTableOffset : layout.SectionTableOffset+elf.SectionHeaderSize]
	if !bytes.Equal(null, make([]byte, elf.SectionHeaderSize)) {
		t.Errorf("section header 0 = % x; want all zero", null)
	}
}

func TestBuildExitCode42(t *testing.T) {
	obj := &elf.Object{
		Text: exit42,
		Symbols: []elf.SymbolDef{
			{Name: "main", Type: elf.SymNoType, Bind: elf.BindGlobal, Section: elf.IndexText},
		},
	}
	data, layout, f := build(t, obj)

	checkPlacements(t, f, []placement{
		{"", 0, 0},
		{".text", 0x40, 8},
		{".data", 0x48, 0},
		{".bss", 0x48, 0},
		{".symtab", 0x48, 0x30},
		{".strtab", 0x78, 0x6},
		{".shstrtab", 0x7e, 0x2c},
	})
	if layout.SectionTableOffset != 0xb0 {
		t.Errorf("e_shoff = %#x; want 0xb0", layout.SectionTableOffset)
	}
	if len(data) != 0x270 {
		t.Errorf("file size = %#x; want 0x270", len(data))
	}
	if !bytes.Equal(data[0x40:0x48], exit42) {
		t.Errorf(".text = % x", data[0x40:0x48])
	}
	if got := string(data[0x78:0x7e]); got != "\x00main\x00" {
		t.Errorf(".strtab = %q", got)
	}
	if pad := data[0xaa:0xb0]; !bytes.Equal(pad, make([]byte, 6)) {
		t.Errorf("padding before section table = % x", pad)
	}

	text := f.Section(".text")
	if text.Type != goelf.SHT_PROGBITS || text.Flags != goelf.SHF_ALLOC|goelf.SHF_EXECINSTR || text.Addralign != 1 {
		t.Errorf(".text header = %+v", text.SectionHeader)
	}
	bss := f.Section(".bss")
	if bss.Type != goelf.SHT_NOBITS || bss.Flags != goelf.SHF_WRITE|goelf.SHF_ALLOC {
		t.Errorf(".bss header = %+v", bss.SectionHeader)
	}
	symtab := f.Section(".symtab")
	if symtab.Link != elf.IndexStrtab || symtab.Info != 1 || symtab.Entsize != elf.SymbolSize || symtab.Addralign != 8 {
		t.Errorf(".symtab link %d info %d entsize %d align %d", symtab.Link, symtab.Info, symtab.Entsize, symtab.Addralign)
	}

	syms, err := f.Symbols()
	if err != nil {
		t.Fatalf("Symbols: %v", err)
	}
	if len(syms) != 1 {
		t.Fatalf("got %d symbols; want 1", len(syms))
	}
	main := syms[0]
	if main.Name != "main" || goelf.ST_BIND(main.Info) != goelf.STB_GLOBAL || goelf.ST_TYPE(main.Info) != goelf.STT_NOTYPE {
		t.Errorf("symbol = %+v", main)
	}
	if main.Section != goelf.SectionIndex(elf.IndexText) || main.Value != 0 || main.Size != 0 {
		t.Errorf("symbol placement = %+v", main)
	}
	// st_name of record 1 is the offset of "main" in .strtab.
	if got := binary.LittleEndian.Uint32(data[0x48+elf.SymbolSize:]); got != 1 {
		t.Errorf("st_name = %d; want 1", got)
	}
}

func TestBuildAlignsSymbolTable(t *testing.T) {
	data, _, f := build(t, &elf.Object{Text: []byte{0xc3}})

	symtab := f.Section(".symtab")
	if symtab.Offset != 0x48 {
		t.Fatalf(".symtab offset = %#x; want 0x48", symtab.Offset)
	}
	if pad := data[0x41:0x48]; !bytes.Equal(pad, make([]byte, 7)) {
		t.Errorf("padding after .text = % x", pad)
	}
	if f.Section(".data").Offset != 0x41 {
		t.Errorf(".data offset = %#x; want 0x41", f.Section(".data").Offset)
	}
}

func TestBuildLocalsBeforeGlobals(t *testing.T) {
	obj := &elf.Object{
		Text: exit42,
		Symbols: []elf.SymbolDef{
			{Name: "_start", Bind: elf.BindGlobal, Section: elf.IndexText},
			{Name: "done", Bind: elf.BindLocal, Section: elf.IndexText, Value: 7},
		},
	}
	_, _, f := build(t, obj)

	syms, err := f.Symbols()
	if err != nil {
		t.Fatal(err)
	}
	if len(syms) != 2 || syms[0].Name != "done" || syms[1].Name != "_start" {
		t.Fatalf("symbol order = %+v", syms)
	}
	if syms[0].Value != 7 || goelf.ST_BIND(syms[0].Info) != goelf.STB_LOCAL {
		t.Errorf("local symbol = %+v", syms[0])
	}
	if info := f.Section(".symtab").Info; info != 2 {
		t.Errorf(".symtab sh_info = %d; want 2", info)
	}
}

func TestBuildLayoutReport(t *testing.T) {
	_, layout, _ := build(t, &elf.Object{Text: exit42})
	names := []string{".text", ".data", ".bss", ".symtab", ".strtab", ".shstrtab"}
	if len(layout.Sections) != len(names) {
		t.Fatalf("layout has %d sections; want %d", len(layout.Sections), len(names))
	}
	for i, p := range layout.Sections {
		if p.Name != names[i] || p.Index != i+1 {
			t.Errorf("placement %d = %+v; want %s at index %d", i, p, names[i], i+1)
		}
	}
	if layout.Symbols != 1 {
		t.Errorf("layout.Symbols = %d; want 1", layout.Symbols)
	}
}
