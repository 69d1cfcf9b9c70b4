package elf

// SymbolTable is the ordered list of symbol records. Entry 0 is always the
// all-zero null symbol.
type SymbolTable struct {
	symbols []Symbol
}

// NewSymbolTable creates a table holding only the null entry.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: []Symbol{{}}}
}

// Add appends a record.
func (t *SymbolTable) Add(name uint32, typ SymbolType, bind SymbolBind, vis Visibility, shndx uint16, value, size uint64) {
	t.symbols = append(t.symbols, NewSymbol(name, typ, bind, vis, shndx, value, size))
}

// Len returns the number of records, null entry included.
func (t *SymbolTable) Len() int { return len(t.symbols) }

// Symbol returns record i.
func (t *SymbolTable) Symbol(i int) Symbol { return t.symbols[i] }

// FirstGlobal returns the index of the first non-local record, which is what
// the .symtab sh_info field holds. Locals must come first.
func (t *SymbolTable) FirstGlobal() int {
	for i := 1; i < len(t.symbols); i++ {
		if t.symbols[i].Bind() != BindLocal {
			return i
		}
	}
	return len(t.symbols)
}

// Bytes encodes every record.
func (t *SymbolTable) Bytes() []byte {
	b := make([]byte, 0, len(t.symbols)*SymbolSize)
	for _, s := range t.symbols {
		b = s.AppendBinary(b)
	}
	return b
}
