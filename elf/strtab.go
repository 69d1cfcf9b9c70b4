package elf

import (
	"fmt"
	"math"
)

type stringEntry struct {
	name   string
	offset uint32
}

// StringTable is a blob of NUL-terminated strings addressed by byte offset.
// Offset 0 always holds the empty string. Lookups are a linear scan; the
// tables an assembler writes are small.
type StringTable struct {
	data    []byte
	entries []stringEntry
}

// NewStringTable returns a table holding only the empty string.
func NewStringTable() *StringTable {
	return &StringTable{
		data:    []byte{0},
		entries: []stringEntry{{name: "", offset: 0}},
	}
}

// NewSectionNameTable builds a section-name table from a fixed list.
func NewSectionNameTable(names ...string) (*StringTable, error) {
	t := NewStringTable()
	for _, name := range names {
		if _, err := t.Intern(name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Intern returns the offset of name, appending it first if it is not stored
// yet. Interning the same name again returns the same offset and leaves the
// table unchanged.
func (t *StringTable) Intern(name string) (uint32, error) {
	if off, ok := t.OffsetOf(name); ok {
		return off, nil
	}
	if uint64(len(t.data))+uint64(len(name))+1 > math.MaxUint32 {
		return 0, fmt.Errorf("%w: string table exceeds 4 GiB", ErrOverflow)
	}

	off := uint32(len(t.data))
	t.entries = append(t.entries, stringEntry{name: name, offset: off})
	t.data = append(t.data, name...)
	t.data = append(t.data, 0)
	return off, nil
}

// OffsetOf looks a name up without inserting it.
func (t *StringTable) OffsetOf(name string) (uint32, bool) {
	for _, e := range t.entries {
		if e.name == name {
			return e.offset, true
		}
	}
	return 0, false
}

// Len returns the encoded size in bytes.
func (t *StringTable) Len() int { return len(t.data) }

// Bytes returns the encoded table. The slice must not be modified.
func (t *StringTable) Bytes() []byte { return t.data }
