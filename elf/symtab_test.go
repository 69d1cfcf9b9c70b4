package elf

import (
	"encoding/hex"
	"strings"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ToLower(strings.Join(strings.Fields(s), "")))
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

func TestSymbolTableNullEntry(t *testing.T) {
	st := NewSymbolTable()
	if st.Len() != 1 {
		t.Fatalf("new table has %d entries; want 1", st.Len())
	}
	if st.Symbol(0) != (Symbol{}) {
		t.Errorf("entry 0 = %+v; want all zero", st.Symbol(0))
	}
	if got := st.Bytes(); len(got) != SymbolSize || strings.Trim(string(got), "\x00") != "" {
		t.Errorf("null entry encodes as % x", got)
	}

	st.Add(1, SymNoType, BindGlobal, VisDefault, IndexText, 0, 0)
	if st.Symbol(0) != (Symbol{}) {
		t.Errorf("entry 0 changed after Add: %+v", st.Symbol(0))
	}
}

func TestSymbolInfoPacking(t *testing.T) {
	tests := []struct {
		typ  SymbolType
		bind SymbolBind
		want uint8
	}{
		{SymNoType, BindLocal, 0x00},
		{SymNoType, BindGlobal, 0x10},
		{SymFunc, BindGlobal, 0x12},
		{SymObject, BindWeak, 0x21},
	}
	for _, tc := range tests {
		s := NewSymbol(0, tc.typ, tc.bind, VisDefault, 0, 0, 0)
		if s.Info != tc.want {
			t.Errorf("info(%d,%d) = %#x; want %#x", tc.bind, tc.typ, s.Info, tc.want)
		}
		if s.Bind() != tc.bind || s.Type() != tc.typ {
			t.Errorf("unpacked %#x as bind %d type %d", s.Info, s.Bind(), s.Type())
		}
	}
}

func TestSymbolEncoding(t *testing.T) {
	s := NewSymbol(1, SymNoType, BindGlobal, VisHidden, IndexText, 0x1122334455667788, 8)
	want := mustHex(t, `
		01000000 10 02 0100
		8877665544332211
		0800000000000000`)
	got := s.AppendBinary(nil)
	if string(got) != string(want) {
		t.Errorf("encoding\n got % x\nwant % x", got, want)
	}
}

func TestSymbolTableFirstGlobal(t *testing.T) {
	st := NewSymbolTable()
	if got := st.FirstGlobal(); got != 1 {
		t.Errorf("empty table FirstGlobal = %d; want 1", got)
	}
	st.Add(1, SymNoType, BindLocal, VisDefault, IndexText, 0, 0)
	st.Add(6, SymNoType, BindLocal, VisDefault, IndexText, 7, 0)
	st.Add(11, SymNoType, BindGlobal, VisDefault, IndexText, 0, 0)
	if got := st.FirstGlobal(); got != 3 {
		t.Errorf("FirstGlobal = %d; want 3", got)
	}
}
