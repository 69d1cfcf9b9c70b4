package assembler

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	src := "\t.intel_syntax noprefix\n" +
		"\n" +
		"   .global   main  \r\n" +
		"main:\n" +
		"\tmov rax, 42   # return value\n" +
		"# a full-line comment\n" +
		"\tret\n"

	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: TokenDirective, Line: 1, Source: ".intel_syntax noprefix", Name: ".intel_syntax", Argument: "noprefix"},
		{Kind: TokenDirective, Line: 3, Source: ".global   main", Name: ".global", Argument: "main"},
		{Kind: TokenLabel, Line: 4, Source: "main:", Name: "main"},
		{Kind: TokenInstruction, Line: 5, Source: "mov rax, 42", Name: "mov", Operands: []string{"rax", "42"}},
		{Kind: TokenInstruction, Line: 7, Source: "ret", Name: "ret"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize:\n got %+v\nwant %+v", tokens, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, src := range []string{"", "\n\n", "   \t\n", "# nothing\n"} {
		tokens, err := Tokenize(src)
		if err != nil || len(tokens) != 0 {
			t.Errorf("Tokenize(%q) = %v, %v; want no tokens", src, tokens, err)
		}
	}
}

func TestTokenizeDirectiveWithoutArgument(t *testing.T) {
	tokens, err := Tokenize(".text")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenDirective || tokens[0].Name != ".text" || tokens[0].Argument != "" {
		t.Errorf("got %+v", tokens)
	}
}

func TestSplitOperands(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"rax, 42", []string{"rax", "42"}},
		{"rax,42", []string{"rax", "42"}},
		{"rax , 42,", []string{"rax", "42"}},
		{"rax\t42", []string{"rax", "42"}},
		{"rax, [rbx + 8]", []string{"rax", "[rbx + 8]"}},
		{"qword ptr [rbp-8], rax", []string{"qword", "ptr", "[rbp-8]", "rax"}},
	}
	for _, tc := range tests {
		if got := splitOperands(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitOperands(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseMirrorsTokens(t *testing.T) {
	tokens := []Token{
		{Kind: TokenDirective, Line: 1, Name: ".global", Argument: "main"},
		{Kind: TokenLabel, Line: 2, Name: "main"},
		{Kind: TokenInstruction, Line: 3, Name: "mov", Operands: []string{"rax", "42"}},
	}
	nodes := Parse(tokens)
	if len(nodes) != len(tokens) {
		t.Fatalf("got %d nodes; want %d", len(nodes), len(tokens))
	}
	if n := nodes[0]; n.Type != NodeDirective || n.Directive != ".global" || n.Argument != "main" || n.Line != 1 {
		t.Errorf("node 0 = %+v", n)
	}
	if n := nodes[1]; n.Type != NodeLabel || n.Label != "main" {
		t.Errorf("node 1 = %+v", n)
	}
	if n := nodes[2]; n.Type != NodeInstruction || n.Mnemonic != "mov" || !reflect.DeepEqual(n.Operands, []string{"rax", "42"}) {
		t.Errorf("node 2 = %+v", n)
	}

	// Nodes own their operand slices.
	nodes[2].Operands[0] = "rbx"
	if tokens[2].Operands[0] != "rax" {
		t.Error("Parse shares operand storage with the token")
	}
}
