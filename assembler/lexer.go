package assembler

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind tells the three kinds of source line apart.
type TokenKind int

const (
	// TokenDirective is a pseudo-op line such as ".global main".
	TokenDirective TokenKind = iota
	// TokenLabel is a "name:" line.
	TokenLabel
	// TokenInstruction is anything else.
	TokenInstruction
)

func (k TokenKind) String() string {
	switch k {
	case TokenDirective:
		return "directive"
	case TokenLabel:
		return "label"
	case TokenInstruction:
		return "instruction"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one classified, non-blank source line.
type Token struct {
	Kind TokenKind
	Line int
	// Source is the trimmed line, without its comment.
	Source string
	// Name is the pseudo-op, the label name or the mnemonic.
	Name string
	// Argument is the directive argument text, possibly empty.
	Argument string
	// Operands holds instruction operands in source order.
	Operands []string
}

// commentChar starts a comment on x86 in GNU as.
const commentChar = '#'

// Tokenize splits source text into one token per non-blank line.
func Tokenize(src string) ([]Token, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	var tokens []Token
	for i, line := range lines {
		if idx := strings.IndexRune(line, commentChar); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tok, err := tokenizeLine(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Source: line, Err: err}
		}
		tok.Line = i + 1
		tok.Source = line
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// tokenizeLine classifies a trimmed, non-empty line. Directives are checked
// first, then labels, and everything else is an instruction.
func tokenizeLine(line string) (Token, error) {
	switch {
	case strings.HasPrefix(line, "."):
		name, arg := splitFirstField(line)
		if name == "." {
			return Token{}, fmt.Errorf("%w: missing directive name", ErrSyntax)
		}
		return Token{Kind: TokenDirective, Name: strings.ToLower(name), Argument: arg}, nil

	case strings.HasSuffix(line, ":"):
		name := strings.TrimSpace(strings.TrimSuffix(line, ":"))
		if name == "" {
			return Token{}, fmt.Errorf("%w: empty label name", ErrSyntax)
		}
		if strings.IndexFunc(name, unicode.IsSpace) != -1 {
			return Token{}, fmt.Errorf("%w: invalid label name %q", ErrSyntax, name)
		}
		return Token{Kind: TokenLabel, Name: name}, nil
	}

	mnemonic, rest := splitFirstField(line)
	return Token{
		Kind:     TokenInstruction,
		Name:     strings.ToLower(mnemonic),
		Operands: splitOperands(rest),
	}, nil
}

// splitFirstField returns the first whitespace-delimited field and the
// trimmed remainder of the line.
func splitFirstField(line string) (string, string) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx == -1 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx:])
}

// splitOperands splits operand text on commas and whitespace, but ignores
// separators inside brackets. Empty pieces are dropped, which also takes care
// of trailing commas.
func splitOperands(s string) []string {
	var result []string
	depth := 0
	last := 0
	flush := func(end int) {
		if piece := strings.TrimSpace(s[last:end]); piece != "" {
			result = append(result, piece)
		}
	}
	for i, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (r == ',' || unicode.IsSpace(r)):
			flush(i)
			last = i + utf8.RuneLen(r)
		}
	}
	flush(len(s))
	return result
}
