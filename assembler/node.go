package assembler

// NodeType defines the type of an assembly node.
type NodeType int

const (
	// NodeInstruction type.
	NodeInstruction NodeType = iota
	// NodeLabel type.
	NodeLabel
	// NodeDirective type.
	NodeDirective
)

// Node represents one parsed element from the assembly source.
type Node struct {
	Type      NodeType
	Line      int
	Source    string
	Label     string
	Directive string
	Argument  string
	Mnemonic  string
	Operands  []string
}

// Parse converts tokens into AST nodes, one node per token, in order.
func Parse(tokens []Token) []*Node {
	nodes := make([]*Node, 0, len(tokens))
	for _, tok := range tokens {
		n := &Node{Line: tok.Line, Source: tok.Source}
		switch tok.Kind {
		case TokenDirective:
			n.Type = NodeDirective
			n.Directive = tok.Name
			n.Argument = tok.Argument
		case TokenLabel:
			n.Type = NodeLabel
			n.Label = tok.Name
		case TokenInstruction:
			n.Type = NodeInstruction
			n.Mnemonic = tok.Name
			n.Operands = append([]string(nil), tok.Operands...)
		}
		nodes = append(nodes, n)
	}
	return nodes
}
