package templater

// Token is one classified span of template source. It is a closed union:
// Literal and VariableRef are the only implementations. Tokens are immutable
// values produced by the lexer; concatenating SourceText over a lex result
// reproduces the input exactly.
type Token interface {
	// SourceText returns the exact span of input the token covers, including
	// any delimiters and interior whitespace.
	SourceText() string

	token()
}

// Literal is a run of output text copied through verbatim.
type Literal struct {
	Text string
}

// VariableRef is a well-formed {{ name }} marker.
type VariableRef struct {
	// Text is the original source span, delimiters and spacing included.
	Text string
	// Name is the identifier between the delimiters, whitespace stripped.
	Name string
}

func (t Literal) SourceText() string     { return t.Text }
func (t VariableRef) SourceText() string { return t.Text }

func (Literal) token()     {}
func (VariableRef) token() {}
