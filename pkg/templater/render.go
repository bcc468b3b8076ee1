package templater

import (
	"fmt"
	"strings"

	"github.com/dotsetup/templater/pkg/errors"
	"github.com/dotsetup/templater/pkg/logging"
)

// missingFormat is the visible, greppable placeholder emitted for variables
// that resolve in neither mapping.
const missingFormat = "`MISSING VARIABLE %s`"

// Render produces the output text for tokens. VariableRef tokens resolve
// against vars first, then fallback (which may be nil); names found in
// neither render as `MISSING VARIABLE <name>` so unresolved references stay
// visible in the output. Render is pure and total: the same tokens may be
// rendered any number of times against different mappings.
func Render(tokens []Token, vars Vars, fallback Vars) string {
	logger := logging.GetLogger("templater.render")

	out, missing := render(tokens, vars, fallback)
	for _, name := range missing {
		logger.Warn().Str("variable", name).Msg("Unresolved variable")
	}

	return out
}

// RenderStrict renders exactly like Render but additionally reports
// unresolved variables as an ErrVarMissing error. The returned string is
// complete either way, with placeholders standing in for missing values.
func RenderStrict(tokens []Token, vars Vars, fallback Vars) (string, error) {
	out, missing := render(tokens, vars, fallback)
	if len(missing) > 0 {
		return out, errors.Newf(errors.ErrVarMissing,
			"unresolved variables: %s", strings.Join(missing, ", ")).
			WithDetail("variables", missing)
	}
	return out, nil
}

func render(tokens []Token, vars Vars, fallback Vars) (string, []string) {
	var out strings.Builder
	var missing []string

	for _, tok := range tokens {
		switch t := tok.(type) {
		case Literal:
			out.WriteString(t.Text)
		case VariableRef:
			if value, ok := lookup(t.Name, vars, fallback); ok {
				out.WriteString(value)
			} else {
				missing = append(missing, t.Name)
				fmt.Fprintf(&out, missingFormat, t.Name)
			}
		}
	}

	return out.String(), missing
}

// lookup resolves name against the primary mapping first, then the fallback.
func lookup(name string, vars Vars, fallback Vars) (string, bool) {
	if value, ok := vars[name]; ok {
		return value, true
	}
	if value, ok := fallback[name]; ok {
		return value, true
	}
	return "", false
}

// Templater lexes a template once and renders it on demand.
type Templater struct {
	tokens []Token
}

// New lexes text and returns a Templater ready to render.
func New(text string) *Templater {
	return &Templater{tokens: Lex(text)}
}

// Tokens returns a copy of the lexed token sequence.
func (t *Templater) Tokens() []Token {
	tokens := make([]Token, len(t.tokens))
	copy(tokens, t.tokens)
	return tokens
}

// Render substitutes vars into the template.
func (t *Templater) Render(vars Vars) string {
	return Render(t.tokens, vars, nil)
}

// RenderWithFallback substitutes vars into the template, consulting fallback
// for names vars does not define.
func (t *Templater) RenderWithFallback(vars, fallback Vars) string {
	return Render(t.tokens, vars, fallback)
}
