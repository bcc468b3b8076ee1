package templater

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/dotsetup/templater/pkg/logging"
)

// Lexer splits template text into Literal and VariableRef tokens in a single
// left-to-right scan with one rune of lookahead.
type Lexer struct {
	reader *TextReader
	logger zerolog.Logger
}

// NewLexer creates a lexer over text. A Lexer is good for one Lex call; the
// cursor is not rewound.
func NewLexer(text string) *Lexer {
	return &Lexer{
		reader: NewTextReader(text),
		logger: logging.GetLogger("templater.lexer"),
	}
}

// Lex tokenizes input. It is total: any input, however malformed with
// respect to {{ }} syntax, yields a valid token sequence, and empty input
// yields an empty one.
func Lex(input string) []Token {
	return NewLexer(input).Lex()
}

// Lex runs the scan. Literal text coalesces across failed marker attempts,
// so a malformed {{... span never splits the surrounding text into extra
// tokens.
func (l *Lexer) Lex() []Token {
	var tokens []Token
	var pending strings.Builder

	flush := func() {
		if pending.Len() > 0 {
			tokens = append(tokens, Literal{Text: pending.String()})
			pending.Reset()
		}
	}

	for {
		cur, ok := l.reader.Current()
		if !ok {
			break
		}

		if next, ok := l.reader.Peek(); cur == '{' && ok && next == '{' {
			span, name, isVar, atEnd := l.scanVariable()
			if isVar {
				flush()
				tokens = append(tokens, VariableRef{Text: span, Name: name})
			} else {
				// Failed candidate: the span joins the pending literal and
				// the rune that broke it is re-examined by this loop.
				pending.WriteString(span)
			}
			if atEnd {
				break
			}
			continue
		}

		pending.WriteRune(cur)
		if _, ok := l.reader.Advance(); !ok {
			break
		}
	}

	flush()

	l.logger.Debug().Int("tokens", len(tokens)).Msg("Lexed template")
	return tokens
}

// scanVariable attempts to read a {{ name }} marker. The cursor must sit on
// the first '{' with a second '{' peeked.
//
// On success isVar is true, span holds the full marker text and the cursor
// has moved past the closing braces. On failure span holds everything
// consumed so far and the cursor sits on the rune that broke the candidate,
// which is not part of the span. atEnd reports that the input is exhausted,
// every remaining rune having been consumed into span.
func (l *Lexer) scanVariable() (span, name string, isVar, atEnd bool) {
	var text, ident strings.Builder
	text.WriteString("{{")
	l.reader.Advance() // onto the second '{'

	inIdent := false   // identifier runes seen
	identDone := false // a space followed the identifier

	for {
		r, ok := l.reader.Advance()
		if !ok {
			// Unterminated marker at end of input
			return text.String(), "", false, true
		}

		switch {
		case r == '}':
			next, ok := l.reader.Peek()
			if !ok || next != '}' {
				return text.String(), "", false, false
			}
			text.WriteString("}}")
			l.reader.Advance()
			_, more := l.reader.Advance() // step past the marker
			return text.String(), ident.String(), true, !more

		case isIdentRune(r):
			if identDone {
				// A second word inside the marker; not a variable
				return text.String(), "", false, false
			}
			text.WriteRune(r)
			ident.WriteRune(r)
			inIdent = true

		case r == ' ':
			text.WriteRune(r)
			if inIdent {
				identDone = true
			}

		default:
			return text.String(), "", false, false
		}
	}
}

// isIdentRune reports whether r may appear in a variable identifier. Digits
// are accepted alongside letters: theme keys like gtk2.theme.name1 are the
// common case in practice.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_'
}
