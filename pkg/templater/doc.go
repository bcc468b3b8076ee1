// Package templater substitutes {{ variable }} markers inside arbitrary text.
//
// The engine is a lexer plus a renderer. Lex splits the input into Literal
// and VariableRef tokens in a single linear scan; Render resolves each
// VariableRef against a primary and an optional fallback mapping and
// concatenates the results.
//
// # Syntax
//
// A marker opens with "{{" and closes with "}}". The identifier between the
// delimiters may contain letters, digits, dots and underscores; spaces are
// allowed between the delimiters and the identifier but not inside it:
//
//	{{ gtk2.theme.name }}
//	{{ some_long_name }}
//	{{compact}}
//
// Anything that breaks these rules is not an error. The whole span degrades
// to literal text and is copied through untouched, so malformed markers
// survive rendering byte for byte. Lexing is lossless: concatenating the
// source text of every token reproduces the input exactly.
//
// # Missing Variables
//
// A well-formed marker whose identifier resolves in neither mapping renders
// as a visible placeholder:
//
//	`MISSING VARIABLE gtk2.theme.name`
//
// so unresolved references can be grepped for in rendered config files.
// RenderStrict additionally reports them as an error.
//
// The engine performs no I/O. Callers supply the text and the mappings and
// persist the result themselves; see Flatten for turning nested theme maps
// into the flat dotted-identifier form used for lookup.
package templater
