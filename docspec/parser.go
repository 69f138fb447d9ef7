// Package docspec parses the optional @doc request header that may precede
// the raw body text of an input file:
//
//	@doc {
//	  title: "Service Agreement"
//	  filename: "agreement"
//	  size: LETTER
//	  margin: "54pt"
//	}
//	...raw body text...
//
// A file without a header is treated as all body.
package docspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	specLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[@{}:;,]`},
	})

	requestParser = participle.MustBuild[Request](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Request is the root AST node for an @doc header.
type Request struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Entries []*Entry       `parser:"'@' 'doc' Newline* '{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Entry is a single key/value assignment inside the header block.
type Entry struct {
	Key   string `parser:"@Ident ':' "`
	Value *Value `parser:"@@"`
}

// Value represents a header value: quoted string, number (with optional
// length unit) or bare identifier (eg: page-size preset names).
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Text returns the entry value as a plain string, whatever its form.
func (e *Entry) Text() string {
	if e == nil || e.Value == nil {
		return ""
	}
	switch {
	case e.Value.String != nil:
		return string(*e.Value.String)
	case e.Value.Number != nil:
		return *e.Value.Number
	case e.Value.Ident != nil:
		return *e.Value.Ident
	default:
		return ""
	}
}

// Get returns the value for key (case-insensitive); the last occurrence wins.
// Missing keys yield the empty string.
func (r *Request) Get(key string) string {
	if r == nil {
		return ""
	}
	out := ""
	for _, e := range r.Entries {
		if strings.EqualFold(e.Key, key) {
			out = e.Text()
		}
	}
	return out
}

// ParseString parses a complete @doc header from a string.
func ParseString(input string) (*Request, error) {
	return requestParser.ParseString("", input)
}

// Split separates an optional @doc header from the raw body. The header, if
// present, must be the first non-whitespace content of the file and contains
// no nested braces, so the first closing brace terminates it. The returned
// body is everything after the header with a single leading newline stripped.
func Split(src string) (*Request, string, error) {
	trimmed := strings.TrimLeft(src, " \t\r\n")
	if !hasHeaderMarker(trimmed) {
		return nil, src, nil
	}
	end := strings.IndexByte(trimmed, '}')
	if end < 0 {
		return nil, "", fmt.Errorf("docspec: @doc header is missing a closing brace")
	}
	req, err := ParseString(trimmed[:end+1])
	if err != nil {
		return nil, "", fmt.Errorf("docspec: %w", err)
	}
	body := trimmed[end+1:]
	body = strings.TrimPrefix(body, "\r\n")
	body = strings.TrimPrefix(body, "\n")
	return req, body, nil
}

// hasHeaderMarker reports whether s starts with the @doc marker as a whole
// token. "@document ..." is body text, not a header.
func hasHeaderMarker(s string) bool {
	rest, ok := strings.CutPrefix(s, "@doc")
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	switch rest[0] {
	case '{', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
