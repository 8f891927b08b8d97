// Package definition extracts `def NAME "STRING"` statements from the
// token stream, assigning each a data-section offset.
package definition

import (
	"fmt"
	"strings"

	"cca/token"
)

// Definition is a named string constant bound to an offset in the data
// section.
type Definition struct {
	Name   string
	Raw    string // the string literal exactly as it appeared in source
	Offset int    // byte offset into the data section
}

// Extract walks tokens once, pulling out every `def NAME "STRING"` triple.
// It returns the filtered token stream (with all three tokens of each
// definition removed) and the ordered list of definitions found.
//
// A definition's Offset advances by the expanded (escape-processed) byte
// length of its value rather than the raw literal length, so that any
// later reference to an offset past a definition containing an escape
// sequence still lines up with what the binary writer actually emits.
func Extract(tokens []token.Token) ([]token.Token, []Definition, error) {
	var kept []token.Token
	var defs []Definition
	cursor := 0

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		if t.Kind != token.Identifier || t.Literal != "def" {
			kept = append(kept, t)
			continue
		}

		if i+2 >= len(tokens) || tokens[i+1].Kind != token.Identifier || tokens[i+2].Kind != token.String {
			return nil, nil, fmt.Errorf("unknown syntax in definition statement on line %d", t.Line)
		}

		name := tokens[i+1]
		value := tokens[i+2]

		defs = append(defs, Definition{
			Name:   name.Literal,
			Raw:    value.Literal,
			Offset: cursor,
		})
		cursor += len(Expand(value.Literal))

		i += 2
	}

	return kept, defs, nil
}

// escapes is applied in this exact order; each entry's left side is the
// two-character escape sequence as it appears in raw source.
var escapes = []struct{ from, to string }{
	{`\n`, "\n"},
	{`\t`, "\t"},
	{`\\`, `\`},
	{`\'`, `'`},
	{`\"`, `"`},
	{`\a`, "\a"},
	{`\b`, "\b"},
	{`\e`, "\x1b"},
	{`\f`, "\f"},
	{`\r`, "\r"},
	{`\v`, "\v"},
}

// Expand replaces every recognized escape sequence in raw with its
// single-byte value, in the fixed order the assembler has always used.
func Expand(raw string) string {
	for _, e := range escapes {
		raw = strings.ReplaceAll(raw, e.from, e.to)
	}
	return raw
}
