// Package resolver reclassifies identifiers into opcodes, registers, or
// unresolved references, harvests labels into a marker table, and resolves
// every remaining symbolic reference against that table or the
// definition table produced by the definition package.
package resolver

import (
	"fmt"

	"cca/definition"
	"cca/token"
)

// Marker is a named code location: a label's name bound to the code byte
// offset at which it was declared.
type Marker struct {
	Name   string
	Offset int
}

// Resolve runs both post-tokenizer sweeps described in §4.3: sweep A
// classifies Identifier tokens as Opcode/Register and harvests Marker
// tokens into the marker table; sweep B resolves every remaining
// Identifier against the marker table, then the definition table, falling
// back to a "could not match identifier" error when neither has it.
//
// Marker lookup is tried before definition lookup: if a name is both a
// label and a definition, the label wins.
func Resolve(tokens []token.Token, defs []definition.Definition) ([]token.Token, []Marker, []error) {
	kept, markers := classifyAndHarvest(tokens)

	var errs []error
	for i := range kept {
		t := &kept[i]
		if t.Kind != token.Identifier {
			continue
		}

		if offset, ok := lookupMarker(markers, t.Literal); ok {
			t.Kind = token.Number
			t.Value = int32(offset)
			continue
		}

		if offset, ok := lookupDefinition(defs, t.Literal); ok {
			t.Kind = token.Number
			t.Value = int32(offset)
			continue
		}

		errs = append(errs, fmt.Errorf("could not match identifier '%s' on line %d", t.Literal, t.Line))
	}

	if len(errs) > 0 {
		return nil, nil, errs
	}

	return kept, markers, nil
}

// classifyAndHarvest is sweep A: it reclassifies mnemonics and registers,
// pulls Marker tokens out into the marker table, and drops both Marker and
// End tokens from the stream (End is a lexer-internal sentinel, never part
// of the resolved stream the encoder walks).
func classifyAndHarvest(tokens []token.Token) ([]token.Token, []Marker) {
	var kept []token.Token
	var markers []Marker

	for _, t := range tokens {
		switch {
		case t.Kind == token.Identifier && token.Mnemonics[t.Literal]:
			t.Kind = token.Opcode
		case t.Kind == token.Identifier && token.Registers[t.Literal]:
			t.Kind = token.Register
		}

		switch t.Kind {
		case token.Marker:
			markers = append(markers, Marker{Name: t.Literal, Offset: t.Offset})
		case token.End:
			// dropped
		default:
			kept = append(kept, t)
		}
	}

	return kept, markers
}

func lookupMarker(markers []Marker, name string) (int, bool) {
	for _, m := range markers {
		if m.Name == name {
			return m.Offset, true
		}
	}
	return 0, false
}

func lookupDefinition(defs []definition.Definition, name string) (int, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d.Offset, true
		}
	}
	return 0, false
}
