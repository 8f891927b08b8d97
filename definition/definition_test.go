package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cca/token"
)

func toks(ts ...token.Token) []token.Token { return ts }

func TestExtractSimpleDefinition(t *testing.T) {
	input := toks(
		token.Token{Kind: token.Identifier, Literal: "def", Line: 1},
		token.Token{Kind: token.Identifier, Literal: "greeting", Line: 1},
		token.Token{Kind: token.String, Literal: "hi", Line: 1},
		token.Token{Kind: token.Identifier, Literal: "push", Line: 2},
		token.Token{Kind: token.Identifier, Literal: "greeting", Line: 2},
	)

	kept, defs, err := Extract(input)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "greeting", defs[0].Name)
	assert.Equal(t, "hi", defs[0].Raw)
	assert.Equal(t, 0, defs[0].Offset)

	require.Len(t, kept, 2)
	assert.Equal(t, "push", kept[0].Literal)
	assert.Equal(t, "greeting", kept[1].Literal)
}

func TestExtractOffsetUsesExpandedLength(t *testing.T) {
	input := toks(
		token.Token{Kind: token.Identifier, Literal: "def", Line: 1},
		token.Token{Kind: token.Identifier, Literal: "nl", Line: 1},
		token.Token{Kind: token.String, Literal: `a\nb`, Line: 1}, // raw len 4, expanded len 3
		token.Token{Kind: token.Identifier, Literal: "def", Line: 2},
		token.Token{Kind: token.Identifier, Literal: "second", Line: 2},
		token.Token{Kind: token.String, Literal: "z", Line: 2},
	)

	_, defs, err := Extract(input)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, 0, defs[0].Offset)
	assert.Equal(t, 3, defs[1].Offset) // not 4: cursor tracks expanded bytes
}

func TestExtractEmptyDefinitionContributesNothing(t *testing.T) {
	input := toks(
		token.Token{Kind: token.Identifier, Literal: "def", Line: 1},
		token.Token{Kind: token.Identifier, Literal: "empty", Line: 1},
		token.Token{Kind: token.String, Literal: "", Line: 1},
		token.Token{Kind: token.Identifier, Literal: "def", Line: 2},
		token.Token{Kind: token.Identifier, Literal: "after", Line: 2},
		token.Token{Kind: token.String, Literal: "z", Line: 2},
	)

	_, defs, err := Extract(input)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, 0, defs[0].Offset)
	assert.Equal(t, 0, defs[1].Offset)
}

func TestExtractMalformedDefinitionErrors(t *testing.T) {
	input := toks(
		token.Token{Kind: token.Identifier, Literal: "def", Line: 3},
		token.Token{Kind: token.Identifier, Literal: "name"},
		token.Token{Kind: token.Number, Value: 1},
	)

	_, _, err := Extract(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestExpandOrderHandlesEscapedBackslash(t *testing.T) {
	assert.Equal(t, "a\nb", Expand(`a\nb`))
	// `\\'` is an escaped backslash followed by a bare quote; once the \\
	// step collapses to a single backslash, the result happens to also
	// match the \' step, collapsing further to a lone quote. This pins
	// the fixed replacement order kept from the original source rather than an
	// idealized one-pass escape scan.
	assert.Equal(t, "'", Expand(`\\'`))
}
