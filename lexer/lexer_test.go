package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cca/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, errs := New(src).Lex()
	require.Empty(t, errs)
	return toks
}

func TestLexMinimalHalt(t *testing.T) {
	toks := lex(t, "stp")
	require.Len(t, toks, 2) // stp, End
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "stp", toks[0].Literal)
	assert.Equal(t, 0, toks[0].Offset)
}

func TestLexPushImmediateOffsets(t *testing.T) {
	toks := lex(t, "push 5")
	require.Len(t, toks, 3) // push, 5, End

	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, 0, toks[0].Offset)

	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, int32(5), toks[1].Value)
	assert.Equal(t, 1, toks[1].Offset) // push contributes 1 byte before the immediate
}

func TestLexLabelOffsetAfterJump(t *testing.T) {
	toks := lex(t, "jmp target\n:target\nstp")
	require.Len(t, toks, 5) // jmp, target, :target (marker), stp, End

	var marker *token.Token
	for i := range toks {
		if toks[i].Kind == token.Marker {
			marker = &toks[i]
		}
	}
	require.NotNil(t, marker)
	assert.Equal(t, "target", marker.Literal)
	assert.Equal(t, 5, marker.Offset) // jmp(1) + 4-byte unresolved ref
}

func TestLexCommentsContributeNothing(t *testing.T) {
	toks := lex(t, "; a comment\nstp ; trailing\n")
	require.Len(t, toks, 2)
	assert.Equal(t, "stp", toks[0].Literal)
	// The leading comment's terminating '\n' is consumed through readChar,
	// which counts it, so "stp" (physically the second line) reports Line 2.
	assert.Equal(t, 2, toks[0].Line)
}

func TestLexNumberBasePrefixes(t *testing.T) {
	cases := map[string]int32{
		"push 0x1F": 31,
		"push 0b101": 5,
		"push 0o17": 15,
		"push 10":   10,
	}
	for src, want := range cases {
		toks := lex(t, src)
		assert.Equal(t, want, toks[1].Value, "source: %s", src)
	}
}

func TestLexAddressOperand(t *testing.T) {
	toks := lex(t, "push &5")
	require.Len(t, toks, 3)
	assert.Equal(t, token.Address, toks[1].Kind)
	assert.Equal(t, int32(5), toks[1].Value)
}

func TestLexStringNoEscapeInterpretation(t *testing.T) {
	toks := lex(t, `def nl "a\nb"`)
	// def, nl, "a\nb", End
	require.Len(t, toks, 4)
	assert.Equal(t, token.String, toks[2].Kind)
	assert.Equal(t, `a\nb`, toks[2].Literal)
}

func TestLexUnexpectedSymbolIsAnError(t *testing.T) {
	_, errs := New("stp #").Lex()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "unexpected symbol on line 1")
}

func TestLexOffsetSelfConsistency(t *testing.T) {
	// push(1) + imm(4) + mov(1) + reg(1) + reg(1) = 8 bytes total
	toks := lex(t, "push 1\nmov a, b")
	require.Len(t, toks, 7) // push, 1, mov, a, divider, b, End
	assert.Equal(t, 8, toks[len(toks)-1].Offset)
}
