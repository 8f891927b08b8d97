// Package encoder translates the resolved token stream into the code
// section byte vector. Mnemonic dispatch is table-driven: each mnemonic
// maps to an ordered list of operand-shape/opcode pairs, tried in
// declaration order, collapsing what would otherwise be a long branch
// cascade into data.
package encoder

import (
	"fmt"
	"strings"

	"cca/opcode"
	"cca/token"
)

// form is one accepted operand shape for a mnemonic: shape lists the
// token kinds expected right after the opcode token (Divider included
// where a comma separates two operands), and op is the byte emitted when
// it matches.
type form struct {
	shape []token.Kind
	op    opcode.Opcode
}

func noOperand(op opcode.Opcode) form { return form{op: op} }

func oneOperand(kind token.Kind, op opcode.Opcode) form {
	return form{shape: []token.Kind{kind}, op: op}
}

func twoOperand(first, second token.Kind, op opcode.Opcode) form {
	return form{shape: []token.Kind{first, token.Divider, second}, op: op}
}

// mnemonicSpec is a mnemonic's ordered form list plus the usage lines
// shown when no form matches. usage is left empty for mnemonics whose
// last form has a zero-length shape -- that form always matches, so the
// "no match" path is unreachable for them.
type mnemonicSpec struct {
	forms []form
	usage []string
}

var table = map[string]mnemonicSpec{
	"stp":     {forms: []form{noOperand(opcode.STP)}},
	"syscall": {forms: []form{noOperand(opcode.Syscall)}},
	"dup":     {forms: []form{noOperand(opcode.Dup)}},
	"frs":     {forms: []form{noOperand(opcode.Frs)}},
	"ret":     {forms: []form{noOperand(opcode.Ret)}},

	"push": {
		forms: []form{
			oneOperand(token.Number, opcode.PushNum),
			oneOperand(token.Register, opcode.PushReg),
			oneOperand(token.Address, opcode.PushAddr),
		},
		usage: []string{"push <number>", "push <register>", "push <address>"},
	},
	"pop": {
		forms: []form{
			oneOperand(token.Register, opcode.PopReg),
			oneOperand(token.Address, opcode.PopAddr),
		},
		usage: []string{"pop <register>", "pop <address>"},
	},
	"mov": {
		forms: []form{
			twoOperand(token.Register, token.Number, opcode.MovRegNum),
			twoOperand(token.Address, token.Number, opcode.MovAddrNum),
			twoOperand(token.Register, token.Address, opcode.MovRegAddr),
			twoOperand(token.Address, token.Register, opcode.MovAddrReg),
			twoOperand(token.Register, token.Register, opcode.MovRegReg),
			twoOperand(token.Address, token.Address, opcode.MovAddrAddr),
		},
		usage: []string{
			"mov <register>, <number>", "mov <address>, <number>",
			"mov <register>, <address>", "mov <address>, <register>",
			"mov <register>, <register>", "mov <address>, <address>",
		},
	},

	"add": {forms: []form{twoOperand(token.Register, token.Register, opcode.AddReg), noOperand(opcode.Add)}},
	"sub": {forms: []form{twoOperand(token.Register, token.Register, opcode.SubReg), noOperand(opcode.Sub)}},
	"mul": {forms: []form{twoOperand(token.Register, token.Register, opcode.MulReg), noOperand(opcode.Mul)}},
	"div": {forms: []form{twoOperand(token.Register, token.Register, opcode.DivReg), noOperand(opcode.Div)}},
	"not": {forms: []form{oneOperand(token.Register, opcode.NotReg), noOperand(opcode.Not)}},
	"and": {forms: []form{twoOperand(token.Register, token.Register, opcode.AndReg), noOperand(opcode.And)}},
	"or":  {forms: []form{twoOperand(token.Register, token.Register, opcode.OrReg), noOperand(opcode.Or)}},
	"xor": {forms: []form{twoOperand(token.Register, token.Register, opcode.XorReg), noOperand(opcode.Xor)}},
	"inc": {forms: []form{oneOperand(token.Register, opcode.IncReg), noOperand(opcode.Inc)}},
	"dec": {forms: []form{oneOperand(token.Register, opcode.DecReg), noOperand(opcode.Dec)}},

	"jmp":  {forms: []form{oneOperand(token.Number, opcode.Jmp)}, usage: []string{"jmp <number>"}},
	"je":   {forms: []form{oneOperand(token.Number, opcode.Je)}, usage: []string{"je <number>"}},
	"jne":  {forms: []form{oneOperand(token.Number, opcode.Jne)}, usage: []string{"jne <number>"}},
	"jg":   {forms: []form{oneOperand(token.Number, opcode.Jg)}, usage: []string{"jg <number>"}},
	"js":   {forms: []form{oneOperand(token.Number, opcode.Js)}, usage: []string{"js <number>"}},
	"jo":   {forms: []form{oneOperand(token.Number, opcode.Jo)}, usage: []string{"jo <number>"}},
	"call": {forms: []form{oneOperand(token.Number, opcode.Call)}, usage: []string{"call <number>"}},

	"cmp": {
		forms: []form{
			twoOperand(token.Register, token.Register, opcode.CmpRegReg),
			twoOperand(token.Register, token.Number, opcode.CmpRegNum),
			oneOperand(token.Number, opcode.CmpNum),
		},
		usage: []string{"cmp <register>, <register>", "cmp <register>, <number>", "cmp <number>"},
	},
}

// Encode walks the resolved token stream, matching each Opcode token's
// operand pattern against its mnemonic's form list and emitting the code
// section bytes. Both the expected-opcode and bad-form error classes are
// batch-reported: the whole stream is scanned before aborting.
func Encode(tokens []token.Token) ([]byte, []error) {
	var code []byte
	var errs []error

	for i := 0; i < len(tokens); {
		t := tokens[i]

		if t.Kind != token.Opcode {
			errs = append(errs, fmt.Errorf("expected opcode on line %d got %s: %s", t.Line, t.Kind, t.ValueString()))
			i++
			continue
		}

		spec, known := table[t.Literal]
		if !known {
			errs = append(errs, fmt.Errorf("expected opcode on line %d got %s: %s", t.Line, t.Kind, t.ValueString()))
			i++
			continue
		}

		matched, ok := match(tokens, i+1, spec.forms)
		if !ok {
			errs = append(errs, fmt.Errorf(
				"unknown structure for '%s' mnemonic on line %d.\nExpected one of the following:\n%s",
				t.Literal, t.Line, usageText(spec.usage),
			))
			i++
			continue
		}

		code = append(code, matched.op.Byte())
		emit(&code, tokens, i+1, matched.shape)
		i += 1 + len(matched.shape)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return code, nil
}

func match(tokens []token.Token, start int, forms []form) (form, bool) {
	for _, f := range forms {
		if shapeMatches(tokens, start, f.shape) {
			return f, true
		}
	}
	return form{}, false
}

func shapeMatches(tokens []token.Token, start int, shape []token.Kind) bool {
	if start+len(shape) > len(tokens) {
		return false
	}
	for i, want := range shape {
		if tokens[start+i].Kind != want {
			return false
		}
	}
	return true
}

// emit appends the operand bytes for a matched shape: one byte for each
// Register operand, four big-endian bytes for each Number/Address
// operand. Divider positions contribute nothing.
func emit(code *[]byte, tokens []token.Token, start int, shape []token.Kind) {
	for i, kind := range shape {
		t := tokens[start+i]
		switch kind {
		case token.Register:
			*code = append(*code, t.Literal[0]-'a')
		case token.Number, token.Address:
			v := uint32(t.Value)
			*code = append(*code, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
		}
	}
}

func usageText(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("  - ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
