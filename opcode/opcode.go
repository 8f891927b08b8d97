// Package opcode defines the CCA instruction byte values consumed by the
// encoder's mnemonic dispatch table.
package opcode

// Opcode is a single CCA instruction byte.
type Opcode byte

const (
	// STP halts the machine.
	STP Opcode = 0x00

	// PushNum pushes a 32-bit immediate.
	PushNum Opcode = 0x01
	// PushReg pushes a register's contents.
	PushReg Opcode = 0x02
	// PopReg pops into a register.
	PopReg Opcode = 0x03
	// PopAddr pops into a memory address.
	PopAddr Opcode = 0x04
	// Dup duplicates the top of the stack.
	Dup Opcode = 0x05

	// MovRegNum stores an immediate in a register.
	MovRegNum Opcode = 0x06
	// MovAddrNum stores an immediate at an address.
	MovAddrNum Opcode = 0x07
	// MovRegAddr loads the contents of an address into a register.
	MovRegAddr Opcode = 0x08
	// MovAddrReg stores a register's contents at an address.
	MovAddrReg Opcode = 0x09
	// MovRegReg copies one register into another.
	MovRegReg Opcode = 0x0a
	// MovAddrAddr copies the contents of one address into another.
	MovAddrAddr Opcode = 0x0b
	// PushAddr pushes the contents of a memory address.
	PushAddr Opcode = 0x0c

	// AddReg adds two registers.
	AddReg Opcode = 0x10
	// Add adds the top two stack values.
	Add Opcode = 0x11
	// SubReg subtracts two registers.
	SubReg Opcode = 0x12
	// Sub subtracts the top two stack values.
	Sub Opcode = 0x13
	// MulReg multiplies two registers.
	MulReg Opcode = 0x14
	// Mul multiplies the top two stack values.
	Mul Opcode = 0x15
	// DivReg divides two registers.
	DivReg Opcode = 0x16
	// Div divides the top two stack values.
	Div Opcode = 0x17
	// NotReg bitwise-negates a register.
	NotReg Opcode = 0x18
	// Not bitwise-negates the top of the stack.
	Not Opcode = 0x19
	// AndReg bitwise-ANDs two registers.
	AndReg Opcode = 0x1a
	// And bitwise-ANDs the top two stack values.
	And Opcode = 0x1b
	// OrReg bitwise-ORs two registers.
	OrReg Opcode = 0x1c
	// Or bitwise-ORs the top two stack values.
	Or Opcode = 0x1d
	// XorReg bitwise-XORs two registers.
	XorReg Opcode = 0x1e
	// Xor bitwise-XORs the top two stack values.
	Xor Opcode = 0x1f

	// Jmp jumps unconditionally to an absolute code offset.
	Jmp Opcode = 0x20

	// CmpRegReg compares two registers.
	CmpRegReg Opcode = 0x30
	// CmpRegNum compares a register against an immediate.
	CmpRegNum Opcode = 0x31
	// CmpNum compares the top of the stack against an immediate.
	CmpNum Opcode = 0x32
	// Je jumps if the last comparison was equal.
	Je Opcode = 0x33
	// Jne jumps if the last comparison was not equal.
	Jne Opcode = 0x34
	// Jg jumps if the last comparison was greater.
	Jg Opcode = 0x35
	// Js jumps if the last comparison was signed/negative.
	Js Opcode = 0x36
	// Jo jumps if the last arithmetic operation overflowed.
	Jo Opcode = 0x37

	// Frs resets the stack frame.
	Frs Opcode = 0x40

	// IncReg increments a register.
	IncReg Opcode = 0x50
	// DecReg decrements a register.
	DecReg Opcode = 0x51
	// Inc increments the top of the stack.
	Inc Opcode = 0x52
	// Dec decrements the top of the stack.
	Dec Opcode = 0x53

	// Call calls a subroutine at an absolute code offset.
	Call Opcode = 0x60
	// Ret returns from a subroutine.
	Ret Opcode = 0x61

	// Syscall invokes a host system call.
	Syscall Opcode = 0xff
)

// names backs Opcode.String with the mnemonic/form label used in -debug
// dumps and diagnostics.
var names = map[Opcode]string{
	STP: "stp", Syscall: "syscall",
	PushNum: "push imm", PushReg: "push reg", PushAddr: "push addr",
	PopReg: "pop reg", PopAddr: "pop addr", Dup: "dup",
	MovRegNum: "mov reg,imm", MovAddrNum: "mov addr,imm",
	MovRegAddr: "mov reg,addr", MovAddrReg: "mov addr,reg",
	MovRegReg: "mov reg,reg", MovAddrAddr: "mov addr,addr",
	AddReg: "add reg,reg", Add: "add", SubReg: "sub reg,reg", Sub: "sub",
	MulReg: "mul reg,reg", Mul: "mul", DivReg: "div reg,reg", Div: "div",
	NotReg: "not reg", Not: "not", AndReg: "and reg,reg", And: "and",
	OrReg: "or reg,reg", Or: "or", XorReg: "xor reg,reg", Xor: "xor",
	Jmp: "jmp", CmpRegReg: "cmp reg,reg", CmpRegNum: "cmp reg,imm",
	CmpNum: "cmp imm", Je: "je", Jne: "jne", Jg: "jg", Js: "js", Jo: "jo",
	Frs: "frs", IncReg: "inc reg", DecReg: "dec reg", Inc: "inc", Dec: "dec",
	Call: "call", Ret: "ret",
}

// String renders the opcode's mnemonic/form label, or "unknown opcode" for
// a byte value outside the CCA instruction set.
func (o Opcode) String() string {
	if s, ok := names[o]; ok {
		return s
	}
	return "unknown opcode"
}

// Byte returns the wire value of the opcode.
func (o Opcode) Byte() byte {
	return byte(o)
}
