// Package ccb assembles the final binary image: the escape-expanded data
// section, the four-byte section separator, and the code section, in that
// order.
package ccb

import "cca/definition"

// Separator is the four-byte Section Separator Sequence placed between
// the data section and the code section.
var Separator = [4]byte{0x1d, 0x1d, 0x1d, 0x1d}

// Write concatenates every definition's expanded value (in insertion
// order), the separator, and code into one CCB image. Definitions whose
// expanded value is empty contribute nothing.
func Write(defs []definition.Definition, code []byte) []byte {
	var out []byte

	for _, d := range defs {
		expanded := definition.Expand(d.Raw)
		if expanded == "" {
			continue
		}
		out = append(out, []byte(expanded)...)
	}

	out = append(out, Separator[:]...)
	out = append(out, code...)

	return out
}
