// Package assembler glues the lexer, definition extractor, resolver,
// encoder and binary writer into the single pure function the CLI and the
// watch driver both call. It owns no file handles and no global state: it
// is a pure function of source text, as required by the concurrency and
// resource model.
package assembler

import (
	"fmt"

	"cca/ccb"
	"cca/definition"
	"cca/encoder"
	"cca/lexer"
	"cca/resolver"
	"cca/token"
)

// Stage identifies which pipeline component raised a Diagnostic.
type Stage string

const (
	StageLex        Stage = "lex"
	StageDefinition Stage = "definition"
	StageResolution Stage = "resolution"
	StageEncoding   Stage = "encoding"
)

// Diagnostic is one error surfaced by a pipeline stage. It always carries
// the stage that raised it; the underlying error carries the source line.
type Diagnostic struct {
	Stage Stage
	Err   error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%s] %s", d.Stage, d.Err)
}

// Result holds everything a caller needs: the final CCB image, and the
// intermediate tables the -debug dump renders.
type Result struct {
	// ResolvedTokens is the token stream after both resolver sweeps --
	// the same stream the encoder walks.
	ResolvedTokens []token.Token
	Definitions    []definition.Definition
	Markers        []resolver.Marker
	Image          []byte
}

// Run assembles source text end to end. It returns either a complete
// Result or a non-empty batch of Diagnostics; it never returns both. Each
// stage either completes fully or aborts the whole run, per the
// propagation policy: I/O and Definition errors abort on first occurrence,
// Lex/Resolution/Encoding errors are collected across the entire input
// before aborting.
func Run(source string) (*Result, []Diagnostic) {
	lx := lexer.New(source)
	tokens, lexErrs := lx.Lex()
	if len(lexErrs) > 0 {
		return nil, wrap(StageLex, lexErrs)
	}

	filtered, defs, err := definition.Extract(tokens)
	if err != nil {
		return nil, []Diagnostic{{Stage: StageDefinition, Err: err}}
	}

	resolved, markers, resErrs := resolver.Resolve(filtered, defs)
	if len(resErrs) > 0 {
		return nil, wrap(StageResolution, resErrs)
	}

	code, encErrs := encoder.Encode(resolved)
	if len(encErrs) > 0 {
		return nil, wrap(StageEncoding, encErrs)
	}

	return &Result{
		ResolvedTokens: resolved,
		Definitions:    defs,
		Markers:        markers,
		Image:          ccb.Write(defs, code),
	}, nil
}

func wrap(stage Stage, errs []error) []Diagnostic {
	out := make([]Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = Diagnostic{Stage: stage, Err: e}
	}
	return out
}
