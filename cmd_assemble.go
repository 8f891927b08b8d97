package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"cca/assembler"
	"cca/watch"
)

type assembleCmd struct {
	silent   bool
	debug    bool
	output   string
	watching bool
}

func (*assembleCmd) Name() string { return "assemble" }

func (*assembleCmd) Synopsis() string { return "Assemble CCA source into a CCB image." }

func (*assembleCmd) Usage() string {
	return `assemble [-silent] [-debug] [-output NAME] [-watch] FILE...:
Assemble one or more CCA source files into CCB binary images.
`
}

func (c *assembleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.silent, "silent", false, "suppress [INFO] progress messages")
	f.BoolVar(&c.debug, "debug", false, "dump resolved tokens, definitions and markers")
	f.StringVar(&c.output, "output", "", "output file name (only valid with a single input file)")
	f.BoolVar(&c.watching, "watch", false, "re-assemble whenever the input file changes")
}

func (c *assembleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	files := f.Args()
	if len(files) == 0 {
		fmt.Fprintln(out, "assemble: no input files")
		return subcommands.ExitUsageError
	}
	if c.output != "" && len(files) > 1 {
		fmt.Fprintln(out, "assemble: -output cannot be used with multiple input files")
		return subcommands.ExitUsageError
	}

	if c.watching {
		if len(files) > 1 {
			fmt.Fprintln(out, "assemble: -watch accepts a single input file")
			return subcommands.ExitUsageError
		}
		return c.runWatch(files[0])
	}

	status := subcommands.ExitSuccess
	for _, file := range files {
		if !c.assembleOne(file) {
			status = subcommands.ExitFailure
		}
	}
	return status
}

func (c *assembleCmd) runWatch(file string) subcommands.ExitStatus {
	err := watch.Run(file, nil, func() {
		c.assembleOne(file)
	})
	if err != nil {
		errorColor.Fprintf(out, "[ERROR] watch failed: %s\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// assembleOne reads, assembles and writes a single file, printing
// colorized diagnostics along the way. It reports success or failure
// instead of an error so assembleCmd.Execute can keep going across
// multiple input files.
func (c *assembleCmd) assembleOne(file string) bool {
	c.info("Parsing %s...", file)

	source, err := os.ReadFile(file)
	if err != nil {
		errorColor.Fprintf(out, "[ERROR] reading %s: %s\n", file, err)
		return false
	}

	result, diags := assembler.Run(string(source))
	if len(diags) > 0 {
		for _, d := range diags {
			errorColor.Fprintf(out, "[ERROR] %s\n", d)
		}
		return false
	}

	if c.debug {
		c.dump(result)
	}

	dest := c.destination(file)
	c.info("Generating %s...", dest)

	if err := os.WriteFile(dest, result.Image, 0644); err != nil {
		errorColor.Fprintf(out, "[ERROR] writing %s: %s\n", dest, err)
		return false
	}

	c.info("Successfully assembled %s -> %s (%d bytes)", file, dest, len(result.Image))
	return true
}

// destination derives the output path: an explicit -output wins, otherwise
// the input name is truncated at its first '.' and ".ccb" is appended.
func (c *assembleCmd) destination(file string) string {
	if c.output != "" {
		return c.output
	}
	base := filepath.Base(file)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(filepath.Dir(file), base+".ccb")
}

func (c *assembleCmd) info(format string, args ...any) {
	if c.silent {
		return
	}
	infoColor.Fprintf(out, "[INFO] "+format+"\n", args...)
}

func (c *assembleCmd) dump(result *assembler.Result) {
	debugColor.Fprintln(out, "[DEBUG] Resolved tokens:")
	for _, t := range result.ResolvedTokens {
		debugColor.Fprintf(out, "  line %-4d offset %-6d %-10s %s\n", t.Line, t.Offset, t.Kind, t.ValueString())
	}

	debugColor.Fprintln(out, "[DEBUG] Definitions:")
	for _, d := range result.Definitions {
		debugColor.Fprintf(out, "  %-16s offset %-6d %q\n", d.Name, d.Offset, d.Raw)
	}

	debugColor.Fprintln(out, "[DEBUG] Markers:")
	for _, m := range result.Markers {
		debugColor.Fprintf(out, "  %-16s offset %d\n", m.Name, m.Offset)
	}
}

var (
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgCyan)
	debugColor = color.New(color.FgYellow)
)
