package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// transpileCmd transpiles a source file and prints only the emitted C, for
// piping into a C compiler or another tool.
type transpileCmd struct {
	outFile string
}

func (*transpileCmd) Name() string     { return "transpile" }
func (*transpileCmd) Synopsis() string { return "Transpile a source file to C" }
func (*transpileCmd) Usage() string {
	return `transpile <file>:
  Transpile tinyc source to C and print only the C source.
`
}

func (t *transpileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.outFile, "o", "", "write the emitted C to this file instead of stdout")
}

func (t *transpileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 File not provided\n")
		return subcommands.ExitUsageError
	}

	src, err := readSource(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	_, out, ok := pipeline(src)
	if t.outFile != "" {
		if err := os.WriteFile(t.outFile, []byte(out.String()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "💥 failed to write output: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		fmt.Println(out.String())
	}

	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
