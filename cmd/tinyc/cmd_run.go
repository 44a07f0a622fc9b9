package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// runCmd transpiles a source file to C and prints the AST and the emitted
// source to standard output, per §6's CLI contract.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Transpile a source file to C and print the result" }
func (*runCmd) Usage() string {
	return `run <file>:
  Transpile tinyc source to C, printing the debug AST and the C source.
`
}
func (r *runCmd) SetFlags(f *flag.FlagSet) {}

func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	head, out, ok := pipeline(src)
	printAST(head)
	fmt.Println(out.String())
	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
