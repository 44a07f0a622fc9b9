package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"tinyc/ast"
	"tinyc/astdump"
	"tinyc/parser"
)

// astCmd parses a source file and prints its AST as colorized JSON, the
// debug surface §1 calls out as an external collaborator rather than core.
type astCmd struct {
	outFile string
}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "Parse a source file and dump its AST as JSON" }
func (*astCmd) Usage() string {
	return `ast <file>:
  Parse tinyc source and print the AST as indented JSON.
`
}

func (a *astCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.outFile, "o", "", "write the AST JSON to this file instead of stdout")
}

func (a *astCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p := parser.New(src)
	head, errs := p.Parse()
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "💥 %v\n", e)
	}

	if a.outFile != "" {
		if err := astdump.WriteJSONToFile(head, a.outFile); err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		if _, err := astdump.PrintJSON(head); err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if len(errs) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printAST is the shared debug-print helper runCmd uses before emitting C,
// per §6's "prints the AST (debug) and the transpiled C" CLI contract.
func printAST(head *ast.Node) {
	astdump.PrintJSON(head)
}
