package main

import (
	"fmt"
	"os"

	"tinyc/ast"
	"tinyc/diag"
	"tinyc/parser"
	"tinyc/transpiler"
	"tinyc/transpiler/codewriter"
)

// pipeline runs source through the parser and transpiler, writing any
// diagnostics to stderr as it goes, mirroring the teacher's cmd_run.go
// pattern of reading a file then driving lex→parse→interpret in sequence.
func pipeline(src string) (head *ast.Node, out *codewriter.Output, ok bool) {
	p := parser.New(src)
	head, parseErrs := p.Parse()
	for _, e := range parseErrs {
		fmt.Fprintf(os.Stderr, "💥 %v\n", e)
	}

	bag := &diag.Bag{}
	tr := transpiler.New(bag)
	out = tr.Transpile(head)
	bag.WriteTo(os.Stderr)

	return head, out, len(parseErrs) == 0 && !bag.HasErrors()
}

func readSource(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
