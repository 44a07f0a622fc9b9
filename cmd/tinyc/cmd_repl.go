package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"
)

// replCmd starts an interactive session: each line (or balanced-brace block
// of lines) is parsed and transpiled on the spot, mirroring the teacher's
// cmd_repl.go loop but driving this repo's parser/transpiler pipeline
// instead of the tree-walking interpreter, and using readline instead of a
// bare bufio.Scanner for history and line editing.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive transpile REPL" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive REPL. Each complete function definition is
  transpiled and its C source printed immediately.
`
}
func (r *replCmd) SetFlags(f *flag.FlagSet) {}

func (r *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println("\nWelcome to tinyc!")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to start readline: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	var buffer strings.Builder
	for {
		if buffer.Len() == 0 {
			rl.SetPrompt(">>> ")
		} else {
			rl.SetPrompt("... ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buffer.Reset()
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}

		if strings.TrimSpace(line) == "exit" && buffer.Len() == 0 {
			return subcommands.ExitSuccess
		}

		if buffer.Len() > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(line)

		if !bracesBalanced(buffer.String()) {
			continue
		}

		head, out, _ := pipeline(buffer.String())
		printAST(head)
		fmt.Println(out.String())
		buffer.Reset()
	}
}

// bracesBalanced reports whether src has no unmatched '{', used to decide
// whether the REPL should keep buffering lines before attempting a parse.
func bracesBalanced(src string) bool {
	depth := 0
	for _, r := range src {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth <= 0
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tinyc_history"
	}
	return home + "/.tinyc_history"
}
