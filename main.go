// Package main implements the culebra command-line interface.
//
// culebra is an interpreter for the Culebra scripting language: a small,
// dynamically-typed, indentation-sensitive language with first-class
// functions, closures, and Python-like surface syntax. The pipeline runs
// lexer -> parser -> tree-walking evaluator, and the CLI can stop after
// any stage:
//
//	culebra program.cul          # evaluate a source file
//	culebra -l program.cul       # print the token stream
//	culebra -p program.cul       # print the parsed AST
//	culebra                      # interactive REPL
//
// All lexical, syntactic, and runtime errors are printed in the same
// caret-annotated format and exit with status 1.
package main

import (
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/culebra-lang/culebra/pkg/eval"
	"github.com/culebra-lang/culebra/pkg/lexer"
	"github.com/culebra-lang/culebra/pkg/parser"
	"github.com/culebra-lang/culebra/pkg/report"
)

// errReported marks failures whose report has already been printed, so
// main only has to set the exit code.
var errReported = errors.New("reported")

type options struct {
	lexerMode       bool
	parserMode      bool
	interpreterMode bool
}

// mode returns the selected pipeline stage, defaulting to the
// interpreter when no flag is given.
func (o options) mode() string {
	switch {
	case o.lexerMode:
		return "lexer"
	case o.parserMode:
		return "parser"
	default:
		return "interpreter"
	}
}

func main() {
	opts := options{}

	root := &cobra.Command{
		Use:   "culebra [file]",
		Short: "Interpreter and REPL for the Culebra scripting language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL(opts.mode())
			}

			return runFile(args[0], opts.mode())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVarP(&opts.lexerMode, "lexer", "l", false,
		"run the lexer and print one token per line")
	root.Flags().BoolVarP(&opts.parserMode, "parser", "p", false,
		"run the parser and print the AST")
	root.Flags().BoolVarP(&opts.interpreterMode, "interpreter", "i", false,
		"evaluate the program (default)")
	root.MarkFlagsMutuallyExclusive("lexer", "parser", "interpreter")

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// runFile runs one pipeline stage over a source file.
func runFile(filename string, mode string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return errors.Annotatef(err, "reading %s", filename)
	}

	l := lexer.New(string(content))
	tokens, err := l.Tokenize()
	if err != nil {
		reportLexError(l, err)

		return errReported
	}

	if mode == "lexer" {
		for _, tok := range tokens {
			if tok.Type != lexer.TOKEN_EOF {
				fmt.Println(tok)
			}
		}

		return nil
	}

	p := parser.New(tokens)
	program := p.Parse()
	if p.HasError() {
		fmt.Fprintln(os.Stderr, report.New(l.Source()).Report(p.Err().Token, p.Err().Message))

		return errReported
	}

	if mode == "parser" {
		fmt.Println(program.Pretty())

		return nil
	}

	e := eval.New()
	if err := e.Evaluate(program); err != nil {
		fmt.Fprintln(os.Stderr, report.New(l.Source()).Report(e.LastNode().Token(), err.Error()))

		return errReported
	}

	return nil
}

// reportLexError prints an indentation error with source context when
// possible, falling back to the bare message.
func reportLexError(l *lexer.Lexer, err error) {
	var indentErr *lexer.IndentationError
	if errors.As(err, &indentErr) {
		fmt.Fprintln(os.Stderr, report.New(l.Source()).Report(indentErr.Token, indentErr.Error()))

		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
